package store

import (
	"encoding/json"
	"log"

	"ygodeck/internal/deck"
)

// DecksKey is the namespaced key both decks are stored under
const DecksKey = "ygodb_decks_v1"

type decksDocument struct {
	DeckMain  []deck.Entry `json:"deckMain"`
	DeckExtra []deck.Entry `json:"deckExtra"`
}

// DeckStore persists the two deck lists through a KV backend. Persistence
// is best effort: failures are logged and never reach the deck model.
type DeckStore struct {
	kv  KV
	key string
}

// NewDeckStore creates a DeckStore over kv using DecksKey
func NewDeckStore(kv KV) *DeckStore {
	return &DeckStore{kv: kv, key: DecksKey}
}

// Load reads both decks. A missing key, a read error or a document of the
// wrong shape yields two empty decks.
func (s *DeckStore) Load() (main, extra []deck.Entry) {
	raw, ok, err := s.kv.Get(s.key)
	if err != nil {
		log.Printf("⚠️ failed to load decks: %v", err)
		return []deck.Entry{}, []deck.Entry{}
	}
	if !ok {
		return []deck.Entry{}, []deck.Entry{}
	}

	var doc decksDocument
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		log.Printf("⚠️ failed to load decks: %v", err)
		return []deck.Entry{}, []deck.Entry{}
	}

	main, extra = doc.DeckMain, doc.DeckExtra
	if main == nil {
		main = []deck.Entry{}
	}
	if extra == nil {
		extra = []deck.Entry{}
	}
	return main, extra
}

// Save writes both decks under the same key. Errors are logged and dropped;
// the next successful save wins.
func (s *DeckStore) Save(main, extra []deck.Entry) {
	doc := decksDocument{DeckMain: main, DeckExtra: extra}
	if doc.DeckMain == nil {
		doc.DeckMain = []deck.Entry{}
	}
	if doc.DeckExtra == nil {
		doc.DeckExtra = []deck.Entry{}
	}

	data, err := json.Marshal(doc)
	if err != nil {
		log.Printf("⚠️ failed to save decks: %v", err)
		return
	}
	if err := s.kv.Set(s.key, string(data)); err != nil {
		log.Printf("⚠️ failed to save decks: %v", err)
	}
}
