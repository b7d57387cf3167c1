package handlers

import (
	"context"
	"sync"

	"ygodeck/internal/archive"
	"ygodeck/internal/card"
	"ygodeck/internal/catalog"
	"ygodeck/internal/config"
	"ygodeck/internal/deck"
	"ygodeck/internal/views/pages"
)

// Searcher resolves a query to cards
type Searcher interface {
	Search(ctx context.Context, query string, lang catalog.Language) ([]card.Card, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	deck     *deck.Model
	eventBus *EventBus
	catalog  Searcher
	fetcher  archive.Fetcher
	results  *ResultSet
	config   *config.Config
}

// New creates a new handler. bus should be the notifier the model was
// built with so deck streams see every change.
func New(model *deck.Model, bus *EventBus, searcher Searcher, fetcher archive.Fetcher, cfg *config.Config) *Handler {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Handler{
		deck:     model,
		eventBus: bus,
		catalog:  searcher,
		fetcher:  fetcher,
		results:  &ResultSet{},
		config:   cfg,
	}
}

// Deck returns the handler's deck model (for testing)
func (h *Handler) Deck() *deck.Model {
	return h.deck
}

// deckView snapshots the model for the deck panel
func (h *Handler) deckView() pages.DeckView {
	return pages.DeckView{
		Mode:             h.deck.Mode(),
		Entries:          h.deck.Snapshot(deck.Active),
		Counts:           h.deck.Counts(),
		Limits:           h.deck.Limits(),
		ConfirmThreshold: h.config.Images.ConfirmThreshold,
	}
}

// ResultSet holds the cards of the last search
type ResultSet struct {
	mu    sync.RWMutex
	cards []card.Card
}

// Replace stores cards as the current results
func (rs *ResultSet) Replace(cards []card.Card) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.cards = append([]card.Card(nil), cards...)
}

// Get returns the card with id from the current results
func (rs *ResultSet) Get(id int) (card.Card, bool) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	for _, c := range rs.cards {
		if c.ID == id {
			return c, true
		}
	}
	return card.Card{}, false
}

// Event is one update for open pages: a deck change, or a notice for the
// alert bar when Notice is set
type Event struct {
	deck.Change
	Notice string
}

// EventBus fans deck changes and notices out to open pages
type EventBus struct {
	mu          sync.RWMutex
	subscribers []chan Event
}

// NewEventBus creates a new event bus
func NewEventBus() *EventBus {
	return &EventBus{}
}

// Subscribe returns a channel receiving every later event
func (eb *EventBus) Subscribe() chan Event {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	ch := make(chan Event, 10)
	eb.subscribers = append(eb.subscribers, ch)
	return ch
}

// Unsubscribe removes a subscription
func (eb *EventBus) Unsubscribe(ch chan Event) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	for i, sub := range eb.subscribers {
		if sub == ch {
			eb.subscribers = append(eb.subscribers[:i], eb.subscribers[i+1:]...)
			close(ch)
			break
		}
	}
}

// Publish implements deck.Notifier
func (eb *EventBus) Publish(change deck.Change) {
	eb.send(Event{Change: change})
}

// Notify shows msg in the alert bar of every open page
func (eb *EventBus) Notify(msg string) {
	eb.send(Event{Notice: msg})
}

// send never blocks: a subscriber with a full buffer misses the event but
// still gets the next one.
func (eb *EventBus) send(ev Event) {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	for _, ch := range eb.subscribers {
		select {
		case ch <- ev:
		default:
			// Channel full, skip
		}
	}
}

// Subscribers reports how many streams are listening
func (eb *EventBus) Subscribers() int {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	return len(eb.subscribers)
}
