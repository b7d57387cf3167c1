package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"ygodeck/internal/archive"
	"ygodeck/internal/card"
	"ygodeck/internal/catalog"
	"ygodeck/internal/config"
	"ygodeck/internal/deck"
	"ygodeck/internal/store"
)

// stubSearcher returns fixed cards for every query
type stubSearcher struct {
	mu      sync.Mutex
	cards   []card.Card
	err     error
	queries []string
	langs   []catalog.Language
}

func (s *stubSearcher) Search(ctx context.Context, query string, lang catalog.Language) ([]card.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queries = append(s.queries, query)
	s.langs = append(s.langs, lang)
	return s.cards, s.err
}

// stubFetcher serves image bytes keyed by URL
type stubFetcher struct {
	images map[string][]byte
}

func (f *stubFetcher) Fetch(ctx context.Context, u string) ([]byte, error) {
	if data, ok := f.images[u]; ok {
		return data, nil
	}
	return nil, &archive.StatusError{URL: u, StatusCode: http.StatusNotFound}
}

func testCard(id int, name, typ string) card.Card {
	return card.Card{
		ID:   id,
		Name: name,
		Type: typ,
		Race: "Spellcaster",
		Images: []card.Image{{
			ID:       id,
			URL:      fmt.Sprintf("https://img.example/%d.jpg", id),
			SmallURL: fmt.Sprintf("https://img.example/small/%d.jpg", id),
		}},
	}
}

// testEnv wires a handler over an in-memory store
type testEnv struct {
	h        *Handler
	bus      *EventBus
	model    *deck.Model
	kv       store.KV
	searcher *stubSearcher
	fetcher  *stubFetcher
	router   *chi.Mux
}

func newTestEnv(t *testing.T, cards ...card.Card) *testEnv {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Storage.Backend = store.BackendMemory

	kv := store.NewMemoryStore()
	bus := NewEventBus()
	model := deck.NewModel(store.NewDeckStore(kv), deck.WithNotifier(bus))

	images := map[string][]byte{}
	for _, c := range cards {
		images[c.ImageURL()] = []byte("jpeg:" + c.Name)
	}
	searcher := &stubSearcher{cards: cards}
	fetcher := &stubFetcher{images: images}

	h := New(model, bus, searcher, fetcher, cfg)
	router := SetupRouter(h, cfg, &RouterOptions{DisableRateLimiting: true, DisableRequestLogger: true})

	return &testEnv{h: h, bus: bus, model: model, kv: kv, searcher: searcher, fetcher: fetcher, router: router}
}

func (e *testEnv) do(method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// search runs a search so later requests can refer to its results
func (e *testEnv) search(t *testing.T, query string) *httptest.ResponseRecorder {
	t.Helper()
	return e.do("GET", "/search?datastar="+url.QueryEscape(fmt.Sprintf(`{"query":%q,"lang":"pt"}`, query)))
}

func sseEvents(body string) int {
	return strings.Count(body, "event: datastar-")
}
