package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const darkMagician = `{"id":46986414,"name":"Dark Magician","type":"Normal Monster","race":"Spellcaster",
	"card_images":[{"id":46986414,"image_url":"https://images.example.com/46986414.jpg"}]}`

// upstream serves one canned response per request, in order, and records
// the query of every request it sees.
type upstream struct {
	mu        sync.Mutex
	responses []response
	queries   []url.Values
	paths     []string
	agents    []string
}

type response struct {
	status int
	body   string
}

func (u *upstream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	u.mu.Lock()
	n := len(u.queries)
	u.queries = append(u.queries, r.URL.Query())
	u.paths = append(u.paths, r.URL.Path)
	u.agents = append(u.agents, r.Header.Get("User-Agent"))
	u.mu.Unlock()

	resp := response{status: http.StatusOK, body: `{"data":[]}`}
	if n < len(u.responses) {
		resp = u.responses[n]
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	w.Write([]byte(resp.body))
}

func newTestClient(t *testing.T, u http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(u)
	t.Cleanup(srv.Close)
	return New(Options{BaseURL: srv.URL + "/api/v7/", UserAgent: "ygodeck-test"})
}

func TestSearchCascadeStopsOnFirstHit(t *testing.T) {
	for k := 1; k <= 4; k++ {
		u := &upstream{}
		for i := 1; i < k; i++ {
			u.responses = append(u.responses, response{status: http.StatusOK, body: `{"data":[]}`})
		}
		u.responses = append(u.responses, response{status: http.StatusOK, body: `{"data":[` + darkMagician + `]}`})

		c := newTestClient(t, u)
		cards, err := c.Search(context.Background(), "  dark magician ", ParseLanguage("Portuguese"))
		require.NoError(t, err)
		require.Len(t, cards, 1)
		assert.Equal(t, "Dark Magician", cards[0].Name)
		assert.Len(t, u.queries, k, "attempts 1..%d then stop", k)
	}
}

func TestSearchAttemptOrder(t *testing.T) {
	u := &upstream{}
	c := newTestClient(t, u)

	cards, err := c.Search(context.Background(), "x", Portuguese)
	require.NoError(t, err)
	assert.NotNil(t, cards)
	assert.Empty(t, cards)

	require.Len(t, u.queries, 4, "exactly four requests when nothing matches")
	assert.Equal(t, url.Values{"fname": {"x"}}, u.queries[0])
	assert.Equal(t, url.Values{"fname": {"x"}, "language": {"pt"}}, u.queries[1])
	assert.Equal(t, url.Values{"name": {"x"}}, u.queries[2])
	assert.Equal(t, url.Values{"name": {"x"}, "language": {"pt"}}, u.queries[3])

	for _, p := range u.paths {
		assert.Equal(t, "/api/v7/cardinfo.php", p)
	}
	assert.Equal(t, "ygodeck-test", u.agents[0])
}

func TestSearchSeedScenario(t *testing.T) {
	u := &upstream{responses: []response{
		{http.StatusOK, `{"data":[]}`},
		{http.StatusOK, `{"data":[]}`},
		{http.StatusOK, `{"data":[]}`},
		{http.StatusOK, `{"data":[` + darkMagician + `]}`},
	}}
	c := newTestClient(t, u)

	cards, err := c.Search(context.Background(), "x", English)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, 46986414, cards[0].ID)
	assert.Len(t, u.queries, 4)
	assert.Equal(t, "en", u.queries[3].Get("language"))
}

func TestSearchSkipsBadAttempts(t *testing.T) {
	u := &upstream{responses: []response{
		{http.StatusBadRequest, `{"error":"No card matching your query was found in the database."}`},
		{http.StatusOK, `not json`},
		{http.StatusOK, `{"error":"something"}`},
		{http.StatusOK, `[` + darkMagician + `]`},
	}}
	c := newTestClient(t, u)

	cards, err := c.Search(context.Background(), "dark", English)
	require.NoError(t, err)
	require.Len(t, cards, 1, "legacy bare array accepted")
	assert.Len(t, u.queries, 4)
}

func TestSearchNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	c := New(Options{BaseURL: srv.URL})
	cards, err := c.Search(context.Background(), "dark", English)
	require.NoError(t, err)
	assert.Empty(t, cards)
}

func TestSearchRejectsEmptyQuery(t *testing.T) {
	u := &upstream{}
	c := newTestClient(t, u)

	_, err := c.Search(context.Background(), "   ", English)
	assert.ErrorIs(t, err, ErrEmptyQuery)
	assert.Equal(t, "Digite um termo para buscar", err.Error())
	assert.Empty(t, u.queries, "nothing dispatched")
}

func TestSearchIsExclusive(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{}, 4)
	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		entered <- struct{}{}
		<-release
		w.Write([]byte(`{"data":[` + darkMagician + `]}`))
	})
	c := newTestClient(t, slow)

	done := make(chan error, 1)
	go func() {
		_, err := c.Search(context.Background(), "dark", English)
		done <- err
	}()
	<-entered

	_, err := c.Search(context.Background(), "other", English)
	assert.ErrorIs(t, err, ErrSearchInFlight)

	close(release)
	require.NoError(t, <-done)

	// the lock is released afterwards
	cards, err := c.Search(context.Background(), "dark", English)
	require.NoError(t, err)
	assert.Len(t, cards, 1)
}

func TestSearchHonoursContext(t *testing.T) {
	blocked := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})
	c := newTestClient(t, blocked)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.Search(ctx, "dark", English)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestParseLanguage(t *testing.T) {
	assert.Equal(t, Portuguese, ParseLanguage("Portuguese"))
	assert.Equal(t, Portuguese, ParseLanguage("pt"))
	assert.Equal(t, English, ParseLanguage("English"))
	assert.Equal(t, English, ParseLanguage(""))
	assert.Equal(t, English, ParseLanguage("French"))
}

func TestDecodePayload(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		kind    payloadKind
		wantErr bool
		hit     bool
	}{
		{"data with cards", `{"data":[` + darkMagician + `]}`, payloadCards, false, true},
		{"data empty", `{"data":[]}`, payloadCards, false, false},
		{"legacy array", `[` + darkMagician + `]`, payloadLegacy, false, true},
		{"legacy empty", `[]`, payloadLegacy, false, false},
		{"error object", `{"error":"nope"}`, payloadError, false, false},
		{"data not array", `{"data":{"id":1}}`, payloadUnknown, false, false},
		{"scalar", `42`, payloadUnknown, false, false},
		{"garbage", `<html>`, payloadUnknown, true, false},
		{"empty", ``, payloadUnknown, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := decodePayload([]byte(tt.body))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.kind, p.kind)

			cards, err := p.result()
			if tt.hit {
				assert.NoError(t, err)
				assert.NotEmpty(t, cards)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
