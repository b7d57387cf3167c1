package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ygodeck/internal/catalog"
	"ygodeck/internal/diag"
)

func TestSearch(t *testing.T) {
	env := newTestEnv(t, testCard(46986414, "Dark Magician", "Normal Monster"))

	w := env.search(t, "  dark magician ")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))

	body := w.Body.String()
	assert.Contains(t, body, "datastar-patch-signals")
	assert.Contains(t, body, `"searching":true`)
	assert.Contains(t, body, "Carregando...")
	assert.Contains(t, body, `id="result-46986414"`)
	assert.Contains(t, body, `"searching":false`)
	assert.Equal(t, 5, sseEvents(body), "searching, alert, loading, results, done")

	assert.Equal(t, []string{"dark magician"}, env.searcher.queries)
	assert.Equal(t, []catalog.Language{catalog.Portuguese}, env.searcher.langs)

	_, ok := env.h.results.Get(46986414)
	assert.True(t, ok, "results remembered for later actions")
}

func TestSearchEmptyQuery(t *testing.T) {
	env := newTestEnv(t)

	w := env.search(t, "   ")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Digite um termo para buscar")
	assert.Empty(t, env.searcher.queries, "no upstream request")
}

func TestSearchNoResults(t *testing.T) {
	env := newTestEnv(t)

	w := env.search(t, "nothing")
	assert.Contains(t, w.Body.String(), "Nenhuma carta encontrada ou erro na API.")
}

func TestSearchError(t *testing.T) {
	env := newTestEnv(t)
	env.searcher.err = diag.New(catalog.ErrSearchInFlight, diag.MsgSearchBusy)

	w := env.search(t, "dark")
	assert.Contains(t, w.Body.String(), diag.MsgSearchBusy)
	assert.Contains(t, w.Body.String(), `"searching":false`)

	env.searcher.err = errors.New("boom")
	w = env.search(t, "dark")
	assert.Contains(t, w.Body.String(), "Nenhuma carta encontrada ou erro na API.")
}

func TestSearchRejectsUnknownSignals(t *testing.T) {
	env := newTestEnv(t)

	w := env.do("GET", `/search?datastar=%7B%22evil%22%3A1%7D`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, env.searcher.queries)
}

func TestCardDetails(t *testing.T) {
	env := newTestEnv(t, testCard(46986414, "Dark Magician", "Normal Monster"))

	w := env.do("GET", "/card/46986414")
	assert.Contains(t, w.Body.String(), diag.MsgUnknownCard, "unknown before any search")

	env.search(t, "dark")
	w = env.do("GET", "/card/46986414")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `id="modal"`)
	assert.Contains(t, w.Body.String(), "Descrição")
}

func TestCardImage(t *testing.T) {
	c := testCard(46986414, "Ra: Sphere", "Effect Monster")
	env := newTestEnv(t, c)
	env.search(t, "ra")

	w := env.do("GET", "/card/46986414/image")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "jpeg:Ra: Sphere", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Disposition"), `filename="Ra_ Sphere.jpg"`)

	w = env.do("GET", "/card/46986414/image?variant=3")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do("GET", "/card/1/image")
	assert.Equal(t, http.StatusNotFound, w.Code)

	delete(env.fetcher.images, c.ImageURL())
	w = env.do("GET", "/card/46986414/image")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, c.ImageURL(), w.Header().Get("Location"))
	assert.Empty(t, w.Header().Get("Content-Disposition"))
}

func TestCardImageWithoutArtwork(t *testing.T) {
	c := testCard(7, "Blank", "Spell Card")
	c.Images = nil
	env := newTestEnv(t, c)
	env.search(t, "blank")

	w := env.do("GET", "/card/7/image")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), diag.MsgImageFailed)
}
