package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/starfederation/datastar-go/datastar"

	"ygodeck/internal/archive"
	"ygodeck/internal/card"
	"ygodeck/internal/catalog"
	"ygodeck/internal/diag"
	"ygodeck/internal/views/pages"
)

// searchSignals are the client signals the search form sends
type searchSignals struct {
	Query string `json:"query"`
	Lang  string `json:"lang"`
}

// Search runs the catalog cascade and patches the results area
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	var signals searchSignals
	if err := datastar.ReadSignals(r, &signals); err != nil {
		http.Error(w, "Invalid signals", http.StatusBadRequest)
		return
	}

	sse := datastar.NewSSE(w, r)
	query := strings.TrimSpace(signals.Query)
	if query == "" {
		sse.PatchElementTempl(pages.Alert(diag.MsgEmptyQuery))
		return
	}

	log.Printf("🔎 Search requested: %q (%s)", query, signals.Lang)
	sse.MarshalAndPatchSignals(map[string]any{"searching": true})
	sse.PatchElementTempl(pages.Alert(""))
	sse.PatchElementTempl(pages.ResultsLoading())

	cards, err := h.catalog.Search(r.Context(), query, catalog.ParseLanguage(signals.Lang))
	switch {
	case err != nil:
		log.Printf("❌ Search failed for %q: %v", query, err)
		sse.PatchElementTempl(pages.ResultsMessage(diag.Message(err, diag.MsgNoResults)))
	default:
		h.results.Replace(cards)
		sse.PatchElementTempl(pages.Results(cards))
	}

	sse.MarshalAndPatchSignals(map[string]any{"searching": false})
}

// CardDetails opens the details modal for a card from the last results
func (h *Handler) CardDetails(w http.ResponseWriter, r *http.Request) {
	c, ok := h.resultFromURL(r)
	sse := datastar.NewSSE(w, r)
	if !ok {
		sse.PatchElementTempl(pages.Alert(diag.MsgUnknownCard))
		return
	}
	sse.PatchElementTempl(pages.CardModal(c))
}

// CardImage downloads one artwork variant of a card at full resolution. When
// the fetch fails it redirects to the upstream URL.
func (h *Handler) CardImage(w http.ResponseWriter, r *http.Request) {
	c, ok := h.resultFromURL(r)
	if !ok {
		http.Error(w, diag.MsgUnknownCard, http.StatusNotFound)
		return
	}

	variant := 0
	if v := r.URL.Query().Get("variant"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 || n >= len(c.Images) {
			http.Error(w, "Invalid variant", http.StatusBadRequest)
			return
		}
		variant = n
	}
	if len(c.Images) == 0 || c.Images[variant].URL == "" {
		http.Error(w, diag.MsgImageFailed, http.StatusNotFound)
		return
	}
	url := c.Images[variant].URL

	data, err := h.fetcher.Fetch(r.Context(), url)
	if err != nil {
		// let the browser open the artwork from the catalog instead
		log.Printf("⚠️ Image download failed for %s, redirecting to %s: %v", c.Name, url, err)
		http.Redirect(w, r, url, http.StatusFound)
		return
	}

	attachment(w, archive.FileName(c.Name, url), http.DetectContentType(data))
	w.Write(data)
}

func (h *Handler) resultFromURL(r *http.Request) (card.Card, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return card.Card{}, false
	}
	return h.results.Get(id)
}
