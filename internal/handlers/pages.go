package handlers

import (
	"net/http"

	"github.com/a-h/templ"

	"ygodeck/internal/views/pages"
)

// Home renders the deck builder page
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	lang := "en"
	if r.URL.Query().Get("lang") == "pt" {
		lang = "pt"
	}

	component := pages.Home(pages.HomeData{
		Lang: lang,
		Deck: h.deckView(),
	})
	templ.Handler(component).ServeHTTP(w, r)
}
