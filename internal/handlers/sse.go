package handlers

import (
	"log"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"

	"ygodeck/internal/views/pages"
)

// StreamDeck re-renders the deck panel on every model change and shows
// notices in the alert bar
func (h *Handler) StreamDeck(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	events := h.eventBus.Subscribe()
	defer h.eventBus.Unsubscribe(events)
	log.Printf("📡 Deck stream opened (%d listening)", h.eventBus.Subscribers())

	// Catch up on anything that changed since the page rendered
	if err := sse.PatchElementTempl(pages.DeckPanel(h.deckView())); err != nil {
		log.Printf("📡 Deck stream closed: %v", err)
		return
	}

	for {
		select {
		case <-r.Context().Done():
			log.Printf("📡 Deck stream context cancelled")
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if ev.Notice != "" {
				if err := sse.PatchElementTempl(pages.Alert(ev.Notice)); err != nil {
					log.Printf("📡 Deck stream failed on notice: %v", err)
					return
				}
				continue
			}
			if err := sse.PatchElementTempl(pages.DeckPanel(h.deckView())); err != nil {
				log.Printf("📡 Deck stream failed after %s: %v", ev.Op, err)
				return
			}
		}
	}
}
