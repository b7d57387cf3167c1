package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/starfederation/datastar-go/datastar"

	"ygodeck/internal/deck"
	"ygodeck/internal/diag"
	"ygodeck/internal/views/pages"
)

// AddCard adds one copy of a card from the last results to the active deck
func (h *Handler) AddCard(w http.ResponseWriter, r *http.Request) {
	c, ok := h.resultFromURL(r)
	if !ok {
		h.respond(w, r, "add", diag.New(deck.ErrNoEntry, diag.MsgUnknownCard))
		return
	}
	h.respond(w, r, "add", h.deck.Add(c))
}

// SetMode switches the active deck
func (h *Handler) SetMode(w http.ResponseWriter, r *http.Request) {
	mode, err := deck.ParseMode(chi.URLParam(r, "mode"))
	if err == nil {
		err = h.deck.SetMode(mode)
	}
	h.respond(w, r, "mode", err)
}

// ChangeQty increments or decrements the entry at index
func (h *Handler) ChangeQty(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		h.respond(w, r, "qty", diag.New(deck.ErrNoEntry, diag.MsgNoEntry))
		return
	}

	var delta int
	switch chi.URLParam(r, "op") {
	case "inc":
		delta = 1
	case "dec":
		delta = -1
	default:
		h.respond(w, r, "qty", diag.New(deck.ErrInvalidDelta, diag.MsgBadQuantity))
		return
	}
	h.respond(w, r, "qty", h.deck.ChangeQty(index, delta))
}

// RemoveEntry deletes the entry at index
func (h *Handler) RemoveEntry(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		h.respond(w, r, "remove", diag.New(deck.ErrNoEntry, diag.MsgNoEntry))
		return
	}
	h.respond(w, r, "remove", h.deck.RemoveAt(index))
}

// ClearDeck empties the active deck
func (h *Handler) ClearDeck(w http.ResponseWriter, r *http.Request) {
	h.deck.ClearActive()
	h.respond(w, r, "clear", nil)
}

// respond patches the deck panel, or the alert bar when err is set
func (h *Handler) respond(w http.ResponseWriter, r *http.Request, op string, err error) {
	sse := datastar.NewSSE(w, r)
	if err != nil {
		log.Printf("⚠️ Deck %s rejected: %v", op, err)
		sse.PatchElementTempl(pages.Alert(diag.Message(err, "")))
		return
	}

	log.Printf("🃏 Deck %s applied", op)
	sse.PatchElementTempl(pages.Alert(""))
	sse.PatchElementTempl(pages.DeckPanel(h.deckView()))
}
