package handlers

import (
	"errors"
	"fmt"
	"log"
	"mime"
	"net/http"
	"strconv"

	"ygodeck/internal/archive"
	"ygodeck/internal/deck"
	"ygodeck/internal/diag"
	"ygodeck/internal/export"
)

// ExportText downloads the active deck as one card name per line
func (h *Handler) ExportText(w http.ResponseWriter, r *http.Request) {
	h.serveExport(w, export.KindText, "text/plain; charset=utf-8", export.Text)
}

// ExportJSON downloads the active deck entries
func (h *Handler) ExportJSON(w http.ResponseWriter, r *http.Request) {
	h.serveExport(w, export.KindJSON, "application/json", export.JSON)
}

// ExportQR downloads a QR code of the text export
func (h *Handler) ExportQR(w http.ResponseWriter, r *http.Request) {
	h.serveExport(w, export.KindQR, "image/png", export.QR)
}

func (h *Handler) serveExport(w http.ResponseWriter, kind, contentType string, render func([]deck.Entry) ([]byte, error)) {
	mode := h.deck.Mode()
	data, err := render(h.deck.Snapshot(deck.Active))
	if err != nil {
		writeError(w, err)
		return
	}

	attachment(w, export.Filename(mode, kind), contentType)
	w.Write(data)
}

// DownloadImages zips the artwork of every copy in the active deck. Large
// decks need ?confirmed=1. Failed images are reported to open pages.
func (h *Handler) DownloadImages(w http.ResponseWriter, r *http.Request) {
	mode := h.deck.Mode()
	entries := h.deck.Snapshot(deck.Active)

	var zipped []byte
	sink := archive.SinkFunc(func(_ string, data []byte) error {
		zipped = data
		return nil
	})
	a := archive.New(h.fetcher, sink,
		archive.WithWorkers(h.config.Images.Workers),
		archive.WithConfirmThreshold(h.config.Images.ConfirmThreshold),
		archive.WithConfirmer(archive.Always),
	)

	copies := deck.Total(entries)
	if copies > 0 && a.NeedsConfirmation(copies) && r.URL.Query().Get("confirmed") != "1" {
		http.Error(w, fmt.Sprintf(diag.MsgConfirmBulk, copies), http.StatusConflict)
		return
	}

	report, err := a.Download(r.Context(), mode, entries)
	if err != nil {
		writeError(w, err)
		return
	}

	if n := len(report.Failed); n > 0 {
		log.Printf("⚠️ %s", report.Summary())
		w.Header().Set("X-Failed-Images", strconv.Itoa(n))
		// open pages show it in the alert bar
		if h.eventBus != nil {
			h.eventBus.Notify(report.Summary())
		}
	}
	attachment(w, report.Filename, "application/zip")
	w.Write(zipped)
}

func attachment(w http.ResponseWriter, filename, contentType string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
}

// writeError maps a core error to a status and its user message
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, deck.ErrEmptyDeck):
		status = http.StatusBadRequest
	case errors.Is(err, export.ErrQRTooLarge):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, archive.ErrBusy), errors.Is(err, archive.ErrCancelled):
		status = http.StatusConflict
	}
	if status == http.StatusInternalServerError {
		log.Printf("❌ Download failed: %v", err)
	}
	http.Error(w, diag.Message(err, "Erro interno"), status)
}
