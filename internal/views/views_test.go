package views

import (
	"bytes"
	"context"
	"testing"

	"github.com/a-h/templ"

	"ygodeck/internal/card"
	"ygodeck/internal/deck"
	"ygodeck/internal/views/layouts"
	"ygodeck/internal/views/pages"
)

// Test that components render without error
func TestTemplateRendering(t *testing.T) {
	dv := pages.DeckView{
		Mode:             deck.ModeMain,
		Entries:          []deck.Entry{{ID: 1, Name: "Kuriboh", Qty: 2}},
		Counts:           deck.Counts{MainTotal: 2, Monster: 2},
		Limits:           deck.DefaultLimits,
		ConfirmThreshold: 10,
	}
	c := card.Card{ID: 1, Name: "Kuriboh", Type: "Effect Monster", Images: []card.Image{{URL: "https://img/1.jpg"}}}

	components := map[string]templ.Component{
		"base":     layouts.Base("Test Title"),
		"home":     pages.Home(pages.HomeData{Deck: dv}),
		"deck":     pages.DeckPanel(dv),
		"results":  pages.Results([]card.Card{c}),
		"loading":  pages.ResultsLoading(),
		"modal":    pages.CardModal(c),
		"closed":   pages.ModalClosed(),
		"alert":    pages.Alert("Deck vazio"),
		"no alert": pages.Alert(""),
	}

	for name, component := range components {
		t.Run(name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			if err := component.Render(context.Background(), buf); err != nil {
				t.Errorf("%s failed to render: %v", name, err)
			}
			if buf.Len() == 0 {
				t.Errorf("%s rendered nothing", name)
			}
		})
	}
}
