package pages

import (
	"testing"

	"ygodeck/internal/deck"
	"ygodeck/internal/testhelpers"
)

func TestDeckPanel(t *testing.T) {
	renderer := testhelpers.NewTemplateRenderer(t)

	t.Run("empty deck", func(t *testing.T) {
		renderer.Render(DeckPanel(emptyDeckView())).
			AssertValid().
			AssertContains("Deck vazio").
			AssertNotContains("deck-list").
			AssertContains("Deck Principal (<span>0</span>/60)").
			AssertContains("Deck Adicional (<span>0</span>/15)").
			AssertHasClass("active")
	})

	t.Run("entries with actions", func(t *testing.T) {
		v := emptyDeckView()
		v.Entries = []deck.Entry{
			{ID: 1, Name: "Dark Magician", ImageURL: "https://img/1.jpg", Type: "Normal Monster", Qty: 3},
			{ID: 2, Name: "Pot <of> Greed", ImageURL: "https://img/2.jpg", Type: "Spell Card", Qty: 1},
		}
		v.Counts = deck.Counts{MainTotal: 4, Monster: 3, Spell: 1}

		renderer.Render(DeckPanel(v)).
			AssertValid().
			AssertElementCount("li", 2).
			AssertContains("Pot &lt;of&gt; Greed").
			AssertContains(`<span class="qty-badge">3</span>`).
			AssertHasDatastarAttribute("on:click", "@post('/deck/qty/0/inc')").
			AssertHasDatastarAttribute("on:click", "@post('/deck/qty/1/dec')").
			AssertHasDatastarAttribute("on:click", "@post('/deck/remove/1')").
			AssertHasDatastarAttribute("on:click", "@post('/deck/clear')").
			AssertContains(`<span id="count-monster">3</span>`).
			AssertContains(`<span id="count-spell">1</span>`).
			AssertContains(`<span id="count-trap">0</span>`).
			AssertContains("Deck Principal (<span>4</span>/60)").
			AssertContains(`src="https://img/1.jpg"`)
	})

	t.Run("extra mode is highlighted", func(t *testing.T) {
		v := emptyDeckView()
		v.Mode = deck.ModeExtra
		renderer.Render(DeckPanel(v)).
			AssertContains(`id="mode-extra" class="tab active"`).
			AssertContains(`id="mode-main" class="tab"`).
			AssertHasDatastarAttribute("on:click", "@post('/deck/mode/main')")
	})

	t.Run("exports", func(t *testing.T) {
		renderer.Render(DeckPanel(emptyDeckView())).
			AssertContains(`href="/deck/export.txt"`).
			AssertContains(`href="/deck/export.json"`).
			AssertContains(`href="/deck/qr.png"`).
			AssertContains(`href="/deck/images.zip" download`)
	})

	t.Run("large download asks first", func(t *testing.T) {
		v := emptyDeckView()
		v.Entries = []deck.Entry{
			{ID: 1, Name: "A", Qty: 3}, {ID: 2, Name: "B", Qty: 3},
			{ID: 3, Name: "C", Qty: 3}, {ID: 4, Name: "D", Qty: 2},
		}
		renderer.Render(DeckPanel(v)).
			AssertContains("data-on:click__prevent=").
			AssertContains("Você está prestes a baixar 11 imagens").
			AssertContains("images.zip?confirmed=1")
	})
}

func TestJSString(t *testing.T) {
	if got := jsString(`it's a \ test`); got != `it\'s a \\ test` {
		t.Errorf("unexpected escape %q", got)
	}
}
