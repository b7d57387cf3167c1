package pages

import (
	"testing"

	"ygodeck/internal/card"
	"ygodeck/internal/testhelpers"
)

func intPtr(v int) *int { return &v }

func sampleCard() card.Card {
	return card.Card{
		ID:        46986414,
		Name:      "Dark Magician",
		Type:      "Normal Monster",
		Race:      "Spellcaster",
		Attribute: "DARK",
		Level:     7,
		ATK:       intPtr(2500),
		DEF:       intPtr(2100),
		Desc:      "The ultimate wizard in terms of attack and defense.\n(This card is always treated as a \"Dark Magician\" card.)",
		Images: []card.Image{
			{ID: 46986414, URL: "https://img/46986414.jpg", SmallURL: "https://img/small/46986414.jpg"},
			{ID: 36996508, URL: "https://img/36996508.jpg"},
		},
	}
}

func TestResults(t *testing.T) {
	renderer := testhelpers.NewTemplateRenderer(t)

	t.Run("lists cards with thumbnails", func(t *testing.T) {
		renderer.Render(Results([]card.Card{sampleCard()})).
			AssertValid().
			AssertHasElementWithID(ResultsID).
			AssertHasElementWithID("result-46986414").
			AssertContains("Dark Magician").
			AssertContains("Normal Monster — Spellcaster").
			AssertContains(`src="https://img/small/46986414.jpg"`).
			AssertHasDatastarAttribute("on:click", "@get('/card/46986414')").
			AssertHasDatastarAttribute("on:click", "@post('/deck/add/46986414')")
	})

	t.Run("empty results", func(t *testing.T) {
		renderer.Render(Results(nil)).
			AssertHasElementWithID(ResultsID).
			AssertContains("Nenhuma carta encontrada ou erro na API.")
	})

	t.Run("loading", func(t *testing.T) {
		renderer.Render(ResultsLoading()).
			AssertContains("Carregando...")
	})

	t.Run("escapes names", func(t *testing.T) {
		c := sampleCard()
		c.Name = `<img src=x onerror=alert(1)>`
		renderer.Render(Results([]card.Card{c})).
			AssertNotContains("<img src=x").
			AssertContains("&lt;img src=x onerror=alert(1)&gt;")
	})

	t.Run("escapes attribute values", func(t *testing.T) {
		c := sampleCard()
		c.Name = `Dark "Magician"`
		renderer.Render(Results([]card.Card{c})).
			AssertContains(`alt="Dark &#34;Magician&#34;"`).
			AssertNotContains(`alt="Dark "`)
	})
}

func TestCardModal(t *testing.T) {
	renderer := testhelpers.NewTemplateRenderer(t)

	renderer.Render(CardModal(sampleCard())).
		AssertValid().
		AssertHasElementWithID(ModalID).
		AssertContains("<h2>Dark Magician</h2>").
		AssertContains("<dd>DARK</dd>").
		AssertContains("<dd>7</dd>").
		AssertContains("<dd>2500 / 2100</dd>").
		AssertContains("<em>(This card is always treated as a &#34;Dark Magician&#34; card.)</em>").
		AssertContains(`href="/card/46986414/image?variant=1"`).
		AssertContains(`href="/card/46986414/image" download`).
		AssertElementCount("p", 2).
		AssertHasDatastarAttribute("on:click", "@post('/deck/add/46986414')")

	spell := card.Card{ID: 1, Name: "Pot of Greed", Type: "Spell Card"}
	renderer.Render(CardModal(spell)).
		AssertContains("<dd>-</dd>").
		AssertContains("<dd>- / -</dd>").
		AssertNotContains("Imagens")
}

func TestAlert(t *testing.T) {
	renderer := testhelpers.NewTemplateRenderer(t)

	renderer.Render(Alert("Deck vazio")).
		AssertHasElementWithID(AlertID).
		AssertContains(`role="alert"`).
		AssertContains("Deck vazio")

	renderer.Render(Alert("")).
		AssertHasElementWithID(AlertID).
		AssertContains("hidden")
}
