package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ygodeck/internal/deck"
	"ygodeck/internal/store"
)

func TestAddCard(t *testing.T) {
	env := newTestEnv(t, testCard(1, "Dark Magician", "Normal Monster"))
	env.search(t, "dark")

	w := env.do("POST", "/deck/add/1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `id="deck-panel"`)
	assert.Contains(t, w.Body.String(), `<span class="qty-badge">1</span>`)

	entries := env.model.Snapshot(deck.Main)
	require.Len(t, entries, 1)
	assert.Equal(t, "https://img.example/1.jpg", entries[0].ImageURL, "full image stored, not the thumbnail")

	// persisted immediately
	main, _ := store.NewDeckStore(env.kv).Load()
	assert.Len(t, main, 1)
}

func TestAddCardCopyLimit(t *testing.T) {
	env := newTestEnv(t, testCard(1, "Dark Magician", "Normal Monster"))
	env.search(t, "dark")

	for i := 0; i < 3; i++ {
		env.do("POST", "/deck/add/1")
	}
	w := env.do("POST", "/deck/add/1")
	assert.Contains(t, w.Body.String(), "Já existe o máximo de 3 cópias desta carta no deck")
	assert.Equal(t, 3, deck.Total(env.model.Snapshot(deck.Main)))
}

func TestAddCardDeckFull(t *testing.T) {
	env := newTestEnv(t)
	for i := 1; i <= 5; i++ {
		c := testCard(i, fmt.Sprintf("Fusion %d", i), "Fusion Monster")
		env.searcher.cards = append(env.searcher.cards, c)
	}
	env.search(t, "fusion")
	env.do("POST", "/deck/mode/extra")

	for i := 1; i <= 5; i++ {
		for j := 0; j < 3; j++ {
			env.do("POST", fmt.Sprintf("/deck/add/%d", i))
		}
	}
	require.Equal(t, 15, deck.Total(env.model.Snapshot(deck.Extra)))

	w := env.do("POST", "/deck/add/1")
	assert.Contains(t, w.Body.String(), "Deck Adicional já atingiu o máximo de 15 cartas")
}

func TestAddUnknownCard(t *testing.T) {
	env := newTestEnv(t)

	w := env.do("POST", "/deck/add/99")
	assert.Contains(t, w.Body.String(), "Carta não encontrada nos resultados da busca")
	assert.Empty(t, env.model.Snapshot(deck.Main))
}

func TestSetMode(t *testing.T) {
	env := newTestEnv(t)

	w := env.do("POST", "/deck/mode/extra")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, deck.ModeExtra, env.model.Mode())
	assert.Contains(t, w.Body.String(), `id="mode-extra" class="tab active"`)

	w = env.do("POST", "/deck/mode/side")
	assert.Contains(t, w.Body.String(), "Deck desconhecido: side")
	assert.Equal(t, deck.ModeExtra, env.model.Mode())
}

func TestChangeQtyAndRemove(t *testing.T) {
	env := newTestEnv(t, testCard(1, "Kuriboh", "Effect Monster"), testCard(2, "Pot of Greed", "Spell Card"))
	env.search(t, "k")
	env.do("POST", "/deck/add/1")
	env.do("POST", "/deck/add/2")

	env.do("POST", "/deck/qty/0/inc")
	assert.Equal(t, 2, env.model.Snapshot(deck.Main)[0].Qty)

	env.do("POST", "/deck/qty/0/dec")
	env.do("POST", "/deck/qty/0/dec")
	entries := env.model.Snapshot(deck.Main)
	require.Len(t, entries, 1, "entry dropping to zero is removed")
	assert.Equal(t, "Pot of Greed", entries[0].Name)

	w := env.do("POST", "/deck/qty/5/inc")
	assert.Contains(t, w.Body.String(), "Carta não encontrada no deck")

	w = env.do("POST", "/deck/qty/0/double")
	assert.Contains(t, w.Body.String(), "Quantidade inválida")

	w = env.do("POST", "/deck/remove/x")
	assert.Contains(t, w.Body.String(), "Carta não encontrada no deck")

	env.do("POST", "/deck/remove/0")
	assert.Empty(t, env.model.Snapshot(deck.Main))
}

func TestClearDeck(t *testing.T) {
	env := newTestEnv(t, testCard(1, "Kuriboh", "Effect Monster"))
	env.search(t, "k")
	env.do("POST", "/deck/add/1")
	env.do("POST", "/deck/mode/extra")
	env.do("POST", "/deck/add/1")

	w := env.do("POST", "/deck/clear")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Deck vazio")

	assert.Empty(t, env.model.Snapshot(deck.Extra))
	assert.Len(t, env.model.Snapshot(deck.Main), 1, "only the active deck is cleared")

	_, extra := store.NewDeckStore(env.kv).Load()
	assert.Empty(t, extra, "clearing is persisted")
}
