package handlers

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ygodeck/internal/deck"
)

func TestExportsRejectEmptyDeck(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/deck/export.txt", "/deck/export.json", "/deck/qr.png", "/deck/images.zip"} {
		t.Run(path, func(t *testing.T) {
			w := env.do("GET", path)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "Deck vazio")
			assert.Empty(t, w.Header().Get("Content-Disposition"))
		})
	}
}

func TestExportText(t *testing.T) {
	env := newTestEnv(t, testCard(1, "Dark Magician", "Normal Monster"), testCard(2, "Pot of Greed", "Spell Card"))
	env.search(t, "x")
	env.do("POST", "/deck/add/1")
	env.do("POST", "/deck/add/1")
	env.do("POST", "/deck/add/2")

	w := env.do("GET", "/deck/export.txt")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename=deck_main.txt`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "Dark Magician\r\nDark Magician\r\nPot of Greed", w.Body.String())
}

func TestExportJSONUsesActiveDeck(t *testing.T) {
	env := newTestEnv(t, testCard(1, "Dark Magician", "Normal Monster"), testCard(2, "Stardust Dragon", "Synchro Monster"))
	env.search(t, "x")
	env.do("POST", "/deck/add/1")
	env.do("POST", "/deck/mode/extra")
	env.do("POST", "/deck/add/2")

	w := env.do("GET", "/deck/export.json")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "deck_extra.json")

	var entries []deck.Entry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "Stardust Dragon", entries[0].Name)
	assert.Equal(t, 1, entries[0].Qty)
}

func TestExportQR(t *testing.T) {
	env := newTestEnv(t, testCard(1, "Dark Magician", "Normal Monster"))
	env.search(t, "x")
	env.do("POST", "/deck/add/1")

	w := env.do("GET", "/deck/qr.png")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("\x89PNG")))
}

func TestDownloadImages(t *testing.T) {
	env := newTestEnv(t,
		testCard(1, "Dark Magician", "Normal Monster"),
		testCard(2, "Ra: Sphere Mode", "Effect Monster"),
		testCard(3, "Pot of Greed", "Spell Card"),
	)
	env.search(t, "x")
	env.do("POST", "/deck/add/1")
	env.do("POST", "/deck/add/1")
	env.do("POST", "/deck/add/2")
	env.do("POST", "/deck/add/3")
	delete(env.fetcher.images, "https://img.example/3.jpg")

	w := env.do("GET", "/deck/images.zip")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/zip", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "deck_main_images.zip")
	assert.Equal(t, "1", w.Header().Get("X-Failed-Images"))

	zr, err := zip.NewReader(bytes.NewReader(w.Body.Bytes()), int64(w.Body.Len()))
	require.NoError(t, err)

	files := map[string]string{}
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		data, _ := io.ReadAll(rc)
		rc.Close()
		files[f.Name] = string(data)
	}
	assert.Equal(t, map[string]string{
		"images/Dark Magician.jpg":   "jpeg:Dark Magician",
		"images/Ra_ Sphere Mode.jpg": "jpeg:Ra: Sphere Mode",
	}, files)
}

func TestDownloadImagesNeedsConfirmation(t *testing.T) {
	env := newTestEnv(t)
	for i := 1; i <= 4; i++ {
		env.searcher.cards = append(env.searcher.cards, testCard(i, fmt.Sprintf("Card %d", i), "Effect Monster"))
		env.fetcher.images[fmt.Sprintf("https://img.example/%d.jpg", i)] = []byte("img")
	}
	env.search(t, "card")
	for i := 1; i <= 4; i++ {
		for j := 0; j < 3; j++ {
			env.do("POST", fmt.Sprintf("/deck/add/%d", i))
		}
	}
	require.Equal(t, 12, deck.Total(env.model.Snapshot(deck.Main)))

	w := env.do("GET", "/deck/images.zip")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Você está prestes a baixar 12 imagens")

	w = env.do("GET", "/deck/images.zip?confirmed=1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("X-Failed-Images"))

	zr, err := zip.NewReader(bytes.NewReader(w.Body.Bytes()), int64(w.Body.Len()))
	require.NoError(t, err)
	assert.Len(t, zr.File, 4, "copies of one card share a file")
	for _, f := range zr.File {
		assert.True(t, strings.HasPrefix(f.Name, "images/Card "))
	}
}
