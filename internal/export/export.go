// Package export renders the active deck as downloadable files.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"ygodeck/internal/deck"
)

// Kinds of export, used as file extensions
const (
	KindText = "txt"
	KindJSON = "json"
	KindQR   = "png"
	KindZip  = "zip"
)

// Text lists one card name per copy, joined with CRLF and without a
// trailing newline.
func Text(entries []deck.Entry) ([]byte, error) {
	if deck.Total(entries) == 0 {
		return nil, deck.EmptyDeckError()
	}

	copies := deck.Copies(entries)
	lines := make([]string, len(copies))
	for i, e := range copies {
		lines[i] = e.Name
	}
	return []byte(strings.Join(lines, "\r\n")), nil
}

// JSON dumps the entries with two-space indentation. HTML characters in
// card names are kept as is.
func JSON(entries []deck.Entry) ([]byte, error) {
	if deck.Total(entries) == 0 {
		return nil, deck.EmptyDeckError()
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return nil, fmt.Errorf("encode deck: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Filename names an export of the deck in mode: deck_main.txt,
// deck_extra.json, deck_main_images.zip and so on.
func Filename(mode deck.Mode, kind string) string {
	if kind == KindZip {
		return fmt.Sprintf("deck_%s_images.zip", mode)
	}
	return fmt.Sprintf("deck_%s.%s", mode, kind)
}
