package deck

import (
	"encoding/json"

	"ygodeck/internal/card"
)

// Entry is one card in a deck; duplicates are expressed through Qty
type Entry struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
	Type     string `json:"type"`
	Race     string `json:"race"`
	Qty      int    `json:"qty"`
}

// NewEntry builds a single-copy entry from a catalog card. The full
// resolution image is kept; thumbnails never enter a deck.
func NewEntry(c card.Card) Entry {
	return Entry{
		ID:       c.ID,
		Name:     c.Name,
		ImageURL: c.ImageURL(),
		Type:     c.Type,
		Race:     c.Race,
		Qty:      1,
	}
}

// UnmarshalJSON accepts the older "image" field and treats a missing or
// zero qty as a single copy.
func (e *Entry) UnmarshalJSON(data []byte) error {
	type plain Entry
	aux := struct {
		plain
		Image string `json:"image"`
	}{}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	*e = Entry(aux.plain)
	if e.ImageURL == "" {
		e.ImageURL = aux.Image
	}
	if e.Qty <= 0 {
		e.Qty = 1
	}
	return nil
}

// Total returns the number of copies across entries
func Total(entries []Entry) int {
	total := 0
	for _, e := range entries {
		total += e.Qty
	}
	return total
}

// Copies expands entries into one element per copy, preserving order
func Copies(entries []Entry) []Entry {
	out := make([]Entry, 0, Total(entries))
	for _, e := range entries {
		for i := 0; i < e.Qty; i++ {
			out = append(out, e)
		}
	}
	return out
}
