package store

import (
	"encoding/json"
	"fmt"

	"ygodeck/internal/card"
)

// ResultsKey holds the last search results so separate CLI invocations can
// refer to them by position.
const ResultsKey = "ygodb_results_v1"

// SaveResults stores cards as the current result set
func SaveResults(kv KV, cards []card.Card) error {
	data, err := json.Marshal(cards)
	if err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	return kv.Set(ResultsKey, string(data))
}

// LoadResults returns the stored result set, or nil when none is stored
func LoadResults(kv KV) ([]card.Card, error) {
	raw, ok, err := kv.Get(ResultsKey)
	if err != nil || !ok {
		return nil, err
	}
	var cards []card.Card
	if err := json.Unmarshal([]byte(raw), &cards); err != nil {
		return nil, fmt.Errorf("decode results: %w", err)
	}
	return cards, nil
}
