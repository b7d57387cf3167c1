package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"

	"ygodeck/internal/card"
)

// payloadKind tags the shapes the catalog answers with
type payloadKind int

const (
	payloadUnknown payloadKind = iota
	payloadCards               // {"data": [...]}
	payloadLegacy              // bare [...]
	payloadError               // {"error": "..."}
)

type payload struct {
	kind  payloadKind
	cards []card.Card
	err   string
}

// decodePayload classifies a response body. A JSON syntax error is returned;
// well-formed bodies of any other shape come back as payloadUnknown.
func decodePayload(body []byte) (payload, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return payload{}, fmt.Errorf("empty body")
	}

	switch trimmed[0] {
	case '[':
		var cards []card.Card
		if err := json.Unmarshal(trimmed, &cards); err != nil {
			return payload{}, fmt.Errorf("decode card array: %w", err)
		}
		return payload{kind: payloadLegacy, cards: cards}, nil
	case '{':
		var obj struct {
			Data  json.RawMessage `json:"data"`
			Error *string         `json:"error"`
		}
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			return payload{}, fmt.Errorf("decode response object: %w", err)
		}
		if len(obj.Data) > 0 && obj.Data[0] == '[' {
			var cards []card.Card
			if err := json.Unmarshal(obj.Data, &cards); err != nil {
				return payload{}, fmt.Errorf("decode data: %w", err)
			}
			return payload{kind: payloadCards, cards: cards}, nil
		}
		if obj.Error != nil {
			return payload{kind: payloadError, err: *obj.Error}, nil
		}
		return payload{kind: payloadUnknown}, nil
	default:
		if !json.Valid(trimmed) {
			return payload{}, fmt.Errorf("invalid JSON body")
		}
		return payload{kind: payloadUnknown}, nil
	}
}

// result collapses a payload into the cards of a successful attempt. Every
// other shape, including an empty list, is "no result this attempt".
func (p payload) result() ([]card.Card, error) {
	switch p.kind {
	case payloadCards, payloadLegacy:
		if len(p.cards) > 0 {
			return p.cards, nil
		}
		return nil, errNoResult
	case payloadError:
		return nil, fmt.Errorf("catalog error: %s", p.err)
	default:
		return nil, errNoResult
	}
}
