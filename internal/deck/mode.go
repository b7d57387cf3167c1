package deck

import (
	"strings"

	"ygodeck/internal/diag"
)

// Mode selects which deck is active
type Mode string

const (
	ModeMain  Mode = "main"
	ModeExtra Mode = "extra"
)

// ParseMode accepts "main" or "extra" in any case
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeMain:
		return ModeMain, nil
	case ModeExtra:
		return ModeExtra, nil
	default:
		return "", diag.New(ErrUnknownMode, diag.MsgUnknownDeck, s)
	}
}

// Label is the Portuguese display name of the deck
func (m Mode) Label() string {
	if m == ModeExtra {
		return "Adicional"
	}
	return "Principal"
}

// Which selects a deck for Snapshot
type Which int

const (
	Active Which = iota
	Main
	Extra
)
