package deck

import (
	"errors"

	"ygodeck/internal/diag"
)

var (
	ErrDeckFull     = errors.New("deck size limit reached")
	ErrCopyLimit    = errors.New("per-card copy limit reached")
	ErrNoEntry      = errors.New("no deck entry at index")
	ErrInvalidDelta = errors.New("quantity delta must be +1 or -1")
	ErrUnknownMode  = errors.New("unknown deck mode")
	ErrEmptyDeck    = errors.New("deck is empty")
)

// EmptyDeckError is returned by operations that need at least one card
func EmptyDeckError() error {
	return diag.New(ErrEmptyDeck, diag.MsgEmptyDeck)
}
