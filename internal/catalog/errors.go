package catalog

import "errors"

var (
	ErrEmptyQuery     = errors.New("empty search query")
	ErrSearchInFlight = errors.New("a search is already in progress")
	errNoResult       = errors.New("no cards in response")
)
