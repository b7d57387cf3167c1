package archive

import (
	"errors"
	"fmt"
)

var (
	ErrCancelled  = errors.New("download cancelled")
	ErrBusy       = errors.New("download already in progress")
	ErrMissingURL = errors.New("entry has no image URL")
)

// StatusError reports a non-2xx response from the image host
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d fetching %s", e.StatusCode, e.URL)
}
