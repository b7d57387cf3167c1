// Package diag carries user-visible diagnostics: short Portuguese messages
// attached to the sentinel errors the core returns.
package diag

import (
	"errors"
	"fmt"
)

// Error pairs a sentinel error with the message shown to the user
type Error struct {
	Err     error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// New wraps err with a formatted user message
func New(err error, format string, args ...any) *Error {
	return &Error{Err: err, Message: fmt.Sprintf(format, args...)}
}

// Message returns the user-facing text for err. Errors that carry no
// diagnostic fall back to fallback, or to err.Error() when fallback is empty.
func Message(err error, fallback string) string {
	if err == nil {
		return ""
	}
	var d *Error
	if errors.As(err, &d) {
		return d.Message
	}
	if fallback != "" {
		return fallback
	}
	return err.Error()
}
