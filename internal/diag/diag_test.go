package diag

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSample = errors.New("sample")

func TestError(t *testing.T) {
	err := New(errSample, MsgDeckFull, "Principal", 60)

	assert.Equal(t, "Deck Principal já atingiu o máximo de 60 cartas", err.Error())
	assert.ErrorIs(t, err, errSample)

	wrapped := fmt.Errorf("add: %w", err)
	assert.ErrorIs(t, wrapped, errSample)
	assert.Equal(t, err.Message, Message(wrapped, ""))
}

func TestMessage(t *testing.T) {
	assert.Empty(t, Message(nil, "x"))
	assert.Equal(t, "fallback", Message(errSample, "fallback"))
	assert.Equal(t, "sample", Message(errSample, ""))
}
