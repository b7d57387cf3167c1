package archive

import (
	"fmt"
	"os"
	"path/filepath"
)

// Sink receives the finished archive
type Sink interface {
	Deliver(filename string, data []byte) error
}

// SinkFunc adapts a function to Sink
type SinkFunc func(filename string, data []byte) error

func (f SinkFunc) Deliver(filename string, data []byte) error { return f(filename, data) }

// DirSink writes deliveries into a directory
type DirSink struct {
	Dir string
}

func (s DirSink) Deliver(filename string, data []byte) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	return os.WriteFile(filepath.Join(s.Dir, filename), data, 0o644)
}

// Confirmer is asked before downloading more images than the threshold
type Confirmer interface {
	Confirm(count int) bool
}

// ConfirmFunc adapts a function to Confirmer
type ConfirmFunc func(count int) bool

func (f ConfirmFunc) Confirm(count int) bool { return f(count) }

// Always confirms every download
var Always = ConfirmFunc(func(int) bool { return true })
