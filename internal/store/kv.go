package store

import (
	"errors"
	"fmt"
)

// ErrClosed is returned by operations on a closed store
var ErrClosed = errors.New("store is closed")

// KV is the key/value capability deck persistence is built on
type KV interface {
	// Get returns the value for key and whether it exists
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}

// Backend names accepted by Open
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Open returns the KV backend named by backend. path is ignored for memory.
func Open(backend, path string) (KV, error) {
	switch backend {
	case BackendMemory:
		return NewMemoryStore(), nil
	case BackendFile:
		return OpenFile(path)
	case BackendSQLite:
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
