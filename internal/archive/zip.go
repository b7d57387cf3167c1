package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"sort"
)

// Builder collects files and produces the archive
type Builder interface {
	// Add stores data under path, replacing any earlier file at that path
	Add(path string, data []byte) error
	Finalize() ([]byte, error)
}

// ZipBuilder assembles a ZIP archive in memory
type ZipBuilder struct {
	files map[string][]byte
}

func NewZipBuilder() Builder {
	return &ZipBuilder{files: make(map[string][]byte)}
}

func (b *ZipBuilder) Add(path string, data []byte) error {
	b.files[path] = data
	return nil
}

// Finalize writes every file, sorted by path
func (b *ZipBuilder) Finalize() ([]byte, error) {
	paths := make([]string, 0, len(b.files))
	for p := range b.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, p := range paths {
		w, err := zw.Create(p)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", p, err)
		}
		if _, err := w.Write(b.files[p]); err != nil {
			return nil, fmt.Errorf("write %s: %w", p, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close archive: %w", err)
	}
	return buf.Bytes(), nil
}
