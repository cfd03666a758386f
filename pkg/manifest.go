package cargov

import (
	"fmt"
	"io/fs"
	"os"
)

// ManifestStore reads and writes the manifest text.
type ManifestStore interface {
	Read() (string, error)
	Write(content string) error
}

// FileManifest is a ManifestStore backed by a file on disk.
type FileManifest struct {
	Path string
}

// Read returns the file content.
func (m FileManifest) Read() (string, error) {
	data, err := os.ReadFile(m.Path)
	if err != nil {
		return "", fmt.Errorf("%w: can not load file %s: %w", ErrIO, m.Path, err)
	}
	return string(data), nil
}

// Write replaces the file content, keeping its permissions.
func (m FileManifest) Write(content string) error {
	var mode fs.FileMode = 0644
	if info, err := os.Stat(m.Path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(m.Path, []byte(content), mode); err != nil {
		return fmt.Errorf("%w: saving new content at %s: %w", ErrIO, m.Path, err)
	}
	return nil
}
