// Package stamp implements the file-backed version stamp store.
package stamp

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/hoist/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.StampStore using one plain-text file per stamp.
type Store struct{}

// NewStore creates a new stamp Store.
func NewStore() *Store {
	return &Store{}
}

// Read returns the trimmed stamp at path. A missing file means "never
// synchronized" and is reported via the boolean, never as an error.
func (s *Store) Read(path string) (domain.VersionID, bool, error) {
	//nolint:gosec // path is derived from the layout, not user input
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, zerr.With(zerr.Wrap(err, "failed to read stamp"), "path", path)
	}
	return domain.ParseVersionID(string(data)), true, nil
}

// Write overwrites the stamp at path, creating parent directories as needed.
func (s *Store) Write(path string, v domain.VersionID) error {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create stamp directory"), "path", path)
	}

	//nolint:gosec // path is derived from the layout, not user input
	if err := os.WriteFile(path, []byte(v.String()+"\n"), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write stamp"), "path", path)
	}
	return nil
}
