package ports

import "go.trai.ch/hoist/internal/core/domain"

// StampStore reads and writes the version markers of the cache layers.
//
//go:generate go run go.uber.org/mock/mockgen -source=stamps.go -destination=mocks/mock_stamps.go -package=mocks
type StampStore interface {
	// Read returns the trimmed stamp at path. The second return is false when
	// the file does not exist, meaning "never synchronized" — distinct from a
	// present-but-empty stamp. A missing file is never an error.
	Read(path string) (domain.VersionID, bool, error)

	// Write overwrites the stamp at path, creating parent directories as
	// needed. A write failure is fatal for the caller: a broken stamp means
	// the cache cannot be trusted.
	Write(path string, v domain.VersionID) error
}
