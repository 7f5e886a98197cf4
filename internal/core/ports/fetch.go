package ports

import "context"

// Fetcher streams artifact bundles over HTTP.
//
//go:generate go run go.uber.org/mock/mockgen -source=fetch.go -destination=mocks/mock_fetch.go -package=mocks
type Fetcher interface {
	// Download streams url into dest, invoking progress with the cumulative
	// byte count as the transfer advances. It returns the content digest of
	// the transferred bytes.
	Download(ctx context.Context, url, dest string, progress func(written int64)) (digest string, err error)
}

// Archiver extracts downloaded bundles.
type Archiver interface {
	// Extract unpacks the archive into dir.
	Extract(archive, dir string) error

	// RestoreExecutable re-applies the executable permission bits on path.
	// Extraction does not guarantee permission metadata survives.
	RestoreExecutable(path string) error
}
