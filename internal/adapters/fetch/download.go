// Package fetch implements streaming artifact downloads.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/hoist/internal/core/domain"
	"go.trai.ch/hoist/internal/core/ports"
	"go.trai.ch/zerr"
)

// Downloader implements ports.Fetcher over HTTP.
type Downloader struct {
	client *http.Client
	logger ports.Logger
}

// NewDownloader creates a Downloader using the given HTTP client. A nil
// client falls back to http.DefaultClient.
func NewDownloader(client *http.Client, logger ports.Logger) *Downloader {
	if client == nil {
		client = http.DefaultClient
	}
	return &Downloader{client: client, logger: logger}
}

// Download streams url into dest, reporting cumulative bytes through the
// progress callback and returning the xxhash digest of the transferred bytes.
func (d *Downloader) Download(ctx context.Context, url, dest string, progress func(written int64)) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrDownloadFailed.Error()), "url", url)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrDownloadFailed.Error()), "url", url)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		statusErr := zerr.With(zerr.Wrap(domain.ErrDownloadFailed, "unexpected response status"), "url", url)
		return "", zerr.With(statusErr, "status", resp.StatusCode)
	}

	if err := os.MkdirAll(filepath.Dir(dest), domain.DirPerm); err != nil {
		return "", zerr.Wrap(err, "failed to create download directory")
	}

	//nolint:gosec // dest is derived from the layout, not user input
	out, err := os.Create(dest)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to create download file"), "path", dest)
	}
	defer func() { _ = out.Close() }()

	hash := xxhash.New()
	counter := &countingWriter{progress: progress}
	if _, err := io.Copy(io.MultiWriter(out, hash, counter), resp.Body); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrDownloadFailed.Error()), "url", url)
	}

	if err := out.Close(); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to flush download file"), "path", dest)
	}

	digest := fmt.Sprintf("%016x", hash.Sum64())
	d.logger.Info(fmt.Sprintf("downloaded %d bytes (xxh64:%s)", counter.written, digest))
	return digest, nil
}

// countingWriter tracks cumulative bytes and reports them to the callback.
type countingWriter struct {
	written  int64
	progress func(int64)
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.written += int64(len(p))
	if w.progress != nil {
		w.progress(w.written)
	}
	return len(p), nil
}
