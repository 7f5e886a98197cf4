package fetch_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hoist/internal/adapters/fetch"
	"go.trai.ch/hoist/internal/core/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Warn(string) {}
func (nopLogger) Error(error) {}

func TestDownloader_Download(t *testing.T) {
	payload := []byte("engine artifact bundle bytes")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "artifacts", "engine", "engine.zip")
	var last int64
	d := fetch.NewDownloader(srv.Client(), nopLogger{})
	digest, err := d.Download(context.Background(), srv.URL, dest, func(written int64) { last = written })
	require.NoError(t, err)
	assert.Len(t, digest, 16)
	assert.Equal(t, int64(len(payload)), last)

	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestDownloader_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.NotFound(w, nil)
	}))
	defer srv.Close()

	d := fetch.NewDownloader(srv.Client(), nopLogger{})
	_, err := d.Download(context.Background(), srv.URL+"/missing.zip", filepath.Join(t.TempDir(), "x.zip"), nil)
	require.ErrorIs(t, err, domain.ErrDownloadFailed)
}

func TestDownloader_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	srv.Close() // refuse connections

	d := fetch.NewDownloader(nil, nopLogger{})
	_, err := d.Download(context.Background(), srv.URL, filepath.Join(t.TempDir(), "x.zip"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrDownloadFailed.Error())
}

func TestDownloader_DigestIsStable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("fixed content"))
	}))
	defer srv.Close()

	d := fetch.NewDownloader(srv.Client(), nopLogger{})
	dir := t.TempDir()

	first, err := d.Download(context.Background(), srv.URL, filepath.Join(dir, "a.zip"), nil)
	require.NoError(t, err)
	second, err := d.Download(context.Background(), srv.URL, filepath.Join(dir, "b.zip"), nil)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
