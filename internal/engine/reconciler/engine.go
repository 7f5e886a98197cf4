package reconciler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/hoist/internal/core/domain"
	"go.trai.ch/hoist/internal/core/ports"
	"go.trai.ch/zerr"
)

// tempArchiveName is the in-flight download inside the engine directory.
const tempArchiveName = "engine.zip.part"

// progressStep is how often cumulative download progress is logged.
const progressStep int64 = 8 << 20

// EngineLayer reconciles the platform engine artifact bundle. The refresh is
// a full replace: the cache directory is deleted and rebuilt from a fresh
// download, never patched incrementally.
type EngineLayer struct {
	layout   domain.Layout
	settings domain.Settings
	platform domain.Platform
	stamps   ports.StampStore
	fetcher  ports.Fetcher
	archiver ports.Archiver
	logger   ports.Logger
}

// NewEngineLayer creates the engine artifact layer.
func NewEngineLayer(
	layout domain.Layout,
	settings domain.Settings,
	platform domain.Platform,
	stamps ports.StampStore,
	fetcher ports.Fetcher,
	archiver ports.Archiver,
	logger ports.Logger,
) *EngineLayer {
	return &EngineLayer{
		layout:   layout,
		settings: settings,
		platform: platform,
		stamps:   stamps,
		fetcher:  fetcher,
		archiver: archiver,
		logger:   logger,
	}
}

// Reconcile downloads and extracts the pinned engine bundle on mismatch.
func (l *EngineLayer) Reconcile(ctx context.Context) (bool, error) {
	desired, err := readVersionFile(l.layout.EngineVersionFile())
	if err != nil {
		return false, err
	}

	observed, ok, err := l.stamps.Read(l.layout.EngineStamp())
	if err != nil {
		return false, err
	}
	if ok && observed == desired {
		return false, nil
	}

	if err := l.refresh(ctx, desired); err != nil {
		return false, err
	}
	return true, nil
}

func (l *EngineLayer) refresh(ctx context.Context, desired domain.VersionID) error {
	dir := l.layout.EngineDir()
	if err := os.RemoveAll(dir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to clear engine directory"), "path", dir)
	}
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create engine directory"), "path", dir)
	}

	url := domain.DownloadURL(l.settings.StorageBaseURL, desired, l.platform)
	archive := filepath.Join(dir, tempArchiveName)

	// One cleanup scope covers both a failed transfer and a failed
	// extraction: the temporary archive never survives the reconcile.
	defer func() { _ = os.Remove(archive) }()

	l.logger.Info("downloading engine " + desired.Short() + " from " + url)
	if _, err := l.fetcher.Download(ctx, url, archive, l.reportProgress()); err != nil {
		return err
	}

	if err := l.archiver.Extract(archive, dir); err != nil {
		return zerr.With(err, "url", url)
	}

	if l.platform != domain.PlatformWindows {
		if err := l.archiver.RestoreExecutable(l.layout.EngineBinary()); err != nil {
			return err
		}
	}

	return l.stamps.Write(l.layout.EngineStamp(), desired)
}

// reportProgress logs cumulative transfer size at coarse intervals.
func (l *EngineLayer) reportProgress() func(int64) {
	var next int64 = progressStep
	return func(written int64) {
		if written >= next {
			l.logger.Info(fmt.Sprintf("received %d MB", written>>20))
			next += progressStep
		}
	}
}
