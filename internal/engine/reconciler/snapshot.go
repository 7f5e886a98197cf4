package reconciler

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/hoist/internal/core/domain"
	"go.trai.ch/hoist/internal/core/ports"
	"go.trai.ch/zerr"
)

// SnapshotLayer keeps the compiled tool snapshot current. It watches two
// independent stamps:
//
//   - the forge tool's own warm-up stamp, written by the tool itself after
//     its first invocation; a mismatch against the pinned SDK version forces
//     one warm-up run and nothing else,
//   - the bootstrapper's snapshot stamp, keyed on the bootstrapper's own
//     source revision (not the SDK's).
type SnapshotLayer struct {
	layout domain.Layout
	stamps ports.StampStore
	vcs    ports.VCS
	runner ports.ToolRunner
	logger ports.Logger
}

// NewSnapshotLayer creates the compiled snapshot layer.
func NewSnapshotLayer(layout domain.Layout, stamps ports.StampStore, vcs ports.VCS, runner ports.ToolRunner, logger ports.Logger) *SnapshotLayer {
	return &SnapshotLayer{
		layout: layout,
		stamps: stamps,
		vcs:    vcs,
		runner: runner,
		logger: logger,
	}
}

// Reconcile warms the tool cache and recompiles the snapshot as needed.
func (l *SnapshotLayer) Reconcile(ctx context.Context) (bool, error) {
	desiredSDK, err := readVersionFile(l.layout.SDKVersionFile())
	if err != nil {
		return false, err
	}

	warmed, err := l.warmTool(ctx, desiredSDK)
	if err != nil {
		return false, err
	}

	rev, err := l.vcs.CurrentRevision(ctx, l.layout.Root)
	if err != nil {
		return false, err
	}

	stale, err := l.snapshotStale(rev)
	if err != nil {
		return false, err
	}
	if !stale {
		return warmed, nil
	}

	l.logger.Info("compiling tool snapshot")
	if err := l.runner.UpgradeDependencies(ctx, l.layout); err != nil {
		return false, err
	}
	if err := l.runner.CompileSnapshot(ctx, l.layout); err != nil {
		return false, err
	}

	// Stamp strictly after success. A half-compiled snapshot must never be
	// stamped as valid.
	if err := l.stamps.Write(l.layout.BootstrapStamp(), rev); err != nil {
		return false, err
	}
	return true, nil
}

// warmTool triggers the tool's self-warming invocation when its own stamp
// disagrees with the pinned SDK version. The tool manages that stamp; the
// bootstrapper only reads it.
func (l *SnapshotLayer) warmTool(ctx context.Context, desiredSDK domain.VersionID) (bool, error) {
	observed, ok, err := l.stamps.Read(l.layout.ToolStamp())
	if err != nil {
		return false, err
	}
	if ok && observed == desiredSDK {
		return false, nil
	}

	l.logger.Info("warming tool cache")
	if err := l.runner.WarmTool(ctx, l.layout); err != nil {
		return false, err
	}
	return true, nil
}

// snapshotStale reports whether any of the three recompile triggers fired:
// missing snapshot, stamp behind the bootstrapper revision, or a dependency
// manifest edited after its lock file.
func (l *SnapshotLayer) snapshotStale(rev domain.VersionID) (bool, error) {
	if _, err := os.Stat(l.layout.SnapshotFile()); errors.Is(err, fs.ErrNotExist) {
		return true, nil
	}

	stamp, ok, err := l.stamps.Read(l.layout.BootstrapStamp())
	if err != nil {
		return false, err
	}
	if !ok || stamp != rev {
		return true, nil
	}

	manifest, err := os.Stat(l.layout.ManifestFile())
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to stat dependency manifest"), "path", l.layout.ManifestFile())
	}
	lock, err := os.Stat(l.layout.LockFile())
	if errors.Is(err, fs.ErrNotExist) {
		// Dependencies were never locked.
		return true, nil
	}
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to stat lock file"), "path", l.layout.LockFile())
	}

	return manifest.ModTime().After(lock.ModTime()), nil
}
