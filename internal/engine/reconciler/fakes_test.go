package reconciler_test

import (
	"archive/zip"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/hoist/internal/core/domain"
	"go.trai.ch/zerr"
)

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Warn(string) {}
func (nopLogger) Error(error) {}

// fakeVCS simulates a git client over an in-memory revision per root.
type fakeVCS struct {
	revisions map[string]domain.VersionID
	fetched   domain.VersionID
	calls     []string

	// onClone materializes the checkout on disk (directories, runtime binary).
	onClone func(root string)
	// cloneRevision is the revision a fresh clone lands on.
	cloneRevision domain.VersionID
	// stuck pins the revision so checkouts never converge.
	stuck bool
}

func newFakeVCS() *fakeVCS {
	return &fakeVCS{revisions: make(map[string]domain.VersionID)}
}

func (v *fakeVCS) CurrentRevision(_ context.Context, root string) (domain.VersionID, error) {
	rev, ok := v.revisions[root]
	if !ok {
		return "", zerr.With(zerr.Wrap(domain.ErrVCSQuery, "unknown working tree"), "root", root)
	}
	return rev, nil
}

func (v *fakeVCS) CloneShallow(_ context.Context, _, root string) error {
	v.calls = append(v.calls, "clone")
	if v.onClone != nil {
		v.onClone(root)
	}
	v.revisions[root] = v.cloneRevision
	return nil
}

func (v *fakeVCS) ResetHard(_ context.Context, _ string) error {
	v.calls = append(v.calls, "reset")
	return nil
}

func (v *fakeVCS) CleanUntracked(_ context.Context, _ string) error {
	v.calls = append(v.calls, "clean")
	return nil
}

func (v *fakeVCS) FetchRevision(_ context.Context, _ string, rev domain.VersionID) error {
	v.calls = append(v.calls, "fetch")
	v.fetched = rev
	return nil
}

func (v *fakeVCS) CheckoutFetched(_ context.Context, root string) error {
	v.calls = append(v.calls, "checkout")
	if !v.stuck {
		v.revisions[root] = v.fetched
	}
	return nil
}

// fakeRunner records tool invocations. WarmTool mimics the external tool by
// writing its own stamp; CompileSnapshot materializes the snapshot file.
type fakeRunner struct {
	calls []string

	toolStampOnWarm domain.VersionID
	compileErr      error
	upgradeErr      error

	// markerSeenOnWarm reports whether the invalidation marker still existed
	// when the snapshot layer first ran.
	marker           string
	markerSeenOnWarm bool
	markerChecked    bool
}

func (r *fakeRunner) WarmTool(_ context.Context, layout domain.Layout) error {
	r.calls = append(r.calls, "warm")
	if r.marker != "" {
		_, err := os.Stat(r.marker)
		r.markerSeenOnWarm = err == nil
		r.markerChecked = true
	}
	if err := os.MkdirAll(layout.ToolCacheDir(), 0o750); err != nil {
		return err
	}
	return os.WriteFile(layout.ToolStamp(), []byte(r.toolStampOnWarm.String()+"\n"), 0o644)
}

func (r *fakeRunner) UpgradeDependencies(_ context.Context, _ domain.Layout) error {
	r.calls = append(r.calls, "upgrade")
	return r.upgradeErr
}

func (r *fakeRunner) CompileSnapshot(_ context.Context, layout domain.Layout) error {
	r.calls = append(r.calls, "compile")
	if r.compileErr != nil {
		return r.compileErr
	}
	if err := os.MkdirAll(layout.ToolCacheDir(), 0o750); err != nil {
		return err
	}
	return os.WriteFile(layout.SnapshotFile(), []byte("snapshot"), 0o644)
}

func (r *fakeRunner) Delegate(_ context.Context, _ domain.Layout, _ []string) (int, error) {
	r.calls = append(r.calls, "delegate")
	return 0, nil
}

// fakeFetcher writes a fixed payload to dest.
type fakeFetcher struct {
	payload []byte
	err     error
	calls   int
	lastURL string
}

func (f *fakeFetcher) Download(_ context.Context, url, dest string, progress func(int64)) (string, error) {
	f.calls++
	f.lastURL = url
	if f.err != nil {
		return "", f.err
	}
	if err := os.WriteFile(dest, f.payload, 0o644); err != nil {
		return "", err
	}
	if progress != nil {
		progress(int64(len(f.payload)))
	}
	return "digest", nil
}

// engineZip builds an in-memory zip with a forge_engine binary entry.
func engineZip(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("forge_engine")
	require.NoError(t, err)
	_, err = f.Write([]byte("engine binary"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

// newFixtureLayout builds a bootstrapper source root with version files and a
// locked dependency manifest.
func newFixtureLayout(t *testing.T, sdkVersion, engineVersion domain.VersionID) domain.Layout {
	t.Helper()
	layout := domain.NewLayout(t.TempDir())

	require.NoError(t, os.MkdirAll(filepath.Dir(layout.SDKVersionFile()), 0o750))
	require.NoError(t, os.WriteFile(layout.SDKVersionFile(), []byte(sdkVersion.String()+"\n"), 0o644))
	require.NoError(t, os.WriteFile(layout.EngineVersionFile(), []byte(engineVersion.String()+"\n"), 0o644))

	require.NoError(t, os.MkdirAll(filepath.Dir(layout.ManifestFile()), 0o750))
	require.NoError(t, os.WriteFile(layout.ManifestFile(), []byte("deps: []\n"), 0o644))
	require.NoError(t, os.WriteFile(layout.LockFile(), []byte("locked: []\n"), 0o644))

	return layout
}

// installSDK materializes a checkout at the given revision with the runtime
// binary present.
func installSDK(t *testing.T, layout domain.Layout, vcs *fakeVCS, rev domain.VersionID) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(layout.RuntimeBinary()), 0o750))
	require.NoError(t, os.WriteFile(layout.RuntimeBinary(), []byte("runtime"), 0o755))
	vcs.revisions[layout.SDKRoot()] = rev
}
