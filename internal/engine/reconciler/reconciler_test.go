package reconciler_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hoist/internal/adapters/archive"
	"go.trai.ch/hoist/internal/adapters/stamp"
	"go.trai.ch/hoist/internal/adapters/telemetry"
	"go.trai.ch/hoist/internal/core/domain"
	"go.trai.ch/hoist/internal/engine/reconciler"
)

// bootstrap bundles a fully wired reconciler over fake externals.
type bootstrap struct {
	layout  domain.Layout
	vcs     *fakeVCS
	runner  *fakeRunner
	fetcher *fakeFetcher
	rec     *reconciler.Reconciler
}

func newBootstrap(t *testing.T) *bootstrap {
	t.Helper()
	layout := newFixtureLayout(t, sdkRevA, engineV1)
	settings := domain.DefaultSettings()
	stamps := stamp.NewStore()

	vcs := newFakeVCS()
	vcs.revisions[layout.Root] = hoistRev
	vcs.cloneRevision = sdkRevA
	vcs.onClone = func(root string) {
		_ = os.MkdirAll(filepath.Join(root, "bin"), 0o750)
		_ = os.WriteFile(filepath.Join(root, "bin", "forge"), []byte("runtime"), 0o755)
	}

	runner := &fakeRunner{toolStampOnWarm: sdkRevA}
	fetcher := &fakeFetcher{payload: engineZip(t)}

	rec := reconciler.New(
		layout,
		reconciler.NewCheckoutLayer(layout, settings, vcs, nopLogger{}),
		reconciler.NewSnapshotLayer(layout, stamps, vcs, runner, nopLogger{}),
		reconciler.NewEngineLayer(layout, settings, domain.PlatformLinux, stamps, fetcher, archive.NewExtractor(), nopLogger{}),
		telemetry.NewNoOp(),
	)
	return &bootstrap{layout: layout, vcs: vcs, runner: runner, fetcher: fetcher, rec: rec}
}

func (b *bootstrap) stampBytes(t *testing.T) map[string][]byte {
	t.Helper()
	out := make(map[string][]byte)
	for _, path := range []string{b.layout.BootstrapStamp(), b.layout.ToolStamp(), b.layout.EngineStamp()} {
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		out[path] = data
	}
	return out
}

func TestReconciler_FirstRunOnEmptyCache(t *testing.T) {
	b := newBootstrap(t)

	require.NoError(t, b.rec.Run(context.Background()))

	// Every layer converged: checkout cloned, snapshot compiled, engine
	// downloaded, all stamps present.
	assert.Contains(t, b.vcs.calls, "clone")
	assert.Equal(t, []string{"warm", "upgrade", "compile"}, b.runner.calls)
	assert.Equal(t, 1, b.fetcher.calls)

	for _, path := range []string{
		b.layout.RuntimeBinary(),
		b.layout.SnapshotFile(),
		b.layout.EngineBinary(),
	} {
		_, err := os.Stat(path)
		assert.NoError(t, err, path)
	}
	b.stampBytes(t)
}

func TestReconciler_SecondRunIsIdempotent(t *testing.T) {
	b := newBootstrap(t)
	require.NoError(t, b.rec.Run(context.Background()))

	before := b.stampBytes(t)
	b.vcs.calls = nil
	b.runner.calls = nil

	require.NoError(t, b.rec.Run(context.Background()))

	// No mutating action ran and the stamps are byte-identical.
	assert.Empty(t, b.vcs.calls)
	assert.Empty(t, b.runner.calls)
	assert.Equal(t, 1, b.fetcher.calls)
	assert.Equal(t, before, b.stampBytes(t))
}

func TestReconciler_CheckoutChangeInvalidatesToolCache(t *testing.T) {
	b := newBootstrap(t)
	require.NoError(t, b.rec.Run(context.Background()))

	// Pin a new SDK revision and plant a marker inside the snapshot layer's
	// cache directory. The marker must be gone before the tool runs again.
	require.NoError(t, os.WriteFile(b.layout.SDKVersionFile(), []byte(sdkRevB.String()+"\n"), 0o644))
	marker := filepath.Join(b.layout.ToolCacheDir(), "left-behind")
	require.NoError(t, os.WriteFile(marker, []byte("x"), 0o644))

	b.runner.calls = nil
	b.runner.marker = marker
	b.runner.toolStampOnWarm = sdkRevB

	require.NoError(t, b.rec.Run(context.Background()))

	require.True(t, b.runner.markerChecked)
	assert.False(t, b.runner.markerSeenOnWarm)
	// The wiped cache forces both a warm-up and a recompile.
	assert.Equal(t, []string{"warm", "upgrade", "compile"}, b.runner.calls)
}

func TestReconciler_EngineBumpTouchesOnlyEngine(t *testing.T) {
	b := newBootstrap(t)
	require.NoError(t, b.rec.Run(context.Background()))

	require.NoError(t, os.WriteFile(b.layout.EngineVersionFile(), []byte("fedcba0987654321\n"), 0o644))
	b.vcs.calls = nil
	b.runner.calls = nil

	require.NoError(t, b.rec.Run(context.Background()))

	assert.Empty(t, b.vcs.calls)
	assert.Empty(t, b.runner.calls)
	assert.Equal(t, 2, b.fetcher.calls)
}

func TestReconciler_StopsAtFirstFailure(t *testing.T) {
	b := newBootstrap(t)
	b.vcs.cloneRevision = sdkRevB
	b.vcs.stuck = true

	err := b.rec.Run(context.Background())
	require.ErrorIs(t, err, domain.ErrSyncFailed)

	// Downstream layers never ran.
	assert.Empty(t, b.runner.calls)
	assert.Zero(t, b.fetcher.calls)
}
