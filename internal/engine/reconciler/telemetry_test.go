package reconciler_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/hoist/internal/adapters/archive"
	"go.trai.ch/hoist/internal/adapters/stamp"
	"go.trai.ch/hoist/internal/adapters/telemetry"
	"go.trai.ch/hoist/internal/core/domain"
	"go.trai.ch/hoist/internal/core/ports/mocks"
	"go.trai.ch/hoist/internal/engine/reconciler"
	"go.uber.org/mock/gomock"
)

// buildLayers wires the three layers over fakes, so tests can pair them with
// different telemetry implementations.
func buildLayers(t *testing.T) (domain.Layout, *reconciler.CheckoutLayer, *reconciler.SnapshotLayer, *reconciler.EngineLayer) {
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

	return layout,
		reconciler.NewCheckoutLayer(layout, settings, vcs, nopLogger{}),
		reconciler.NewSnapshotLayer(layout, stamps, vcs, runner, nopLogger{}),
		reconciler.NewEngineLayer(layout, settings, domain.PlatformLinux, stamps, fetcher, archive.NewExtractor(), nopLogger{})
}

func TestReconciler_ColdRunRecordsOneVertexPerLayer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	layout, checkout, snapshot, engine := buildLayers(t)

	tel := mocks.NewMockTelemetry(ctrl)
	vtx := mocks.NewMockVertex(ctrl)

	gomock.InOrder(
		tel.EXPECT().Record(gomock.Any(), "sync sdk checkout").Return(context.Background(), vtx),
		tel.EXPECT().Record(gomock.Any(), "compile tool snapshot").Return(context.Background(), vtx),
		tel.EXPECT().Record(gomock.Any(), "sync engine artifacts").Return(context.Background(), vtx),
	)
	// Every layer does work on a cold cache, so no vertex is marked cached.
	vtx.EXPECT().Complete(nil).Times(3)

	rec := reconciler.New(layout, checkout, snapshot, engine, tel)
	require.NoError(t, rec.Run(context.Background()))
}

func TestReconciler_WarmRunMarksVerticesCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	layout, checkout, snapshot, engine := buildLayers(t)
	require.NoError(t, reconciler.New(layout, checkout, snapshot, engine, telemetry.NewNoOp()).Run(context.Background()))

	tel := mocks.NewMockTelemetry(ctrl)
	vtx := mocks.NewMockVertex(ctrl)
	tel.EXPECT().Record(gomock.Any(), gomock.Any()).Return(context.Background(), vtx).Times(3)
	vtx.EXPECT().Cached().Times(3)
	vtx.EXPECT().Complete(nil).Times(3)

	rec := reconciler.New(layout, checkout, snapshot, engine, tel)
	require.NoError(t, rec.Run(context.Background()))
}
