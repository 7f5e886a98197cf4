package reconciler

import (
	"context"
	"os"

	"go.trai.ch/hoist/internal/core/domain"
	"go.trai.ch/hoist/internal/core/ports"
	"go.trai.ch/zerr"
)

// Reconciler runs the cache layers in dependency order: the SDK checkout
// settles first, then the snapshot and engine layers (independent of each
// other, run sequentially for simplicity). A checkout version change
// invalidates the snapshot layer's cache wholesale before that layer runs,
// even when it would have re-derived identical content.
type Reconciler struct {
	layout    domain.Layout
	checkout  *CheckoutLayer
	snapshot  *SnapshotLayer
	engine    *EngineLayer
	telemetry ports.Telemetry
}

// New creates a Reconciler over the three layers.
func New(layout domain.Layout, checkout *CheckoutLayer, snapshot *SnapshotLayer, engine *EngineLayer, telemetry ports.Telemetry) *Reconciler {
	return &Reconciler{
		layout:    layout,
		checkout:  checkout,
		snapshot:  snapshot,
		engine:    engine,
		telemetry: telemetry,
	}
}

// Run reconciles all layers, stopping at the first failure.
func (r *Reconciler) Run(ctx context.Context) error {
	changed, err := r.record(ctx, "sync sdk checkout", r.checkout.Reconcile)
	if err != nil {
		return err
	}
	if changed {
		if err := os.RemoveAll(r.layout.ToolCacheDir()); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to invalidate tool cache"), "path", r.layout.ToolCacheDir())
		}
	}

	if _, err := r.record(ctx, "compile tool snapshot", r.snapshot.Reconcile); err != nil {
		return err
	}

	if _, err := r.record(ctx, "sync engine artifacts", r.engine.Reconcile); err != nil {
		return err
	}
	return nil
}

// record wraps one layer reconcile in a telemetry vertex.
func (r *Reconciler) record(ctx context.Context, name string, fn func(context.Context) (bool, error)) (bool, error) {
	ctx, vtx := r.telemetry.Record(ctx, name)

	changed, err := fn(ctx)
	if err != nil {
		vtx.Complete(err)
		return false, err
	}
	if !changed {
		vtx.Cached()
	}
	vtx.Complete(nil)
	return changed, nil
}
