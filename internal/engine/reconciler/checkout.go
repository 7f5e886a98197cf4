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

// CheckoutLayer reconciles the forge SDK checkout against the pinned
// revision. It never attempts incremental reconciliation: on mismatch the
// working tree is hard-reset, cleaned and re-fetched, which converges to a
// byte-identical tree regardless of prior corruption.
type CheckoutLayer struct {
	layout   domain.Layout
	settings domain.Settings
	vcs      ports.VCS
	logger   ports.Logger
}

// NewCheckoutLayer creates the SDK checkout layer.
func NewCheckoutLayer(layout domain.Layout, settings domain.Settings, vcs ports.VCS, logger ports.Logger) *CheckoutLayer {
	return &CheckoutLayer{
		layout:   layout,
		settings: settings,
		vcs:      vcs,
		logger:   logger,
	}
}

// Reconcile converges the checkout on the pinned revision. The returned flag
// reports whether the checkout version changed, which obliges the caller to
// invalidate the dependent snapshot layer.
func (l *CheckoutLayer) Reconcile(ctx context.Context) (bool, error) {
	desired, err := readVersionFile(l.layout.SDKVersionFile())
	if err != nil {
		return false, err
	}

	root := l.layout.SDKRoot()
	cloned := false
	if _, err := os.Stat(root); errors.Is(err, fs.ErrNotExist) {
		if err := l.vcs.CloneShallow(ctx, l.settings.UpstreamURL, root); err != nil {
			return false, err
		}
		cloned = true
	}

	observed, err := l.vcs.CurrentRevision(ctx, root)
	if err != nil {
		return false, err
	}

	changed := cloned || observed != desired
	if observed != desired {
		l.logger.Info("syncing SDK checkout to " + desired.Short())
		if err := l.sync(ctx, root, desired); err != nil {
			return false, err
		}
	}

	if err := l.verify(ctx, root, desired); err != nil {
		return false, err
	}
	return changed, nil
}

// sync performs the full-replace refresh sequence.
func (l *CheckoutLayer) sync(ctx context.Context, root string, desired domain.VersionID) error {
	if err := l.vcs.ResetHard(ctx, root); err != nil {
		return err
	}
	if err := l.vcs.CleanUntracked(ctx, root); err != nil {
		return err
	}
	if err := l.vcs.FetchRevision(ctx, root, desired); err != nil {
		return err
	}
	return l.vcs.CheckoutFetched(ctx, root)
}

// verify re-queries the observed revision and checks required SDK components.
// A persistent mismatch is not retried: blindly repeating a broken network or
// auth condition risks repeated partial failures.
func (l *CheckoutLayer) verify(ctx context.Context, root string, desired domain.VersionID) error {
	observed, err := l.vcs.CurrentRevision(ctx, root)
	if err != nil {
		return err
	}
	if observed != desired {
		syncErr := zerr.With(zerr.Wrap(domain.ErrSyncFailed, "checkout did not converge"), "desired", desired.String())
		syncErr = zerr.With(syncErr, "observed", observed.String())
		return zerr.With(syncErr, "root", root)
	}

	if _, err := os.Stat(l.layout.RuntimeBinary()); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrMissingComponent, "checkout is incomplete"), "path", l.layout.RuntimeBinary())
	}
	return nil
}
