// Package app implements the application layer for hoist.
package app

import (
	"context"
	"os"

	"go.trai.ch/hoist/internal/core/domain"
	"go.trai.ch/hoist/internal/core/ports"
	"go.trai.ch/zerr"
)

// Reconciler brings all cache layers current before delegation.
type Reconciler interface {
	Run(ctx context.Context) error
}

// App represents the main application logic: bring the caches current, then
// hand control to the tool.
type App struct {
	layout     domain.Layout
	reconciler Reconciler
	runner     ports.ToolRunner
	logger     ports.Logger
}

// New creates a new App instance.
func New(layout domain.Layout, rec Reconciler, runner ports.ToolRunner, logger ports.Logger) *App {
	return &App{
		layout:     layout,
		reconciler: rec,
		runner:     runner,
		logger:     logger,
	}
}

// Run reconciles all cache layers and delegates to the tool snapshot with the
// given arguments. A non-zero tool exit surfaces as *domain.ExitError so main
// can forward the status unchanged.
func (a *App) Run(ctx context.Context, args []string) error {
	if err := a.reconciler.Run(ctx); err != nil {
		if ctx.Err() != nil {
			return domain.ErrInterrupted
		}
		return zerr.Wrap(err, "bootstrap failed")
	}

	code, err := a.runner.Delegate(ctx, a.layout, args)
	if err != nil {
		return err
	}
	if code != 0 {
		return &domain.ExitError{Code: code}
	}
	return nil
}

// CleanOptions selects which caches Clean removes.
type CleanOptions struct {
	Tools  bool
	Engine bool
	All    bool
}

// Clean removes the selected cache state. The next run rebuilds whatever was
// removed; stamps are deleted together with the state they describe.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	if opts.All {
		a.logger.Info("removing cache root " + a.layout.CacheRoot())
		return removeAll(a.layout.CacheRoot())
	}

	if opts.Tools {
		a.logger.Info("removing tool cache " + a.layout.ToolCacheDir())
		if err := removeAll(a.layout.ToolCacheDir()); err != nil {
			return err
		}
	}
	if opts.Engine {
		a.logger.Info("removing engine artifacts " + a.layout.EngineDir())
		if err := removeAll(a.layout.EngineDir()); err != nil {
			return err
		}
		if err := os.Remove(a.layout.EngineStamp()); err != nil && !os.IsNotExist(err) {
			return zerr.With(zerr.Wrap(err, "failed to remove engine stamp"), "path", a.layout.EngineStamp())
		}
	}
	return nil
}

func removeAll(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove cache directory"), "path", path)
	}
	return nil
}
