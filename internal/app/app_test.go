package app_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hoist/internal/app"
	"go.trai.ch/hoist/internal/core/domain"
	"go.trai.ch/zerr"
)

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Warn(string) {}
func (nopLogger) Error(error) {}

type fakeReconciler struct {
	err  error
	runs int
}

func (r *fakeReconciler) Run(context.Context) error {
	r.runs++
	return r.err
}

// fakeRunner only implements Delegate meaningfully; the reconcile-side methods
// are never reached from App.
type fakeRunner struct {
	code     int
	err      error
	lastArgs []string
}

func (r *fakeRunner) WarmTool(context.Context, domain.Layout) error            { return nil }
func (r *fakeRunner) UpgradeDependencies(context.Context, domain.Layout) error { return nil }
func (r *fakeRunner) CompileSnapshot(context.Context, domain.Layout) error     { return nil }

func (r *fakeRunner) Delegate(_ context.Context, _ domain.Layout, args []string) (int, error) {
	r.lastArgs = args
	return r.code, r.err
}

func TestApp_Run_DelegatesAfterReconcile(t *testing.T) {
	rec := &fakeReconciler{}
	runner := &fakeRunner{}
	a := app.New(domain.NewLayout(t.TempDir()), rec, runner, nopLogger{})

	err := a.Run(context.Background(), []string{"build", "--release"})
	require.NoError(t, err)
	assert.Equal(t, 1, rec.runs)
	assert.Equal(t, []string{"build", "--release"}, runner.lastArgs)
}

func TestApp_Run_ForwardsExitStatus(t *testing.T) {
	runner := &fakeRunner{code: 42}
	a := app.New(domain.NewLayout(t.TempDir()), &fakeReconciler{}, runner, nopLogger{})

	err := a.Run(context.Background(), []string{"test"})
	var exitErr *domain.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 42, exitErr.Code)
}

func TestApp_Run_ReconcileFailureSkipsDelegation(t *testing.T) {
	rec := &fakeReconciler{err: zerr.New("checkout broken")}
	runner := &fakeRunner{}
	a := app.New(domain.NewLayout(t.TempDir()), rec, runner, nopLogger{})

	err := a.Run(context.Background(), []string{"build"})
	require.Error(t, err)
	assert.Nil(t, runner.lastArgs)
}

func TestApp_Run_CancellationBecomesInterrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := &fakeReconciler{err: context.Canceled}
	a := app.New(domain.NewLayout(t.TempDir()), rec, &fakeRunner{}, nopLogger{})

	err := a.Run(ctx, nil)
	require.ErrorIs(t, err, domain.ErrInterrupted)
}

func TestApp_Clean(t *testing.T) {
	layout := domain.NewLayout(t.TempDir())
	mkdirs := func() {
		require.NoError(t, os.MkdirAll(layout.ToolCacheDir(), 0o750))
		require.NoError(t, os.MkdirAll(layout.EngineDir(), 0o750))
		require.NoError(t, os.WriteFile(layout.EngineStamp(), []byte("v1\n"), 0o644))
		require.NoError(t, os.MkdirAll(layout.SDKRoot(), 0o750))
	}
	a := app.New(layout, &fakeReconciler{}, &fakeRunner{}, nopLogger{})

	exists := func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	t.Run("tools only", func(t *testing.T) {
		mkdirs()
		require.NoError(t, a.Clean(context.Background(), app.CleanOptions{Tools: true}))
		assert.False(t, exists(layout.ToolCacheDir()))
		assert.True(t, exists(layout.EngineDir()))
		assert.True(t, exists(layout.SDKRoot()))
	})

	t.Run("engine removes stamp too", func(t *testing.T) {
		mkdirs()
		require.NoError(t, a.Clean(context.Background(), app.CleanOptions{Engine: true}))
		assert.False(t, exists(layout.EngineDir()))
		assert.False(t, exists(layout.EngineStamp()))
		assert.True(t, exists(layout.SDKRoot()))
	})

	t.Run("all wipes the cache root", func(t *testing.T) {
		mkdirs()
		marker := filepath.Join(layout.CacheRoot(), "extra")
		require.NoError(t, os.WriteFile(marker, []byte("x"), 0o644))
		require.NoError(t, a.Clean(context.Background(), app.CleanOptions{All: true}))
		assert.False(t, exists(layout.CacheRoot()))
	})
}
