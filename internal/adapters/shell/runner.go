// Package shell implements the tool runner by spawning the SDK runtime.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/hoist/internal/core/domain"
	"go.trai.ch/hoist/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.ToolRunner using os/exec against the SDK runtime.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// WarmTool performs one warm-up invocation of the forge tool. The tool
// rewrites its own stamp as a side effect; the bootstrapper ignores output
// beyond logging it.
func (r *Runner) WarmTool(ctx context.Context, layout domain.Layout) error {
	err := r.runLogged(ctx, layout.Root,
		layout.RuntimeBinary(), "warmup", "--cache-dir="+layout.ToolCacheDir())
	if err != nil {
		return zerr.Wrap(err, "tool warm-up failed")
	}
	return nil
}

// UpgradeDependencies resolves and upgrades the tool's declared dependencies.
func (r *Runner) UpgradeDependencies(ctx context.Context, layout domain.Layout) error {
	err := r.runLogged(ctx, layout.Root,
		layout.RuntimeBinary(), "deps", "upgrade", "--manifest="+layout.ManifestFile())
	if err != nil {
		return zerr.Wrap(err, domain.ErrCompileFailed.Error())
	}
	return nil
}

// CompileSnapshot compiles the tool entry script into a standalone snapshot.
func (r *Runner) CompileSnapshot(ctx context.Context, layout domain.Layout) error {
	if err := os.MkdirAll(layout.ToolCacheDir(), domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create tool cache directory")
	}

	err := r.runLogged(ctx, layout.Root,
		layout.RuntimeBinary(), "snapshot", "--output="+layout.SnapshotFile(), layout.EntryScript())
	if err != nil {
		return zerr.Wrap(err, domain.ErrCompileFailed.Error())
	}
	return nil
}

// Delegate hands control to the compiled tool snapshot with the caller's
// arguments and inherited stdio, returning the tool's exit status.
func (r *Runner) Delegate(ctx context.Context, layout domain.Layout, args []string) (int, error) {
	argv := append([]string{layout.SnapshotFile(), "--forge-root=" + layout.Root}, args...)

	//nolint:gosec // argv head is layout-derived; the tail is deliberately passed through
	cmd := exec.CommandContext(ctx, layout.RuntimeBinary(), argv...)
	cmd.Dir = layout.Root
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if ctx.Err() != nil {
		return 1, domain.ErrInterrupted
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 1, zerr.Wrap(err, "failed to start delegated tool")
	}
	return 0, nil
}

// runLogged runs one command, streaming its output line by line to the
// logger, and folds the exit code into the returned error.
func (r *Runner) runLogged(ctx context.Context, dir, name string, args ...string) error {
	//nolint:gosec // argument lists are fixed per method, not user input
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	stdout := &logWriter{logger: r.logger, level: "info"}
	stderr := &logWriter{logger: r.logger, level: "error"}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	_ = stdout.Close()
	_ = stderr.Close()
	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode)
	}
	return nil
}

// logWriter buffers partial writes and emits whole lines to the logger.
type logWriter struct {
	logger ports.Logger
	level  string
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	msg := strings.TrimSuffix(string(line), "\r")
	if w.level == "info" {
		w.logger.Info(msg)
	} else {
		w.logger.Error(zerr.New(msg))
	}
}
