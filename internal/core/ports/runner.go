package ports

import (
	"context"

	"go.trai.ch/hoist/internal/core/domain"
)

// ToolRunner invokes the forge SDK's own tooling, one method per external
// action. Every method blocks until the spawned process exits.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type ToolRunner interface {
	// WarmTool performs one self-warming invocation of the forge tool so it
	// rebuilds its internal caches and rewrites its own stamp. The
	// bootstrapper never writes that stamp itself.
	WarmTool(ctx context.Context, layout domain.Layout) error

	// UpgradeDependencies resolves and upgrades the tool's declared
	// dependencies before a snapshot compile.
	UpgradeDependencies(ctx context.Context, layout domain.Layout) error

	// CompileSnapshot compiles the tool entry script into a standalone
	// snapshot at layout.SnapshotFile().
	CompileSnapshot(ctx context.Context, layout domain.Layout) error

	// Delegate hands control to the compiled tool with the caller's argument
	// list, inheriting stdio, and returns the tool's exit status.
	Delegate(ctx context.Context, layout domain.Layout, args []string) (int, error)
}
