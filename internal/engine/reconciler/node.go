package reconciler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hoist/internal/adapters/archive"
	"go.trai.ch/hoist/internal/adapters/config"
	"go.trai.ch/hoist/internal/adapters/detector"
	"go.trai.ch/hoist/internal/adapters/fetch"
	"go.trai.ch/hoist/internal/adapters/git"
	"go.trai.ch/hoist/internal/adapters/logger"
	"go.trai.ch/hoist/internal/adapters/shell"
	"go.trai.ch/hoist/internal/adapters/stamp"
	"go.trai.ch/hoist/internal/adapters/telemetry"
	"go.trai.ch/hoist/internal/core/domain"
	"go.trai.ch/hoist/internal/core/ports"
)

// NodeID is the unique identifier for the reconciler engine node.
const NodeID graft.ID = "engine.reconciler"

func init() {
	graft.Register(graft.Node[*Reconciler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.LayoutNodeID,
			config.SettingsNodeID,
			detector.NodeID,
			git.NodeID,
			stamp.NodeID,
			shell.NodeID,
			fetch.NodeID,
			archive.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: buildReconciler,
	})
}

//nolint:cyclop // linear dependency resolution
func buildReconciler(ctx context.Context) (*Reconciler, error) {
	layout, err := graft.Dep[domain.Layout](ctx)
	if err != nil {
		return nil, err
	}
	settings, err := graft.Dep[domain.Settings](ctx)
	if err != nil {
		return nil, err
	}
	platform, err := graft.Dep[domain.Platform](ctx)
	if err != nil {
		return nil, err
	}
	vcs, err := graft.Dep[ports.VCS](ctx)
	if err != nil {
		return nil, err
	}
	stamps, err := graft.Dep[ports.StampStore](ctx)
	if err != nil {
		return nil, err
	}
	runner, err := graft.Dep[ports.ToolRunner](ctx)
	if err != nil {
		return nil, err
	}
	fetcher, err := graft.Dep[ports.Fetcher](ctx)
	if err != nil {
		return nil, err
	}
	archiver, err := graft.Dep[ports.Archiver](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return New(
		layout,
		NewCheckoutLayer(layout, settings, vcs, log),
		NewSnapshotLayer(layout, stamps, vcs, runner, log),
		NewEngineLayer(layout, settings, platform, stamps, fetcher, archiver, log),
		tel,
	), nil
}
