package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hoist/internal/core/domain"
	"go.trai.ch/hoist/internal/core/ports"
)

const (
	// LayoutNodeID is the unique identifier for the layout node.
	LayoutNodeID graft.ID = "adapter.config.layout"
	// SettingsNodeID is the unique identifier for the settings node.
	SettingsNodeID graft.ID = "adapter.config.settings"
	// NodeID is the unique identifier for the config loader node.
	NodeID graft.ID = "adapter.config"
)

func init() {
	graft.Register(graft.Node[domain.Layout]{
		ID:        LayoutNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (domain.Layout, error) {
			root, err := ResolveRoot()
			if err != nil {
				return domain.Layout{}, err
			}
			return domain.NewLayout(root), nil
		},
	})

	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ConfigLoader, error) {
			return NewLoader(), nil
		},
	})

	graft.Register(graft.Node[domain.Settings]{
		ID:        SettingsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{LayoutNodeID, NodeID},
		Run: func(ctx context.Context) (domain.Settings, error) {
			layout, err := graft.Dep[domain.Layout](ctx)
			if err != nil {
				return domain.Settings{}, err
			}
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return domain.Settings{}, err
			}
			return loader.Load(layout)
		},
	})
}
