package ports

import "go.trai.ch/hoist/internal/core/domain"

// ConfigLoader loads the bootstrapper settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the settings for the given layout, applying defaults and
	// environment overrides. A missing settings file is not an error.
	Load(layout domain.Layout) (domain.Settings, error)
}
