// Package config provides the bootstrapper configuration loader.
package config

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/hoist/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct{}

// NewLoader creates a new FileConfigLoader.
func NewLoader() *FileConfigLoader {
	return &FileConfigLoader{}
}

// hoistfile represents the structure of the hoist.yaml configuration file.
type hoistfile struct {
	UpstreamURL    string `yaml:"upstreamUrl"`
	StorageBaseURL string `yaml:"storageBaseUrl"`
}

// Load reads hoist.yaml from the layout root, falling back to defaults for
// absent values. The storage base URL environment override wins over both.
func (l *FileConfigLoader) Load(layout domain.Layout) (domain.Settings, error) {
	settings := domain.DefaultSettings()

	data, err := os.ReadFile(layout.SettingsFile()) //nolint:gosec // path is layout-derived
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Optional file; defaults apply.
	case err != nil:
		return domain.Settings{}, zerr.Wrap(err, "failed to read config file")
	default:
		var dto hoistfile
		if err := yaml.Unmarshal(data, &dto); err != nil {
			return domain.Settings{}, zerr.Wrap(err, "failed to parse config file")
		}
		if dto.UpstreamURL != "" {
			settings.UpstreamURL = dto.UpstreamURL
		}
		if dto.StorageBaseURL != "" {
			settings.StorageBaseURL = dto.StorageBaseURL
		}
	}

	if override := os.Getenv(domain.StorageBaseURLEnv); override != "" {
		settings.StorageBaseURL = override
	}

	return settings, nil
}
