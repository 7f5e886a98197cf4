package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/hoist/internal/core/domain"
	"go.trai.ch/zerr"
)

// ResolveRoot determines the bootstrapper's source root. The HOIST_ROOT
// environment variable wins; otherwise the root is derived from the running
// executable's location (<root>/bin/hoist).
func ResolveRoot() (string, error) {
	if root := os.Getenv(domain.RootEnv); root != "" {
		return filepath.Clean(root), nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", zerr.Wrap(err, "failed to locate executable")
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	dir := filepath.Dir(exe)
	if filepath.Base(dir) == domain.BinDirName {
		return filepath.Dir(dir), nil
	}
	return dir, nil
}
