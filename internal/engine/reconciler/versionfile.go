// Package reconciler implements the staleness-detection and
// cache-invalidation protocol across the three cache layers: the SDK
// checkout, the compiled tool snapshot, and the engine artifact bundle.
//
// Each layer compares a desired version against an observed one and performs
// its refresh action only on mismatch. Stamps are written strictly after a
// refresh succeeds, so a failed refresh always leaves the layer looking
// stale on the next run.
package reconciler

import (
	"os"

	"go.trai.ch/hoist/internal/core/domain"
	"go.trai.ch/zerr"
)

// readVersionFile reads a pinned version token. Unlike stamps, version files
// are a required part of the source tree; a missing one is an error.
func readVersionFile(path string) (domain.VersionID, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is layout-derived
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to read version file"), "path", path)
	}
	return domain.ParseVersionID(string(data)), nil
}
