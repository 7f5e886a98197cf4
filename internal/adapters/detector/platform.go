// Package detector classifies the running environment.
package detector

import (
	"runtime"

	"go.trai.ch/hoist/internal/core/domain"
)

// DetectPlatform classifies the host. Rejecting an unsupported architecture
// here happens before any cache work begins; it is a hard precondition.
func DetectPlatform() (domain.Platform, error) {
	return domain.DetectPlatform(runtime.GOOS, runtime.GOARCH)
}
