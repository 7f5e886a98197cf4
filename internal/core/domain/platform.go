package domain

import "go.trai.ch/zerr"

// Platform classifies the running environment for artifact selection.
type Platform string

const (
	// PlatformWindows covers Windows-like environments.
	PlatformWindows Platform = "windows"
	// PlatformMacOS covers Darwin environments.
	PlatformMacOS Platform = "macos"
	// PlatformLinux covers every other unix-like environment.
	PlatformLinux Platform = "linux"
)

// String returns the platform identifier used in download URLs.
func (p Platform) String() string {
	return string(p)
}

// DetectPlatform classifies a GOOS/GOARCH pair. Non-64-bit architectures are
// rejected outright; the bootstrapper ships no 32-bit artifact bundles.
func DetectPlatform(goos, goarch string) (Platform, error) {
	switch goarch {
	case "amd64", "arm64":
	default:
		return "", zerr.With(zerr.Wrap(ErrUnsupportedPlatform, "no published bundles for architecture"), "arch", goarch)
	}

	switch goos {
	case "windows":
		return PlatformWindows, nil
	case "darwin":
		return PlatformMacOS, nil
	default:
		return PlatformLinux, nil
	}
}
