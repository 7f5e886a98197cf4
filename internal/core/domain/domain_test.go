package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hoist/internal/core/domain"
)

func TestParseVersionID_Trims(t *testing.T) {
	assert.Equal(t, domain.VersionID("abc123"), domain.ParseVersionID("  abc123\n"))
	assert.Equal(t, domain.VersionID(""), domain.ParseVersionID("\n\t "))
}

func TestVersionID_Short(t *testing.T) {
	assert.Equal(t, "abcdef1", domain.VersionID("abcdef1234567890").Short())
	assert.Equal(t, "v1.2", domain.VersionID("v1.2").Short())
}

func TestDownloadURL(t *testing.T) {
	url := domain.DownloadURL("https://storage.trai.ch/forge", "abcdef1234567890", domain.PlatformLinux)
	assert.Equal(t, "https://storage.trai.ch/forge/download/abcdef1/linux-x64.zip", url)

	// Trailing slash on the base must not double up.
	url = domain.DownloadURL("https://example.com/base/", "abcdef1234567890", domain.PlatformMacOS)
	assert.Equal(t, "https://example.com/base/download/abcdef1/macos-x64.zip", url)
}

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		goos, goarch string
		want         domain.Platform
		wantErr      bool
	}{
		{"linux", "amd64", domain.PlatformLinux, false},
		{"darwin", "arm64", domain.PlatformMacOS, false},
		{"windows", "amd64", domain.PlatformWindows, false},
		{"freebsd", "amd64", domain.PlatformLinux, false},
		{"linux", "386", "", true},
		{"windows", "arm", "", true},
	}

	for _, tt := range tests {
		got, err := domain.DetectPlatform(tt.goos, tt.goarch)
		if tt.wantErr {
			require.ErrorIs(t, err, domain.ErrUnsupportedPlatform)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestLayout_Paths(t *testing.T) {
	l := domain.NewLayout("/opt/hoist")

	assert.Equal(t, filepath.Join("/opt/hoist", "bin", "cache"), l.CacheRoot())
	assert.Equal(t, filepath.Join(l.CacheRoot(), "forge-sdk"), l.SDKRoot())
	assert.Equal(t, filepath.Join(l.CacheRoot(), "tool", "forge_tool.snapshot"), l.SnapshotFile())
	assert.Equal(t, filepath.Join(l.CacheRoot(), "tool", "hoist.stamp"), l.BootstrapStamp())
	assert.Equal(t, filepath.Join(l.CacheRoot(), "artifacts", "engine.stamp"), l.EngineStamp())
	assert.Equal(t, filepath.Join("/opt/hoist", "bin", "internal", "forge.version"), l.SDKVersionFile())

	// The snapshot layer's cache directory must not contain the SDK checkout:
	// invalidation deletes it wholesale.
	rel, err := filepath.Rel(l.ToolCacheDir(), l.SDKRoot())
	require.NoError(t, err)
	assert.Contains(t, rel, "..")
}
