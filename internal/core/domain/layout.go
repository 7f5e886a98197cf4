package domain

import "path/filepath"

const (
	// BinDirName is the name of the binary directory inside the source root.
	BinDirName = "bin"

	// InternalDirName is the directory holding the pinned version files.
	InternalDirName = "internal"

	// CacheDirName is the name of the cache directory under bin.
	CacheDirName = "cache"

	// SDKDirName is the name of the managed forge SDK checkout.
	SDKDirName = "forge-sdk"

	// ToolCacheDirName holds the compiled snapshot and its stamps.
	ToolCacheDirName = "tool"

	// ArtifactsDirName is the root of downloaded artifact bundles.
	ArtifactsDirName = "artifacts"

	// EngineDirName holds the extracted engine bundle.
	EngineDirName = "engine"

	// SDKVersionFileName pins the forge SDK revision.
	SDKVersionFileName = "forge.version"

	// EngineVersionFileName pins the engine artifact bundle version.
	EngineVersionFileName = "engine.version"

	// SnapshotFileName is the compiled tool snapshot.
	SnapshotFileName = "forge_tool.snapshot"

	// BootstrapStampFileName records the bootstrapper revision the snapshot
	// was compiled from.
	BootstrapStampFileName = "hoist.stamp"

	// ToolStampFileName is written by the forge tool itself after its first
	// invocation. The bootstrapper only ever reads it.
	ToolStampFileName = "forge_tool.stamp"

	// EngineStampFileName records the last synchronized engine version.
	EngineStampFileName = "engine.stamp"

	// EngineBinaryName is the binary whose exec bit is restored after
	// extraction on unix-like platforms.
	EngineBinaryName = "forge_engine"

	// RuntimeBinaryName is the SDK runtime used to compile and run snapshots.
	RuntimeBinaryName = "forge"

	// SettingsFileName is the bootstrapper configuration file.
	SettingsFileName = "hoist.yaml"

	// StorageBaseURLEnv overrides the artifact download base location.
	StorageBaseURLEnv = "HOIST_STORAGE_BASE_URL"

	// RootEnv overrides the derived bootstrapper source root.
	RootEnv = "HOIST_ROOT"

	// DefaultStorageBaseURL is the default artifact download base location.
	DefaultStorageBaseURL = "https://storage.trai.ch/forge"

	// DefaultUpstreamURL is the default forge SDK repository.
	DefaultUpstreamURL = "https://git.trai.ch/forge/sdk.git"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// ExecPerm is the permission restored on extracted binaries (rwxr-xr-x).
	ExecPerm = 0o755
)

// Layout describes every path the bootstrapper touches, derived once from the
// source root at startup and passed to each component. Each cache layer owns
// exactly one subdirectory; nothing is shared between layers.
type Layout struct {
	// Root is the bootstrapper's own source root, a git working tree.
	Root string
}

// NewLayout creates a Layout rooted at the given source root.
func NewLayout(root string) Layout {
	return Layout{Root: filepath.Clean(root)}
}

// CacheRoot is the root of all cached state.
func (l Layout) CacheRoot() string {
	return filepath.Join(l.Root, BinDirName, CacheDirName)
}

// SDKRoot is the managed forge SDK checkout.
func (l Layout) SDKRoot() string {
	return filepath.Join(l.CacheRoot(), SDKDirName)
}

// SDKVersionFile pins the desired SDK revision.
func (l Layout) SDKVersionFile() string {
	return filepath.Join(l.Root, BinDirName, InternalDirName, SDKVersionFileName)
}

// EngineVersionFile pins the desired engine artifact version.
func (l Layout) EngineVersionFile() string {
	return filepath.Join(l.Root, BinDirName, InternalDirName, EngineVersionFileName)
}

// ToolCacheDir is the snapshot layer's cache directory. It is deleted
// wholesale when the SDK checkout version changes.
func (l Layout) ToolCacheDir() string {
	return filepath.Join(l.CacheRoot(), ToolCacheDirName)
}

// SnapshotFile is the compiled tool snapshot.
func (l Layout) SnapshotFile() string {
	return filepath.Join(l.ToolCacheDir(), SnapshotFileName)
}

// BootstrapStamp records the bootstrapper revision the snapshot was built at.
func (l Layout) BootstrapStamp() string {
	return filepath.Join(l.ToolCacheDir(), BootstrapStampFileName)
}

// ToolStamp is the forge tool's own warm-up stamp.
func (l Layout) ToolStamp() string {
	return filepath.Join(l.ToolCacheDir(), ToolStampFileName)
}

// EngineDir is the artifact layer's cache directory.
func (l Layout) EngineDir() string {
	return filepath.Join(l.CacheRoot(), ArtifactsDirName, EngineDirName)
}

// EngineStamp records the last synchronized engine version. It lives beside
// the engine directory, not inside it: the refresh deletes that directory
// wholesale, and a failed refresh must leave the prior stamp intact.
func (l Layout) EngineStamp() string {
	return filepath.Join(l.CacheRoot(), ArtifactsDirName, EngineStampFileName)
}

// EngineBinary is the extracted engine binary.
func (l Layout) EngineBinary() string {
	return filepath.Join(l.EngineDir(), EngineBinaryName)
}

// ManifestFile is the tool's dependency manifest.
func (l Layout) ManifestFile() string {
	return filepath.Join(l.Root, ToolCacheDirName, "manifest.yaml")
}

// LockFile is the resolved dependency lock for the manifest.
func (l Layout) LockFile() string {
	return filepath.Join(l.Root, ToolCacheDirName, "manifest.lock")
}

// EntryScript is the tool entry point compiled into the snapshot.
func (l Layout) EntryScript() string {
	return filepath.Join(l.Root, ToolCacheDirName, BinDirName, "forge_tool")
}

// RuntimeBinary is the SDK runtime executable.
func (l Layout) RuntimeBinary() string {
	return filepath.Join(l.SDKRoot(), BinDirName, RuntimeBinaryName)
}

// SettingsFile is the optional bootstrapper configuration file.
func (l Layout) SettingsFile() string {
	return filepath.Join(l.Root, SettingsFileName)
}
