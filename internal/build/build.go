// Package build holds build-time information.
package build

// Version is the bootstrapper version.
// It defaults to "dev" and can be overwritten by linker flags.
var Version = "dev"

// Commit is the git commit the bootstrapper was built from.
var Commit = "unknown"

// Date is the build date.
var Date = "unknown"
