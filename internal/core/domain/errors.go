package domain

import (
	"strconv"

	"go.trai.ch/zerr"
)

var (
	// ErrUnsupportedPlatform is returned when the host architecture has no
	// published artifact bundles.
	ErrUnsupportedPlatform = zerr.New("unsupported platform")

	// ErrVCSQuery is returned when the current revision of a working tree
	// cannot be determined.
	ErrVCSQuery = zerr.New("failed to query working tree revision")

	// ErrSyncFailed is returned when the SDK checkout still does not match the
	// pinned version after a full re-sync. There is no automatic retry.
	ErrSyncFailed = zerr.New("SDK upgrade failed; delete the checkout directory and re-run")

	// ErrMissingComponent is returned when a required SDK file is absent after
	// a successful checkout reconcile.
	ErrMissingComponent = zerr.New("required SDK component is missing")

	// ErrDownloadFailed is returned when the artifact bundle transfer fails.
	ErrDownloadFailed = zerr.New("failed to download artifact bundle; check connectivity")

	// ErrArchiveCorrupt is returned when a downloaded bundle cannot be
	// extracted. Distinct from ErrDownloadFailed: the remediation is to check
	// the version pin and URL, not to retry the transfer.
	ErrArchiveCorrupt = zerr.New("artifact bundle is not a valid archive; the URL or version pin may be wrong")

	// ErrCompileFailed is returned when dependency resolution or the snapshot
	// compile fails. The snapshot stamp is never written on this path.
	ErrCompileFailed = zerr.New("failed to compile tool snapshot")

	// ErrInterrupted is returned when the delegated tool run is cut short by a
	// signal.
	ErrInterrupted = zerr.New("interrupted")
)

// ExitError carries the delegated tool's non-zero exit status up to main.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return "delegated tool exited with status " + strconv.Itoa(e.Code)
}
