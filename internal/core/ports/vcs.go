// Package ports defines the core interfaces for the bootstrapper.
package ports

import (
	"context"

	"go.trai.ch/hoist/internal/core/domain"
)

// VCS is the narrow capability surface the bootstrapper needs from the
// version-control client, one method per external action.
//
//go:generate go run go.uber.org/mock/mockgen -source=vcs.go -destination=mocks/mock_vcs.go -package=mocks
type VCS interface {
	// CurrentRevision returns the checked-out commit identifier of the
	// working tree at root. Fails with domain.ErrVCSQuery if root is not a
	// repository or the client is unavailable.
	CurrentRevision(ctx context.Context, root string) (domain.VersionID, error)

	// CloneShallow performs a depth-1 clone of url into root.
	CloneShallow(ctx context.Context, url, root string) error

	// ResetHard discards all working tree modifications.
	ResetHard(ctx context.Context, root string) error

	// CleanUntracked removes untracked and ignored files.
	CleanUntracked(ctx context.Context, root string) error

	// FetchRevision shallow-fetches exactly the given revision from origin.
	FetchRevision(ctx context.Context, root string, rev domain.VersionID) error

	// CheckoutFetched checks out the most recently fetched head.
	CheckoutFetched(ctx context.Context, root string) error
}
