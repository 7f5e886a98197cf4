package detector

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hoist/internal/core/domain"
)

// NodeID is the unique identifier for the platform detector node.
const NodeID graft.ID = "adapter.detector"

func init() {
	graft.Register(graft.Node[domain.Platform]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (domain.Platform, error) {
			return DetectPlatform()
		},
	})
}
