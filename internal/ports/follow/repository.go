package follow

import (
	"context"

	"github.com/gofrs/uuid"

	followEntity "github.com/andreipy/hw05-final/internal/core/follow"
)

// FollowRepository is the outbound port for the follow graph.
type FollowRepository interface {
	// Follow inserts the edge if absent. The insert is conditional on the edge
	// not existing, in a single statement, so two concurrent calls for the same
	// pair leave exactly one edge and neither fails.
	Follow(ctx context.Context, f *followEntity.Follow) error
	// Unfollow removes the edge; removing a missing edge is a no-op.
	Unfollow(ctx context.Context, followerID, authorID uuid.UUID) error
	IsFollowing(ctx context.Context, followerID, authorID uuid.UUID) (bool, error)
	FollowedAuthorIDs(ctx context.Context, followerID uuid.UUID) ([]uuid.UUID, error)
}
