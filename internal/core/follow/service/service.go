package followapp

import (
	"context"

	"github.com/gofrs/uuid"

	"github.com/andreipy/hw05-final/internal/apperr"
	followEntity "github.com/andreipy/hw05-final/internal/core/follow"
	followPort "github.com/andreipy/hw05-final/internal/ports/follow"
	userPort "github.com/andreipy/hw05-final/internal/ports/user"
)

// FollowService manages the directed follower graph.
type FollowService struct {
	FollowRepository followPort.FollowRepository
	UserRepository   userPort.UserRepository
}

func NewFollowService(followRepo followPort.FollowRepository, userRepo userPort.UserRepository) *FollowService {
	return &FollowService{
		FollowRepository: followRepo,
		UserRepository:   userRepo,
	}
}

// Follow subscribes the follower to the named author. Self-follow is rejected
// with InvalidOperation before any write; following twice leaves exactly one
// edge.
func (s *FollowService) Follow(ctx context.Context, followerID uuid.UUID, username string) error {
	author, err := s.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if author.ID == followerID {
		return apperr.InvalidOperation("cannot follow yourself")
	}

	return s.FollowRepository.Follow(ctx, &followEntity.Follow{
		FollowerID: followerID,
		AuthorID:   author.ID,
	})
}

// Unfollow removes the edge; unfollowing someone never followed is a no-op.
func (s *FollowService) Unfollow(ctx context.Context, followerID uuid.UUID, username string) error {
	author, err := s.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	return s.FollowRepository.Unfollow(ctx, followerID, author.ID)
}

func (s *FollowService) IsFollowing(ctx context.Context, followerID uuid.UUID, username string) (bool, error) {
	author, err := s.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	return s.FollowRepository.IsFollowing(ctx, followerID, author.ID)
}
