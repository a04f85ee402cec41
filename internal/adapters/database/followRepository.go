package database

import (
	"context"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	followEntity "github.com/andreipy/hw05-final/internal/core/follow"
)

// FollowRepositoryDatabase implements FollowRepository on gorm.
type FollowRepositoryDatabase struct {
	db *gorm.DB
}

func NewFollowRepositoryDatabase(db *gorm.DB) *FollowRepositoryDatabase {
	return &FollowRepositoryDatabase{db: db}
}

// Follow inserts the edge with ON CONFLICT DO NOTHING against the
// (follower_id, author_id) unique index. The existence check and the insert
// are one statement, so concurrent subscribes for the same pair cannot race
// into two edges or an error.
func (r *FollowRepositoryDatabase) Follow(ctx context.Context, f *followEntity.Follow) error {
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(f).Error; err != nil {
		return storeErr(err)
	}
	return nil
}

func (r *FollowRepositoryDatabase) Unfollow(ctx context.Context, followerID, authorID uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Where("follower_id = ? AND author_id = ?", followerID, authorID).
		Delete(&followEntity.Follow{}).Error; err != nil {
		return storeErr(err)
	}
	return nil
}

func (r *FollowRepositoryDatabase) IsFollowing(ctx context.Context, followerID, authorID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&followEntity.Follow{}).
		Where("follower_id = ? AND author_id = ?", followerID, authorID).
		Count(&count).Error; err != nil {
		return false, storeErr(err)
	}
	return count > 0, nil
}

func (r *FollowRepositoryDatabase) FollowedAuthorIDs(ctx context.Context, followerID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).Model(&followEntity.Follow{}).
		Where("follower_id = ?", followerID).
		Pluck("author_id", &ids).Error; err != nil {
		return nil, storeErr(err)
	}
	return ids, nil
}
