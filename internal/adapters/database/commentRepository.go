package database

import (
	"context"

	"gorm.io/gorm"

	commentEntity "github.com/andreipy/hw05-final/internal/core/comment"
)

// CommentRepositoryDatabase implements CommentRepository on gorm.
type CommentRepositoryDatabase struct {
	db *gorm.DB
}

func NewCommentRepositoryDatabase(db *gorm.DB) *CommentRepositoryDatabase {
	return &CommentRepositoryDatabase{db: db}
}

func (r *CommentRepositoryDatabase) Create(ctx context.Context, c *commentEntity.Comment) (*commentEntity.Comment, error) {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, storeErr(err)
	}
	return c, nil
}

// FindByPostID returns comments oldest first, the display order within a post.
func (r *CommentRepositoryDatabase) FindByPostID(ctx context.Context, postID uint64) ([]*commentEntity.Comment, error) {
	var comments []*commentEntity.Comment
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error; err != nil {
		return nil, storeErr(err)
	}
	return comments, nil
}
