package database

import (
	"context"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"

	postEntity "github.com/andreipy/hw05-final/internal/core/post"
	postPort "github.com/andreipy/hw05-final/internal/ports/post"
)

// feedOrder is the display order for every feed scope: newest first, ties on
// the timestamp broken by descending id (insertion order). A stable order is
// what keeps page boundaries consistent between requests.
const feedOrder = "created_at DESC, id DESC"

// PostRepositoryDatabase implements PostRepository on gorm.
type PostRepositoryDatabase struct {
	db *gorm.DB
}

func NewPostRepositoryDatabase(db *gorm.DB) *PostRepositoryDatabase {
	return &PostRepositoryDatabase{db: db}
}

func (r *PostRepositoryDatabase) Create(ctx context.Context, p *postEntity.Post) (*postEntity.Post, error) {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, storeErr(err)
	}
	return p, nil
}

// Update writes all mutable columns in a single statement, so the edit is
// all-or-nothing. A nil GroupID clears the group association.
func (r *PostRepositoryDatabase) Update(ctx context.Context, id uint64, upd postPort.PostUpdate) error {
	res := r.db.WithContext(ctx).Model(&postEntity.Post{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"text":     upd.Text,
			"group_id": upd.GroupID,
			"image":    upd.Image,
		})
	if res.Error != nil {
		return storeErr(res.Error)
	}
	return nil
}

func (r *PostRepositoryDatabase) FindByID(ctx context.Context, id uint64) (*postEntity.Post, error) {
	var p postEntity.Post
	if err := r.db.WithContext(ctx).
		Preload("Author").Preload("Group").
		First(&p, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err, "post %d", id)
	}
	return &p, nil
}

func (r *PostRepositoryDatabase) FindAll(ctx context.Context) ([]*postEntity.Post, error) {
	var posts []*postEntity.Post
	if err := r.db.WithContext(ctx).
		Preload("Author").Preload("Group").
		Order(feedOrder).
		Find(&posts).Error; err != nil {
		return nil, storeErr(err)
	}
	return posts, nil
}

func (r *PostRepositoryDatabase) FindByGroupID(ctx context.Context, groupID uint64) ([]*postEntity.Post, error) {
	var posts []*postEntity.Post
	if err := r.db.WithContext(ctx).
		Preload("Author").Preload("Group").
		Where("group_id = ?", groupID).
		Order(feedOrder).
		Find(&posts).Error; err != nil {
		return nil, storeErr(err)
	}
	return posts, nil
}

func (r *PostRepositoryDatabase) FindByAuthorID(ctx context.Context, authorID uuid.UUID) ([]*postEntity.Post, error) {
	var posts []*postEntity.Post
	if err := r.db.WithContext(ctx).
		Preload("Author").Preload("Group").
		Where("author_id = ?", authorID).
		Order(feedOrder).
		Find(&posts).Error; err != nil {
		return nil, storeErr(err)
	}
	return posts, nil
}

func (r *PostRepositoryDatabase) FindByAuthorIDs(ctx context.Context, authorIDs []uuid.UUID) ([]*postEntity.Post, error) {
	if len(authorIDs) == 0 {
		return nil, nil
	}
	var posts []*postEntity.Post
	if err := r.db.WithContext(ctx).
		Preload("Author").Preload("Group").
		Where("author_id IN ?", authorIDs).
		Order(feedOrder).
		Find(&posts).Error; err != nil {
		return nil, storeErr(err)
	}
	return posts, nil
}
