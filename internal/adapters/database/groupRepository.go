package database

import (
	"context"

	"gorm.io/gorm"

	groupEntity "github.com/andreipy/hw05-final/internal/core/group"
)

// GroupRepositoryDatabase implements GroupRepository on gorm.
type GroupRepositoryDatabase struct {
	db *gorm.DB
}

func NewGroupRepositoryDatabase(db *gorm.DB) *GroupRepositoryDatabase {
	return &GroupRepositoryDatabase{db: db}
}

func (r *GroupRepositoryDatabase) Create(ctx context.Context, g *groupEntity.Group) (*groupEntity.Group, error) {
	if err := r.db.WithContext(ctx).Create(g).Error; err != nil {
		return nil, storeErr(err)
	}
	return g, nil
}

func (r *GroupRepositoryDatabase) FindBySlug(ctx context.Context, slug string) (*groupEntity.Group, error) {
	var g groupEntity.Group
	if err := r.db.WithContext(ctx).First(&g, "slug = ?", slug).Error; err != nil {
		return nil, notFoundOr(err, "group %q", slug)
	}
	return &g, nil
}
