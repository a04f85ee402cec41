package database

import (
	"context"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"

	userEntity "github.com/andreipy/hw05-final/internal/core/user"
)

// UserRepositoryDatabase implements UserRepository on gorm.
type UserRepositoryDatabase struct {
	db *gorm.DB
}

func NewUserRepositoryDatabase(db *gorm.DB) *UserRepositoryDatabase {
	return &UserRepositoryDatabase{db: db}
}

func (r *UserRepositoryDatabase) Create(ctx context.Context, u *userEntity.User) (*userEntity.User, error) {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		return nil, storeErr(err)
	}
	return u, nil
}

func (r *UserRepositoryDatabase) FindByID(ctx context.Context, id uuid.UUID) (*userEntity.User, error) {
	var u userEntity.User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err, "user %s", id)
	}
	return &u, nil
}

func (r *UserRepositoryDatabase) FindByUsername(ctx context.Context, username string) (*userEntity.User, error) {
	var u userEntity.User
	if err := r.db.WithContext(ctx).First(&u, "username = ?", username).Error; err != nil {
		return nil, notFoundOr(err, "user %q", username)
	}
	return &u, nil
}
