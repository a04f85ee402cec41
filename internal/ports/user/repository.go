package user

import (
	"context"

	"github.com/gofrs/uuid"

	userEntity "github.com/andreipy/hw05-final/internal/core/user"
)

// UserRepository is the outbound port for author identities.
type UserRepository interface {
	Create(ctx context.Context, u *userEntity.User) (*userEntity.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*userEntity.User, error)
	FindByUsername(ctx context.Context, username string) (*userEntity.User, error)
}

type UserDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}
