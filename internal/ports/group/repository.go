package group

import (
	"context"

	groupEntity "github.com/andreipy/hw05-final/internal/core/group"
)

// GroupRepository is the outbound port for groups.
type GroupRepository interface {
	Create(ctx context.Context, g *groupEntity.Group) (*groupEntity.Group, error)
	FindBySlug(ctx context.Context, slug string) (*groupEntity.Group, error)
}

type GroupDTO struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}
