package post

import (
	"context"
	"time"

	"github.com/gofrs/uuid"

	postEntity "github.com/andreipy/hw05-final/internal/core/post"
	groupPort "github.com/andreipy/hw05-final/internal/ports/group"
	userPort "github.com/andreipy/hw05-final/internal/ports/user"
)

// PostRepository is the outbound port for the post store. Every Find method
// returns posts ordered by (created_at DESC, id DESC); pagination correctness
// depends on that order being stable across calls.
type PostRepository interface {
	Create(ctx context.Context, p *postEntity.Post) (*postEntity.Post, error)
	// Update applies all mutable fields in one statement: either every field
	// persists or none do.
	Update(ctx context.Context, id uint64, upd PostUpdate) error
	FindByID(ctx context.Context, id uint64) (*postEntity.Post, error)
	FindAll(ctx context.Context) ([]*postEntity.Post, error)
	FindByGroupID(ctx context.Context, groupID uint64) ([]*postEntity.Post, error)
	FindByAuthorID(ctx context.Context, authorID uuid.UUID) ([]*postEntity.Post, error)
	FindByAuthorIDs(ctx context.Context, authorIDs []uuid.UUID) ([]*postEntity.Post, error)
}

// PostUpdate carries the owner-mutable fields. ID and CreatedAt are immutable.
type PostUpdate struct {
	Text    string
	GroupID *uint64
	Image   string
}

type PostDTO struct {
	ID        uint64              `json:"id"`
	Text      string              `json:"text"`
	Author    userPort.UserDTO    `json:"author"`
	Group     *groupPort.GroupDTO `json:"group,omitempty"`
	Image     string              `json:"image,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
}

// ToDTO maps a stored post (with Author and Group preloaded) to its transport
// shape.
func ToDTO(p *postEntity.Post) PostDTO {
	dto := PostDTO{
		ID:   p.ID,
		Text: p.Text,
		Author: userPort.UserDTO{
			ID:       p.AuthorID.String(),
			Username: p.Author.Username,
			Name:     p.Author.Name,
		},
		Image:     p.Image,
		CreatedAt: p.CreatedAt,
	}
	if p.Group != nil {
		dto.Group = &groupPort.GroupDTO{
			Slug:        p.Group.Slug,
			Title:       p.Group.Title,
			Description: p.Group.Description,
		}
	}
	return dto
}

// ToDTOs preserves the input order.
func ToDTOs(posts []*postEntity.Post) []PostDTO {
	dtos := make([]PostDTO, 0, len(posts))
	for _, p := range posts {
		dtos = append(dtos, ToDTO(p))
	}
	return dtos
}
