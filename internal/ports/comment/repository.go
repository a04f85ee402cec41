package comment

import (
	"context"
	"time"

	commentEntity "github.com/andreipy/hw05-final/internal/core/comment"
	userPort "github.com/andreipy/hw05-final/internal/ports/user"
)

// CommentRepository is the outbound port for comments. FindByPostID returns
// comments oldest first.
type CommentRepository interface {
	Create(ctx context.Context, c *commentEntity.Comment) (*commentEntity.Comment, error)
	FindByPostID(ctx context.Context, postID uint64) ([]*commentEntity.Comment, error)
}

type CommentDTO struct {
	ID        uint64           `json:"id"`
	PostID    uint64           `json:"post_id"`
	Author    userPort.UserDTO `json:"author"`
	Text      string           `json:"text"`
	CreatedAt time.Time        `json:"created_at"`
}
