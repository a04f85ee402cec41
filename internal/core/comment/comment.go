package comment

import (
	"time"

	"github.com/gofrs/uuid"

	"github.com/andreipy/hw05-final/internal/core/post"
	"github.com/andreipy/hw05-final/internal/core/user"
)

// Comment text is immutable once created; there is no edit operation.
type Comment struct {
	ID        uint64    `gorm:"primaryKey"`
	PostID    uint64    `gorm:"not null;index"`
	Post      post.Post `gorm:"foreignKey:PostID"`
	AuthorID  uuid.UUID `gorm:"type:char(36);not null"`
	Author    user.User `gorm:"foreignKey:AuthorID"`
	Text      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
