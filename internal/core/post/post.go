package post

import (
	"time"

	"github.com/gofrs/uuid"

	"github.com/andreipy/hw05-final/internal/core/group"
	"github.com/andreipy/hw05-final/internal/core/user"
)

// Post uses an auto-increment primary key so that (created_at DESC, id DESC) is
// a total order: ties on the timestamp fall back to insertion order.
type Post struct {
	ID        uint64       `gorm:"primaryKey"`
	Text      string       `gorm:"type:text;not null"`
	AuthorID  uuid.UUID    `gorm:"type:char(36);not null;index"`
	Author    user.User    `gorm:"foreignKey:AuthorID"`
	GroupID   *uint64      `gorm:"index"`
	Group     *group.Group `gorm:"foreignKey:GroupID"`
	Image     string       `gorm:"type:varchar(255)"` // opaque reference, resolved by the asset store
	CreatedAt time.Time    `gorm:"autoCreateTime;index"` // assigned at creation, never mutated
	UpdatedAt time.Time    `gorm:"autoUpdateTime"`
}
