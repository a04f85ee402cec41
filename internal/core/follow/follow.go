package follow

import (
	"time"

	"github.com/gofrs/uuid"

	"github.com/andreipy/hw05-final/internal/core/user"
)

// Follow is a directed edge: FollowerID subscribes to AuthorID's posts.
// The composite unique index makes the subscribe insert idempotent at the
// database level.
type Follow struct {
	ID         uint64    `gorm:"primaryKey"`
	FollowerID uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:uniq_follower_author"`
	Follower   user.User `gorm:"foreignKey:FollowerID"`
	AuthorID   uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:uniq_follower_author"`
	Author     user.User `gorm:"foreignKey:AuthorID"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}
