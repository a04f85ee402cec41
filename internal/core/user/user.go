package user

import (
	"time"

	"github.com/gofrs/uuid"
)

type User struct {
	ID        uuid.UUID  `gorm:"primary_key;type:char(36)"`
	Username  string     `gorm:"unique;not null"`
	Name      string     `gorm:"not null"`
	Password  string     `gorm:"not null"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime"`
	DeletedAt *time.Time `gorm:"index"`
}
