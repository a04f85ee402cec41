package group

import "time"

type Group struct {
	ID          uint64    `gorm:"primaryKey"`
	Slug        string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Title       string    `gorm:"type:varchar(200);not null"`
	Description string    `gorm:"type:varchar(300)"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}
