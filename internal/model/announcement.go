package model

import "time"

type Announcement struct {
	ID          uint64 `gorm:"primaryKey"`
	CommunityID uint64 `gorm:"not null;index"`
	AuthorID    uint64 `gorm:"not null"`
	Title       string `gorm:"size:200;not null"`
	Content     string `gorm:"type:text"`
	Type        string `gorm:"size:32;default:'general'"` // general / event / urgent
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
