package model

import "time"

type Post struct {
	ID          uint64    `gorm:"primaryKey"`
	CommunityID uint64    `gorm:"not null;index:idx_community_time,priority:1"`
	AuthorID    uint64    `gorm:"not null;index"`
	Title       string    `gorm:"size:200;not null"`
	Content     string    `gorm:"type:text"`
	ImageURL    string    `gorm:"size:255"`
	Status      int       `gorm:"not null;default:0"` // 0=normal 1=deleted
	LikesCount  int64     `gorm:"not null;default:0"` // 冗余计数，写路径内全量重算
	CreatedAt   time.Time `gorm:"index:idx_community_time,priority:2,sort:desc"`
	UpdatedAt   time.Time
}

type Comment struct {
	ID        uint64 `gorm:"primaryKey"`
	PostID    uint64 `gorm:"not null;index"`
	AuthorID  uint64 `gorm:"not null;index"`
	Content   string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
