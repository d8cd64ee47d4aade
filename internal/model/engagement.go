package model

import "time"

// PostLike (post_id, user_id) 复合主键，toggle 语义：存在即删，不存在即插
type PostLike struct {
	PostID    uint64 `gorm:"primaryKey;autoIncrement:false;index"`
	UserID    uint64 `gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time
}

func (PostLike) TableName() string {
	return "post_likes"
}

// PostBookmark 与 PostLike 同构，但帖子上不落计数列
type PostBookmark struct {
	PostID    uint64 `gorm:"primaryKey;autoIncrement:false;index"`
	UserID    uint64 `gorm:"primaryKey;autoIncrement:false;index"`
	CreatedAt time.Time
}

func (PostBookmark) TableName() string {
	return "post_bookmarks"
}

// 举报状态
const (
	ReportPending  = "PENDING"
	ReportReviewed = "REVIEWED"
	ReportResolved = "RESOLVED"
)

// PostReport 只追加，不提供删除；同一用户对同一帖子只能举报一次
type PostReport struct {
	PostID    uint64 `gorm:"primaryKey;autoIncrement:false;index"`
	UserID    uint64 `gorm:"primaryKey;autoIncrement:false"`
	Reason    string `gorm:"size:200;not null"`
	Status    string `gorm:"size:16;not null;default:'PENDING'"`
	CreatedAt time.Time
}

func (PostReport) TableName() string {
	return "post_reports"
}
