package model

import "time"

type Community struct {
	ID          uint64 `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex;size:64;not null"`
	Description string `gorm:"type:text"`
	ImageURL    string `gorm:"size:255"`
	CreatorID   uint64 `gorm:"not null;index"`
	MemberCount int64  `gorm:"not null;default:0"` // 冗余计数，写路径内全量重算
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// 成员角色
const (
	RoleMember = "Member"
	RoleAdmin  = "Admin"
)

// Membership (user_id, community_id) 天然复合主键，不用自增id
type Membership struct {
	UserID      uint64 `gorm:"primaryKey;autoIncrement:false"`
	CommunityID uint64 `gorm:"primaryKey;autoIncrement:false;index"`
	Role        string `gorm:"size:16;not null;default:'Member'"`
	JoinedAt    time.Time
}

func (Membership) TableName() string {
	return "memberships"
}
