package mysql

import (
	"context"
	"errors"
	"time"

	"Tech_Circulo/internal/model"

	"gorm.io/gorm"
)

type MembershipRepository struct {
	DB *gorm.DB
}

// MemberInfo 社区成员信息（membership 关联 users）
type MemberInfo struct {
	UserID   uint64    `json:"user_id"`
	Username string    `json:"username"`
	Nickname string    `json:"nickname"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}

// MembershipInfo 用户已加入的社区（membership 关联 communities）
type MembershipInfo struct {
	CommunityID uint64    `json:"community_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	MemberCount int64     `json:"member_count"`
	Role        string    `json:"role"`
	JoinedAt    time.Time `json:"joined_at"`
}

// Join 整个 查重-写入-重算 序列在一个事务里完成，先锁社区行，
// 并发 Join 在这里排队，后提交者重算时能看到前者的成员行。
// 计数永远对 memberships 表全量 COUNT，不做增量，避免并发下计数漂移。
func (r *MembershipRepository) Join(ctx context.Context, userID, communityID uint64, role string) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var community model.Community
		if err := forUpdate(tx).First(&community, communityID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCommunityNotFound
			}
			return err
		}

		var existing model.Membership
		err := tx.Where("user_id = ? AND community_id = ?", userID, communityID).
			First(&existing).Error
		if err == nil {
			return ErrAlreadyMember
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err = tx.Create(&model.Membership{
			UserID:      userID,
			CommunityID: communityID,
			Role:        role,
			JoinedAt:    time.Now(),
		}).Error; err != nil {
			return err
		}

		if err = tx.Model(&model.Membership{}).
			Where("community_id = ?", communityID).
			Count(&count).Error; err != nil {
			return err
		}
		return tx.Model(&model.Community{}).
			Where("id = ?", communityID).
			UpdateColumn("member_count", count).Error
	})
	return count, err
}

// Leave 与 Join 对称：锁社区行-删除-重算-落库，一个事务
func (r *MembershipRepository) Leave(ctx context.Context, userID, communityID uint64) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var community model.Community
		if err := forUpdate(tx).First(&community, communityID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCommunityNotFound
			}
			return err
		}

		res := tx.Where("user_id = ? AND community_id = ?", userID, communityID).
			Delete(&model.Membership{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotMember
		}

		if err := tx.Model(&model.Membership{}).
			Where("community_id = ?", communityID).
			Count(&count).Error; err != nil {
			return err
		}
		return tx.Model(&model.Community{}).
			Where("id = ?", communityID).
			UpdateColumn("member_count", count).Error
	})
	return count, err
}

func (r *MembershipRepository) IsMember(ctx context.Context, userID, communityID uint64) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Membership{}).
		Where("user_id = ? AND community_id = ?", userID, communityID).
		Count(&count).Error
	return count > 0, err
}

func (r *MembershipRepository) IsAdmin(ctx context.Context, userID, communityID uint64) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Membership{}).
		Where("user_id = ? AND community_id = ? AND role = ?", userID, communityID, model.RoleAdmin).
		Count(&count).Error
	return count > 0, err
}

// ListMembers 社区成员列表，关联出用户公开字段；顺序不保证
func (r *MembershipRepository) ListMembers(ctx context.Context, communityID uint64) ([]MemberInfo, error) {
	var exists int64
	if err := r.DB.WithContext(ctx).Model(&model.Community{}).
		Where("id = ?", communityID).Count(&exists).Error; err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, ErrCommunityNotFound
	}

	var list []MemberInfo
	err := r.DB.WithContext(ctx).Model(&model.Membership{}).
		Select("memberships.user_id, users.username, users.nickname, users.email, memberships.role, memberships.joined_at").
		Joins("JOIN users ON users.id = memberships.user_id").
		Where("memberships.community_id = ?", communityID).
		Scan(&list).Error
	return list, err
}

// ListMemberships 用户加入的社区，最近加入的在前
func (r *MembershipRepository) ListMemberships(ctx context.Context, userID uint64) ([]MembershipInfo, error) {
	var list []MembershipInfo
	err := r.DB.WithContext(ctx).Model(&model.Membership{}).
		Select("memberships.community_id, communities.name, communities.description, communities.image_url, communities.member_count, memberships.role, memberships.joined_at").
		Joins("JOIN communities ON communities.id = memberships.community_id").
		Where("memberships.user_id = ?", userID).
		Order("memberships.joined_at DESC").
		Scan(&list).Error
	return list, err
}

func (r *MembershipRepository) CountByCommunity(ctx context.Context, communityID uint64) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Membership{}).
		Where("community_id = ?", communityID).
		Count(&count).Error
	return count, err
}
