package mysql

import (
	"errors"
	"time"

	"Tech_Circulo/internal/model"

	"gorm.io/gorm"
)

type CommunityRepository struct {
	DB *gorm.DB
}

// Create 建社区并让创建者以 Admin 身份入驻，同一事务；member_count 初始即重算（=1）
func (r *CommunityRepository) Create(c *model.Community) (*model.Community, error) {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(c).Error; err != nil {
			return err
		}

		if err := tx.Create(&model.Membership{
			UserID:      c.CreatorID,
			CommunityID: c.ID,
			Role:        model.RoleAdmin,
			JoinedAt:    time.Now(),
		}).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&model.Membership{}).
			Where("community_id = ?", c.ID).
			Count(&count).Error; err != nil {
			return err
		}
		c.MemberCount = count
		return tx.Model(&model.Community{}).
			Where("id = ?", c.ID).
			UpdateColumn("member_count", count).Error
	})
	return c, err
}

func (r *CommunityRepository) FindByID(id uint64) (*model.Community, error) {
	var community model.Community
	err := r.DB.First(&community, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCommunityNotFound
	}
	return &community, err
}

func (r *CommunityRepository) FindByName(name string) (*model.Community, error) {
	var community model.Community
	err := r.DB.Where("name = ?", name).First(&community).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCommunityNotFound
	}
	return &community, err
}

func (r *CommunityRepository) List(offset, limit int) ([]model.Community, error) {
	var list []model.Community
	err := r.DB.Order("id desc").Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}

// SearchByName 名称模糊匹配
func (r *CommunityRepository) SearchByName(name string) ([]model.Community, error) {
	var list []model.Community
	err := r.DB.Where("name LIKE ?", "%"+name+"%").Find(&list).Error
	return list, err
}
