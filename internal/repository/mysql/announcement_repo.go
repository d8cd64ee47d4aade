package mysql

import (
	"Tech_Circulo/internal/model"

	"gorm.io/gorm"
)

type AnnouncementRepository struct {
	DB *gorm.DB
}

func (r *AnnouncementRepository) Create(a *model.Announcement) error {
	return r.DB.Create(a).Error
}

func (r *AnnouncementRepository) ListByCommunity(communityID uint64) ([]model.Announcement, error) {
	var list []model.Announcement
	err := r.DB.
		Where("community_id = ?", communityID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}
