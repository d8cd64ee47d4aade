package mysql

import (
	"errors"
	"time"

	"Tech_Circulo/internal/model"

	"gorm.io/gorm"
)

type PostRepository struct {
	DB *gorm.DB
}

func (r *PostRepository) Create(post *model.Post) error {
	return r.DB.Create(post).Error
}

func (r *PostRepository) FindByID(id uint64) (*model.Post, error) {
	var post model.Post
	err := r.DB.First(&post, "id = ? AND status = 0", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPostNotFound
	}
	return &post, err
}

// ListByCommunity 基础分页查询
func (r *PostRepository) ListByCommunity(communityID uint64, offset, limit int) ([]model.Post, error) {
	var list []model.Post
	err := r.DB.
		Where("community_id = ? AND status = 0", communityID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&list).Error
	return list, err
}

// ListByCommunityCursor 时间游标查询：索引 (community_id, created_at DESC)
// lastCreatedAt 零值表示第一页；同一时间点用 id 打破并列
func (r *PostRepository) ListByCommunityCursor(communityID uint64, lastID uint64, lastCreatedAt time.Time, limit int) ([]model.Post, error) {
	var list []model.Post
	q := r.DB.Where("community_id = ? AND status = 0", communityID)
	if !lastCreatedAt.IsZero() {
		q = q.Where("(created_at < ? OR (created_at = ? AND id < ?))", lastCreatedAt, lastCreatedAt, lastID)
	}
	err := q.Order("created_at DESC, id DESC").Limit(limit).Find(&list).Error
	return list, err
}

func (r *PostRepository) ListByAuthor(authorID uint64) ([]model.Post, error) {
	var list []model.Post
	err := r.DB.
		Where("author_id = ? AND status = 0", authorID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

// Update 只改传入的字段，已删除的帖子不可改
func (r *PostRepository) Update(id uint64, fields map[string]any) error {
	return r.DB.Model(&model.Post{}).
		Where("id = ? AND status = 0", id).
		Updates(fields).Error
}

// Search 标题或正文模糊匹配，最新的在前
func (r *PostRepository) Search(keyword string, limit int) ([]model.Post, error) {
	var list []model.Post
	pattern := "%" + keyword + "%"
	err := r.DB.
		Where("(title LIKE ? OR content LIKE ?) AND status = 0", pattern, pattern).
		Order("created_at DESC").
		Limit(limit).
		Find(&list).Error
	return list, err
}

// Delete 软删除，幂等
func (r *PostRepository) Delete(id uint64) error {
	return r.DB.Model(&model.Post{}).
		Where("id = ?", id).
		Update("status", 1).Error
}
