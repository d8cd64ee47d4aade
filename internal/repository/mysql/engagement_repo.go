package mysql

import (
	"context"
	"errors"

	"Tech_Circulo/internal/model"

	"gorm.io/gorm"
)

type EngagementRepository struct {
	DB *gorm.DB
}

// PostStats 四个计数各自独立读取，非一致性快照，仅做展示用
type PostStats struct {
	LikesCount     int64 `json:"likes_count"`
	BookmarksCount int64 `json:"bookmarks_count"`
	ReportsCount   int64 `json:"reports_count"`
	CommentsCount  int64 `json:"comments_count"`
}

// ToggleLike 存在即取消、不存在即点赞；两个分支都在事务内全量重算 likes_count。
// 入口先锁帖子行，同一帖子上的并发 toggle 串行执行，后提交者重算时
// 能看到前者的点赞行。返回本次操作后的点赞状态和最新计数。
func (r *EngagementRepository) ToggleLike(ctx context.Context, postID, userID uint64) (bool, int64, error) {
	var liked bool
	var count int64
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := findAlivePost(forUpdate(tx), postID); err != nil {
			return err
		}

		var existing model.PostLike
		err := tx.Where("post_id = ? AND user_id = ?", postID, userID).
			First(&existing).Error
		switch {
		case err == nil:
			// 取消点赞
			if err = tx.Where("post_id = ? AND user_id = ?", postID, userID).
				Delete(&model.PostLike{}).Error; err != nil {
				return err
			}
			liked = false
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err = tx.Create(&model.PostLike{PostID: postID, UserID: userID}).Error; err != nil {
				return err
			}
			liked = true
		default:
			return err
		}

		// 无论哪个分支都重算，保证计数与关系行一致
		if err = tx.Model(&model.PostLike{}).
			Where("post_id = ?", postID).
			Count(&count).Error; err != nil {
			return err
		}
		return tx.Model(&model.Post{}).
			Where("id = ?", postID).
			UpdateColumn("likes_count", count).Error
	})
	return liked, count, err
}

// ToggleBookmark 与点赞同语义，但帖子上没有收藏计数列，计数按需 COUNT
func (r *EngagementRepository) ToggleBookmark(ctx context.Context, postID, userID uint64) (bool, int64, error) {
	var bookmarked bool
	var count int64
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := findAlivePost(forUpdate(tx), postID); err != nil {
			return err
		}

		var existing model.PostBookmark
		err := tx.Where("post_id = ? AND user_id = ?", postID, userID).
			First(&existing).Error
		switch {
		case err == nil:
			if err = tx.Where("post_id = ? AND user_id = ?", postID, userID).
				Delete(&model.PostBookmark{}).Error; err != nil {
				return err
			}
			bookmarked = false
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err = tx.Create(&model.PostBookmark{PostID: postID, UserID: userID}).Error; err != nil {
				return err
			}
			bookmarked = true
		default:
			return err
		}

		return tx.Model(&model.PostBookmark{}).
			Where("post_id = ?", postID).
			Count(&count).Error
	})
	return bookmarked, count, err
}

// Report 幂等拒绝：同一用户对同一帖子第二次举报直接报错，不是 toggle。
// 同样先锁帖子行，并发重复举报在查重处拿到 ErrAlreadyReported 而不是主键冲突
func (r *EngagementRepository) Report(ctx context.Context, postID, userID uint64, reason string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := findAlivePost(forUpdate(tx), postID); err != nil {
			return err
		}

		var existing model.PostReport
		err := tx.Where("post_id = ? AND user_id = ?", postID, userID).
			First(&existing).Error
		if err == nil {
			return ErrAlreadyReported
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		return tx.Create(&model.PostReport{
			PostID: postID,
			UserID: userID,
			Reason: reason,
			Status: model.ReportPending,
		}).Error
	})
}

func (r *EngagementRepository) IsLiked(ctx context.Context, postID, userID uint64) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.PostLike{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *EngagementRepository) IsBookmarked(ctx context.Context, postID, userID uint64) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.PostBookmark{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error
	return count > 0, err
}

// ListBookmarked 用户收藏的帖子，最近收藏的在前
func (r *EngagementRepository) ListBookmarked(ctx context.Context, userID uint64) ([]model.Post, error) {
	var list []model.Post
	err := r.DB.WithContext(ctx).Model(&model.Post{}).
		Joins("JOIN post_bookmarks ON post_bookmarks.post_id = posts.id").
		Where("post_bookmarks.user_id = ? AND posts.status = 0", userID).
		Order("post_bookmarks.created_at DESC").
		Find(&list).Error
	return list, err
}

// Stats 四个计数独立读取（弱一致，见 PostStats）
func (r *EngagementRepository) Stats(ctx context.Context, postID uint64) (*PostStats, error) {
	db := r.DB.WithContext(ctx)
	if err := findAlivePost(db, postID); err != nil {
		return nil, err
	}

	var stats PostStats
	if err := db.Model(&model.PostLike{}).
		Where("post_id = ?", postID).Count(&stats.LikesCount).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.PostBookmark{}).
		Where("post_id = ?", postID).Count(&stats.BookmarksCount).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.PostReport{}).
		Where("post_id = ?", postID).Count(&stats.ReportsCount).Error; err != nil {
		return nil, err
	}
	// CommentsCount 由 service 层从评论仓储补齐
	return &stats, nil
}

func findAlivePost(tx *gorm.DB, postID uint64) error {
	var post model.Post
	err := tx.First(&post, "id = ? AND status = 0", postID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrPostNotFound
	}
	return err
}
