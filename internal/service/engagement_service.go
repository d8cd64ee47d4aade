package service

import (
	"context"
	"errors"
	"strings"

	"Tech_Circulo/internal/model"
	"Tech_Circulo/internal/repository/mysql"

	"github.com/rs/zerolog/log"
)

// EngagementService 互动账本：点赞/收藏 toggle + 只追加的举报，计数冗余在帖子行上
type EngagementService struct {
	repo        *mysql.EngagementRepository
	commentRepo *mysql.CommentRepository
}

func NewEngagementService() *EngagementService {
	return &EngagementService{
		repo:        &mysql.EngagementRepository{DB: mysql.DB},
		commentRepo: &mysql.CommentRepository{DB: mysql.DB},
	}
}

func (s *EngagementService) ToggleLike(ctx context.Context, postID, userID uint64) (bool, int64, error) {
	if postID == 0 || userID == 0 {
		return false, 0, errors.New("invalid id")
	}

	liked, count, err := s.repo.ToggleLike(ctx, postID, userID)
	if err != nil {
		return false, 0, err
	}

	log.Info().
		Uint64("post_id", postID).
		Uint64("user_id", userID).
		Bool("liked", liked).
		Int64("likes_count", count).
		Msg("like toggled")
	return liked, count, nil
}

func (s *EngagementService) ToggleBookmark(ctx context.Context, postID, userID uint64) (bool, int64, error) {
	if postID == 0 || userID == 0 {
		return false, 0, errors.New("invalid id")
	}

	bookmarked, count, err := s.repo.ToggleBookmark(ctx, postID, userID)
	if err != nil {
		return false, 0, err
	}

	log.Info().
		Uint64("post_id", postID).
		Uint64("user_id", userID).
		Bool("bookmarked", bookmarked).
		Msg("bookmark toggled")
	return bookmarked, count, nil
}

func (s *EngagementService) Report(ctx context.Context, postID, userID uint64, reason string) error {
	if postID == 0 || userID == 0 {
		return errors.New("invalid id")
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return errors.New("reason required")
	}
	if len(reason) > 200 {
		return errors.New("reason too long")
	}

	if err := s.repo.Report(ctx, postID, userID, reason); err != nil {
		return err
	}

	log.Info().
		Uint64("post_id", postID).
		Uint64("user_id", userID).
		Str("status", model.ReportPending).
		Msg("post reported")
	return nil
}

// Stats 评论数从评论仓储补齐，四个计数各自读取，非同一快照
func (s *EngagementService) Stats(ctx context.Context, postID uint64) (*mysql.PostStats, error) {
	if postID == 0 {
		return nil, errors.New("invalid id")
	}

	stats, err := s.repo.Stats(ctx, postID)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.CountByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}
	stats.CommentsCount = comments
	return stats, nil
}

func (s *EngagementService) IsLiked(ctx context.Context, postID, userID uint64) (bool, error) {
	return s.repo.IsLiked(ctx, postID, userID)
}

func (s *EngagementService) IsBookmarked(ctx context.Context, postID, userID uint64) (bool, error) {
	return s.repo.IsBookmarked(ctx, postID, userID)
}

func (s *EngagementService) ListBookmarked(ctx context.Context, userID uint64) ([]model.Post, error) {
	if userID == 0 {
		return nil, errors.New("invalid id")
	}
	return s.repo.ListBookmarked(ctx, userID)
}
