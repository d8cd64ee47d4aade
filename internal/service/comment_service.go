package service

import (
	"context"
	"errors"
	"strings"

	"Tech_Circulo/internal/model"
	"Tech_Circulo/internal/repository/mysql"
)

type CommentService struct {
	repo *mysql.CommentRepository
}

func NewCommentService() *CommentService {
	return &CommentService{
		repo: &mysql.CommentRepository{DB: mysql.DB},
	}
}

func (s *CommentService) CreateComment(ctx context.Context, userID, postID uint64, content string) (*model.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errors.New("content required")
	}

	comment := &model.Comment{
		PostID:   postID,
		AuthorID: userID,
		Content:  content,
	}
	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) ListByPost(ctx context.Context, postID uint64) ([]model.Comment, error) {
	if postID == 0 {
		return nil, errors.New("invalid id")
	}
	return s.repo.ListByPost(ctx, postID)
}
