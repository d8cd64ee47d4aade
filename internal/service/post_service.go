package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"Tech_Circulo/internal/model"
	"Tech_Circulo/internal/repository/mysql"

	"github.com/rs/zerolog/log"
)

type PostService struct {
	repo       *mysql.PostRepository
	memberRepo *mysql.MembershipRepository
}

func NewPostService() *PostService {
	return &PostService{
		repo:       &mysql.PostRepository{DB: mysql.DB},
		memberRepo: &mysql.MembershipRepository{DB: mysql.DB},
	}
}

// CreatePost 只有社区成员能发帖；一帖只属于一个社区
func (s *PostService) CreatePost(ctx context.Context, userID, communityID uint64, title, content, imageURL string) (*model.Post, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.New("title required")
	}

	ok, err := s.memberRepo.IsMember(ctx, userID, communityID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, mysql.ErrNotMember
	}

	post := &model.Post{
		CommunityID: communityID,
		AuthorID:    userID,
		Title:       title,
		Content:     content,
		ImageURL:    imageURL,
	}

	if err = s.repo.Create(post); err != nil {
		return nil, err
	}

	log.Info().
		Uint64("post_id", post.ID).
		Uint64("community_id", communityID).
		Uint64("author_id", userID).
		Msg("post created")
	return post, nil
}

func (s *PostService) GetPost(id uint64) (*model.Post, error) {
	if id == 0 {
		return nil, errors.New("invalid id")
	}
	return s.repo.FindByID(id)
}

// ListByCommunity 社区帖子列表（页码分页）
func (s *PostService) ListByCommunity(communityID uint64, page, size int) ([]model.Post, error) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 || size > 50 {
		size = 20
	}

	offset := (page - 1) * size
	return s.repo.ListByCommunity(communityID, offset, size)
}

// ListByCommunityCursor 游标分页：首页不传 lastID/lastCreatedAt（或传零值），
// 返回下一页的游标
func (s *PostService) ListByCommunityCursor(communityID uint64, lastID uint64, lastCreatedAt int64, size int) ([]model.Post, uint64, int64, error) {
	if size <= 0 || size > 50 {
		size = 20
	}
	var cursor time.Time
	if lastCreatedAt > 0 {
		cursor = time.Unix(lastCreatedAt, 0)
	}
	list, err := s.repo.ListByCommunityCursor(communityID, lastID, cursor, size)
	if err != nil {
		return nil, 0, 0, err
	}
	var nextID uint64
	var nextTS int64
	if len(list) > 0 {
		last := list[len(list)-1]
		nextID = last.ID
		nextTS = last.CreatedAt.Unix()
	}
	return list, nextID, nextTS, nil
}

func (s *PostService) ListByAuthor(authorID uint64) ([]model.Post, error) {
	if authorID == 0 {
		return nil, errors.New("invalid id")
	}
	return s.repo.ListByAuthor(authorID)
}

// UpdatePost 仅作者本人可改，标题、正文、配图整体覆盖
func (s *PostService) UpdatePost(ctx context.Context, userID, postID uint64, title, content, imageURL string) (*model.Post, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.New("title required")
	}

	post, err := s.repo.FindByID(postID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != userID {
		return nil, ErrNoPermission
	}

	if err = s.repo.Update(postID, map[string]any{
		"title":     title,
		"content":   content,
		"image_url": imageURL,
	}); err != nil {
		return nil, err
	}

	log.Info().
		Uint64("post_id", postID).
		Uint64("author_id", userID).
		Msg("post updated")
	return s.repo.FindByID(postID)
}

// SearchPosts 标题/正文关键词检索
func (s *PostService) SearchPosts(keyword string) ([]model.Post, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, errors.New("keyword required")
	}
	return s.repo.Search(keyword, 50)
}

// DeletePost 作者或社区管理员可删；软删除，重复删除幂等
func (s *PostService) DeletePost(ctx context.Context, userID, postID uint64) error {
	post, err := s.repo.FindByID(postID)
	if err != nil {
		if errors.Is(err, mysql.ErrPostNotFound) {
			// 已删除或不存在，视为幂等成功
			return nil
		}
		return err
	}

	if post.AuthorID != userID {
		ok, err := s.memberRepo.IsAdmin(ctx, userID, post.CommunityID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrNoPermission
		}
	}

	if err = s.repo.Delete(postID); err != nil {
		return err
	}
	log.Info().
		Uint64("post_id", postID).
		Uint64("operator_id", userID).
		Msg("post deleted")
	return nil
}
