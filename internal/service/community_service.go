package service

import (
	"context"
	"errors"
	"strings"

	"Tech_Circulo/internal/model"
	"Tech_Circulo/internal/repository/mysql"

	"github.com/rs/zerolog/log"
)

type CommunityService struct {
	repo       *mysql.CommunityRepository
	memberRepo *mysql.MembershipRepository
	annRepo    *mysql.AnnouncementRepository
}

func NewCommunityService() *CommunityService {
	return &CommunityService{
		repo:       &mysql.CommunityRepository{DB: mysql.DB},
		memberRepo: &mysql.MembershipRepository{DB: mysql.DB},
		annRepo:    &mysql.AnnouncementRepository{DB: mysql.DB},
	}
}

func (s *CommunityService) CreateCommunity(userID uint64, name, desc, imageURL string) (*model.Community, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("community name required")
	}

	community := &model.Community{
		Name:        name,
		Description: desc,
		ImageURL:    imageURL,
		CreatorID:   userID,
	}

	if _, err := s.repo.Create(community); err != nil {
		return nil, err
	}

	log.Info().
		Uint64("community_id", community.ID).
		Uint64("creator_id", userID).
		Str("name", name).
		Msg("community created")
	return community, nil
}

func (s *CommunityService) GetCommunity(id uint64) (*model.Community, error) {
	if id == 0 {
		return nil, errors.New("invalid id")
	}
	return s.repo.FindByID(id)
}

func (s *CommunityService) ListCommunities(page, size int) ([]model.Community, error) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 || size > 50 {
		size = 20
	}

	offset := (page - 1) * size
	return s.repo.List(offset, size)
}

func (s *CommunityService) SearchCommunities(name string) ([]model.Community, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("search name required")
	}
	return s.repo.SearchByName(name)
}

// CreateAnnouncement 仅社区管理员可发公告
func (s *CommunityService) CreateAnnouncement(ctx context.Context, userID, communityID uint64, title, content, typ string) (*model.Announcement, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.New("title required")
	}

	if _, err := s.repo.FindByID(communityID); err != nil {
		return nil, err
	}

	ok, err := s.memberRepo.IsAdmin(ctx, userID, communityID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoPermission
	}

	if typ == "" {
		typ = "general"
	}
	a := &model.Announcement{
		CommunityID: communityID,
		AuthorID:    userID,
		Title:       title,
		Content:     content,
		Type:        typ,
	}
	if err = s.annRepo.Create(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *CommunityService) ListAnnouncements(communityID uint64) ([]model.Announcement, error) {
	if _, err := s.repo.FindByID(communityID); err != nil {
		return nil, err
	}
	return s.annRepo.ListByCommunity(communityID)
}
