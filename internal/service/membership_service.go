package service

import (
	"context"
	"errors"

	"Tech_Circulo/internal/model"
	"Tech_Circulo/internal/repository/mysql"

	"github.com/rs/zerolog/log"
)

// MembershipService 成员账本：维护 (user, community) 关系集合和冗余的成员计数
type MembershipService struct {
	repo *mysql.MembershipRepository
}

func NewMembershipService() *MembershipService {
	return &MembershipService{
		repo: &mysql.MembershipRepository{DB: mysql.DB},
	}
}

func (s *MembershipService) Join(ctx context.Context, userID, communityID uint64) (int64, error) {
	if userID == 0 || communityID == 0 {
		return 0, errors.New("invalid id")
	}

	count, err := s.repo.Join(ctx, userID, communityID, model.RoleMember)
	if err != nil {
		return 0, err
	}

	log.Info().
		Uint64("user_id", userID).
		Uint64("community_id", communityID).
		Int64("member_count", count).
		Msg("user joined community")
	return count, nil
}

func (s *MembershipService) Leave(ctx context.Context, userID, communityID uint64) (int64, error) {
	if userID == 0 || communityID == 0 {
		return 0, errors.New("invalid id")
	}

	count, err := s.repo.Leave(ctx, userID, communityID)
	if err != nil {
		return 0, err
	}

	log.Info().
		Uint64("user_id", userID).
		Uint64("community_id", communityID).
		Int64("member_count", count).
		Msg("user left community")
	return count, nil
}

func (s *MembershipService) ListMembers(ctx context.Context, communityID uint64) ([]mysql.MemberInfo, error) {
	if communityID == 0 {
		return nil, errors.New("invalid id")
	}
	return s.repo.ListMembers(ctx, communityID)
}

func (s *MembershipService) ListMemberships(ctx context.Context, userID uint64) ([]mysql.MembershipInfo, error) {
	if userID == 0 {
		return nil, errors.New("invalid id")
	}
	return s.repo.ListMemberships(ctx, userID)
}

func (s *MembershipService) IsMember(ctx context.Context, userID, communityID uint64) (bool, error) {
	return s.repo.IsMember(ctx, userID, communityID)
}
