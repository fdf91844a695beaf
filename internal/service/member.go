package service

import (
	"context"
	"fmt"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/logger"
	"clubhub-backend/internal/repository"
	"clubhub-backend/internal/utils"
)

const defaultLeaderboardSize = 20

type memberService struct {
	memberRepo repository.MemberRepository
}

func NewMemberService(memberRepo repository.MemberRepository) MemberService {
	return &memberService{memberRepo: memberRepo}
}

// UpdateCredentials sets a member's username/password. Omitted fields are
// derived from the member's name, same derivation as on approval.
func (s *memberService) UpdateCredentials(ctx context.Context, memberID, username, password string) (domain.Credentials, error) {
	if memberID == "" {
		return domain.Credentials{}, fmt.Errorf("%w: member id is required", domain.ErrInvalidInput)
	}

	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return domain.Credentials{}, fmt.Errorf("failed to get member: %w", err)
	}

	creds := utils.DeriveCredentials(member.Name, username, password)
	if err := s.memberRepo.UpdateCredentials(ctx, memberID, creds); err != nil {
		return domain.Credentials{}, fmt.Errorf("failed to update credentials: %w", err)
	}

	logger.Info("Member credentials updated", "member_id", memberID, "username", creds.Username)
	return creds, nil
}

func (s *memberService) Leaderboard(ctx context.Context, limit int) ([]domain.Profile, error) {
	if limit <= 0 {
		limit = defaultLeaderboardSize
	}

	members, err := s.memberRepo.ListByPoints(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	profiles := make([]domain.Profile, 0, len(members))
	for i := range members {
		profiles = append(profiles, members[i].Profile())
	}
	return profiles, nil
}
