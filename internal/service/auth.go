package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/logger"
	"clubhub-backend/internal/repository"
	"clubhub-backend/internal/security"
)

var (
	// Distinct by design: the reference portal tells the caller whether the
	// username or the password was wrong. Both carry the same error kind.
	ErrUnknownUsername = fmt.Errorf("%w: no member found with that username", domain.ErrUnauthorized)
	ErrWrongPassword   = fmt.Errorf("%w: incorrect password", domain.ErrUnauthorized)
)

type authService struct {
	memberRepo repository.MemberRepository
	tokens     security.TokenManager
}

func NewAuthService(memberRepo repository.MemberRepository, tokens security.TokenManager) AuthService {
	return &authService{
		memberRepo: memberRepo,
		tokens:     tokens,
	}
}

// Login matches the username case-insensitively and compares the password as
// plain text; credentials are derived strings, not secrets with a hash
// lifecycle.
func (s *authService) Login(ctx context.Context, username, password string) (*domain.Profile, string, error) {
	if username == "" || password == "" {
		return nil, "", fmt.Errorf("%w: username and password are required", domain.ErrInvalidInput)
	}

	normalized := strings.ToLower(strings.TrimSpace(username))

	member, err := s.memberRepo.GetByUsername(ctx, normalized)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			logger.Info("Login failed, unknown username", "username", normalized)
			return nil, "", ErrUnknownUsername
		}
		return nil, "", fmt.Errorf("failed to look up member: %w", err)
	}

	if member.Password != password {
		logger.Info("Login failed, wrong password", "username", normalized)
		return nil, "", ErrWrongPassword
	}

	token, err := s.tokens.GenerateAccessToken(member.ID, member.Role)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate access token: %w", err)
	}

	logger.Info("Login successful", "member_id", member.ID, "username", normalized)
	profile := member.Profile()
	return &profile, token, nil
}
