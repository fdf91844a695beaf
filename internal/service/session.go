package service

import (
	"context"
	"fmt"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"
	"clubhub-backend/internal/utils"
)

type sessionService struct {
	sessionRepo repository.SessionRepository
}

func NewSessionService(sessionRepo repository.SessionRepository) SessionService {
	return &sessionService{sessionRepo: sessionRepo}
}

// ListUpcoming returns all sessions from today onward in ascending date
// order.
func (s *sessionService) ListUpcoming(ctx context.Context) ([]domain.Session, error) {
	sessions, err := s.sessionRepo.ListUpcoming(ctx, utils.Today(), 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}
