package service

import (
	"context"
	"fmt"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/logger"
	"clubhub-backend/internal/repository"
)

type eventService struct {
	eventRepo repository.EventRepository
}

func NewEventService(eventRepo repository.EventRepository) EventService {
	return &eventService{eventRepo: eventRepo}
}

func (s *eventService) ListEvents(ctx context.Context) ([]domain.Event, error) {
	return s.eventRepo.List(ctx)
}

// Rsvp appends an attendance record unconditionally. No capacity check and
// no dedup: the same member RSVPing twice files two records.
func (s *eventService) Rsvp(ctx context.Context, eventID, userID string) (*domain.EventRsvp, error) {
	if eventID == "" {
		return nil, fmt.Errorf("%w: event id is required", domain.ErrInvalidInput)
	}
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}

	rsvp := &domain.EventRsvp{
		EventID: eventID,
		UserID:  userID,
	}
	if err := s.eventRepo.CreateRsvp(ctx, rsvp); err != nil {
		return nil, fmt.Errorf("failed to create rsvp: %w", err)
	}

	logger.Info("Event RSVP recorded", "rsvp_id", rsvp.ID, "event_id", eventID, "user_id", userID)
	return rsvp, nil
}
