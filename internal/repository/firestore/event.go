package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/logger"
	"clubhub-backend/internal/repository"
)

type eventRepository struct {
	client *firestore.Client
}

func NewEventRepository(client *firestore.Client) repository.EventRepository {
	return &eventRepository{client: client}
}

func (r *eventRepository) List(ctx context.Context) ([]domain.Event, error) {
	iter := r.client.Collection(collEvents).
		OrderBy("date", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var events []domain.Event
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapError(err)
		}
		var e domain.Event
		if err := snap.DataTo(&e); err != nil {
			return nil, mapError(err)
		}
		e.ID = snap.Ref.ID
		events = append(events, e)
	}
	return events, nil
}

// CountUpcoming counts events dated on or after the given yyyy-mm-dd day.
// Only the count is needed, the documents are discarded.
func (r *eventRepository) CountUpcoming(ctx context.Context, from string) (int, error) {
	iter := r.client.Collection(collEvents).
		Where("date", ">=", from).
		Documents(ctx)
	defer iter.Stop()

	count := 0
	for {
		_, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return 0, mapError(err)
		}
		count++
	}
	return count, nil
}

func (r *eventRepository) CreateRsvp(ctx context.Context, rsvp *domain.EventRsvp) error {
	rsvp.ID = uuid.NewString()
	rsvp.CreatedAt = time.Now()

	logger.StoreCall("create", collEventRsvps, "event_id", rsvp.EventID, "user_id", rsvp.UserID)
	_, err := r.client.Collection(collEventRsvps).Doc(rsvp.ID).Create(ctx, rsvp)
	logger.StoreResult("create", collEventRsvps, err)
	return mapError(err)
}
