package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"
)

type sessionRepository struct {
	client *firestore.Client
}

func NewSessionRepository(client *firestore.Client) repository.SessionRepository {
	return &sessionRepository{client: client}
}

// ListUpcoming returns sessions dated on or after the given yyyy-mm-dd day in
// ascending date order. Same-date ordering is store-dependent. A limit of 0
// means no limit.
func (r *sessionRepository) ListUpcoming(ctx context.Context, from string, limit int) ([]domain.Session, error) {
	q := r.client.Collection(collSessions).
		Where("date", ">=", from).
		OrderBy("date", firestore.Asc)
	if limit > 0 {
		q = q.Limit(limit)
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	var sessions []domain.Session
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapError(err)
		}
		var s domain.Session
		if err := snap.DataTo(&s); err != nil {
			return nil, mapError(err)
		}
		s.ID = snap.Ref.ID
		sessions = append(sessions, s)
	}
	return sessions, nil
}
