package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"
)

type memberRepository struct {
	client *firestore.Client
}

func NewMemberRepository(client *firestore.Client) repository.MemberRepository {
	return &memberRepository{client: client}
}

func (r *memberRepository) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	snap, err := r.client.Collection(collMembers).Doc(id).Get(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	var m domain.Member
	if err := snap.DataTo(&m); err != nil {
		return nil, mapError(err)
	}
	m.ID = snap.Ref.ID
	return &m, nil
}

func (r *memberRepository) GetByUsername(ctx context.Context, username string) (*domain.Member, error) {
	iter := r.client.Collection(collMembers).
		Where("username", "==", username).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, mapError(err)
	}

	var m domain.Member
	if err := snap.DataTo(&m); err != nil {
		return nil, mapError(err)
	}
	m.ID = snap.Ref.ID
	return &m, nil
}

func (r *memberRepository) UpdateCredentials(ctx context.Context, id string, creds domain.Credentials) error {
	_, err := r.client.Collection(collMembers).Doc(id).Update(ctx, []firestore.Update{
		{Path: "username", Value: creds.Username},
		{Path: "password", Value: creds.Password},
		{Path: "credentialsUpdatedAt", Value: time.Now()},
	})
	return mapError(err)
}

func (r *memberRepository) ListByPoints(ctx context.Context, limit int) ([]domain.Member, error) {
	iter := r.client.Collection(collMembers).
		OrderBy("points", firestore.Desc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	var members []domain.Member
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapError(err)
		}
		var m domain.Member
		if err := snap.DataTo(&m); err != nil {
			return nil, mapError(err)
		}
		m.ID = snap.Ref.ID
		members = append(members, m)
	}
	return members, nil
}
