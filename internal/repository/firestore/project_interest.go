package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/logger"
	"clubhub-backend/internal/repository"
)

type projectInterestRepository struct {
	client *firestore.Client
}

func NewProjectInterestRepository(client *firestore.Client) repository.ProjectInterestRepository {
	return &projectInterestRepository{client: client}
}

func (r *projectInterestRepository) Create(ctx context.Context, interest *domain.ProjectInterest) error {
	interest.ID = uuid.NewString()
	interest.Status = domain.ProjectInterestStatusPending
	interest.CreatedAt = time.Now()

	logger.StoreCall("create", collProjectInterests, "id", interest.ID)
	_, err := r.client.Collection(collProjectInterests).Doc(interest.ID).Create(ctx, interest)
	logger.StoreResult("create", collProjectInterests, err)
	return mapError(err)
}

func (r *projectInterestRepository) GetByID(ctx context.Context, id string) (*domain.ProjectInterest, error) {
	snap, err := r.client.Collection(collProjectInterests).Doc(id).Get(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	var interest domain.ProjectInterest
	if err := snap.DataTo(&interest); err != nil {
		return nil, mapError(err)
	}
	interest.ID = snap.Ref.ID
	return &interest, nil
}

func (r *projectInterestRepository) ListPending(ctx context.Context) ([]domain.ProjectInterest, error) {
	iter := r.client.Collection(collProjectInterests).
		Where("status", "==", string(domain.ProjectInterestStatusPending)).
		Documents(ctx)
	defer iter.Stop()

	var interests []domain.ProjectInterest
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapError(err)
		}
		var interest domain.ProjectInterest
		if err := snap.DataTo(&interest); err != nil {
			return nil, mapError(err)
		}
		interest.ID = snap.Ref.ID
		interests = append(interests, interest)
	}
	return interests, nil
}

// Decide transitions pending -> approved|held. The status swap, the
// membership record, and the project member-count bump commit together or
// not at all; the reference wrote them as separate calls and could strand a
// half-approved interest.
func (r *projectInterestRepository) Decide(ctx context.Context, interestID string, newStatus domain.ProjectInterestStatus, membership *domain.ProjectMembership) error {
	interestRef := r.client.Collection(collProjectInterests).Doc(interestID)

	var membershipRef *firestore.DocumentRef
	if membership != nil {
		if membership.ID == "" {
			membership.ID = uuid.NewString()
		}
		membership.JoinedAt = time.Now()
		membershipRef = r.client.Collection(collProjectMembers).Doc(membership.ID)
	}

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(interestRef)
		if err != nil {
			return err
		}
		var interest domain.ProjectInterest
		if err := snap.DataTo(&interest); err != nil {
			return err
		}
		if interest.Status != domain.ProjectInterestStatusPending {
			return domain.ErrAlreadyDecided
		}

		// Reads must precede writes in a Firestore transaction; probe the
		// project before any mutation.
		projectExists := false
		if membership != nil {
			projectRef := r.client.Collection(collProjects).Doc(interest.ProjectID)
			if _, err := tx.Get(projectRef); err == nil {
				projectExists = true
			} else if status.Code(err) != codes.NotFound {
				return err
			}
		}

		if err := tx.Update(interestRef, []firestore.Update{
			{Path: "status", Value: string(newStatus)},
			{Path: "decidedAt", Value: time.Now()},
		}); err != nil {
			return err
		}

		if membership != nil {
			if err := tx.Create(membershipRef, membership); err != nil {
				return err
			}
			// Dangling project refs are tolerated; the count only moves for
			// projects that still exist.
			if projectExists {
				projectRef := r.client.Collection(collProjects).Doc(interest.ProjectID)
				if err := tx.Update(projectRef, []firestore.Update{
					{Path: "members", Value: firestore.Increment(1)},
				}); err != nil {
					return err
				}
			}
		}
		return nil
	})
	logger.StoreResult("decide", collProjectInterests, err, "interest_id", interestID, "status", string(newStatus))
	return mapError(err)
}
