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

type membershipRequestRepository struct {
	client *firestore.Client
}

func NewMembershipRequestRepository(client *firestore.Client) repository.MembershipRequestRepository {
	return &membershipRequestRepository{client: client}
}

func (r *membershipRequestRepository) Create(ctx context.Context, req *domain.MembershipRequest) error {
	req.ID = uuid.NewString()
	req.Status = domain.MembershipRequestStatusPending
	req.CreatedAt = time.Now()

	logger.StoreCall("create", collMembershipRequests, "id", req.ID)
	_, err := r.client.Collection(collMembershipRequests).Doc(req.ID).Create(ctx, req)
	logger.StoreResult("create", collMembershipRequests, err)
	return mapError(err)
}

func (r *membershipRequestRepository) GetByID(ctx context.Context, id string) (*domain.MembershipRequest, error) {
	snap, err := r.client.Collection(collMembershipRequests).Doc(id).Get(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	var req domain.MembershipRequest
	if err := snap.DataTo(&req); err != nil {
		return nil, mapError(err)
	}
	req.ID = snap.Ref.ID
	return &req, nil
}

func (r *membershipRequestRepository) ListPending(ctx context.Context) ([]domain.MembershipRequest, error) {
	iter := r.client.Collection(collMembershipRequests).
		Where("status", "==", string(domain.MembershipRequestStatusPending)).
		Documents(ctx)
	defer iter.Stop()

	var reqs []domain.MembershipRequest
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapError(err)
		}
		var req domain.MembershipRequest
		if err := snap.DataTo(&req); err != nil {
			return nil, mapError(err)
		}
		req.ID = snap.Ref.ID
		reqs = append(reqs, req)
	}
	return reqs, nil
}

// Approve runs the compare-and-swap and the member creation in one
// transaction: the request must still be pending, otherwise two concurrent
// decisions could mint two members from one application.
func (r *membershipRequestRepository) Approve(ctx context.Context, requestID, adminID string, member *domain.Member) error {
	if member.ID == "" {
		member.ID = uuid.NewString()
	}
	member.CreatedAt = time.Now()

	reqRef := r.client.Collection(collMembershipRequests).Doc(requestID)
	memberRef := r.client.Collection(collMembers).Doc(member.ID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := r.pendingStatus(tx, reqRef); err != nil {
			return err
		}
		if err := tx.Create(memberRef, member); err != nil {
			return err
		}
		return tx.Update(reqRef, decisionUpdates(domain.MembershipRequestStatusApproved, adminID))
	})
	logger.StoreResult("approve", collMembershipRequests, err, "request_id", requestID, "member_id", member.ID)
	return mapError(err)
}

func (r *membershipRequestRepository) Reject(ctx context.Context, requestID, adminID string) error {
	reqRef := r.client.Collection(collMembershipRequests).Doc(requestID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := r.pendingStatus(tx, reqRef); err != nil {
			return err
		}
		return tx.Update(reqRef, decisionUpdates(domain.MembershipRequestStatusRejected, adminID))
	})
	logger.StoreResult("reject", collMembershipRequests, err, "request_id", requestID)
	return mapError(err)
}

// pendingStatus reads the request inside the transaction and enforces the
// pending precondition.
func (r *membershipRequestRepository) pendingStatus(tx *firestore.Transaction, ref *firestore.DocumentRef) (domain.MembershipRequestStatus, error) {
	snap, err := tx.Get(ref)
	if err != nil {
		return "", err
	}
	var req domain.MembershipRequest
	if err := snap.DataTo(&req); err != nil {
		return "", err
	}
	if req.Status != domain.MembershipRequestStatusPending {
		return req.Status, domain.ErrAlreadyDecided
	}
	return req.Status, nil
}

func decisionUpdates(status domain.MembershipRequestStatus, adminID string) []firestore.Update {
	return []firestore.Update{
		{Path: "status", Value: string(status)},
		{Path: "decidedAt", Value: time.Now()},
		{Path: "decidedBy", Value: adminID},
	}
}

func (r *membershipRequestRepository) DeleteDecidedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	iter := r.client.Collection(collMembershipRequests).
		Where("status", "in", []string{
			string(domain.MembershipRequestStatusApproved),
			string(domain.MembershipRequestStatusRejected),
		}).
		Documents(ctx)
	defer iter.Stop()

	deleted := 0
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return deleted, mapError(err)
		}

		var req domain.MembershipRequest
		if err := snap.DataTo(&req); err != nil {
			return deleted, mapError(err)
		}
		if req.DecidedAt == nil || !req.DecidedAt.Before(cutoff) {
			continue
		}
		if _, err := snap.Ref.Delete(ctx); err != nil {
			return deleted, mapError(err)
		}
		deleted++
	}
	return deleted, nil
}
