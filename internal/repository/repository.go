package repository

import (
	"context"
	"time"

	"clubhub-backend/internal/domain"
)

type MembershipRequestRepository interface {
	Create(ctx context.Context, req *domain.MembershipRequest) error
	GetByID(ctx context.Context, id string) (*domain.MembershipRequest, error)
	ListPending(ctx context.Context) ([]domain.MembershipRequest, error)
	// Approve transitions the request out of pending and creates the member
	// in the same store transaction. ErrAlreadyDecided if the request has
	// left the pending state.
	Approve(ctx context.Context, requestID, adminID string, member *domain.Member) error
	// Reject transitions the request out of pending. Same CAS semantics.
	Reject(ctx context.Context, requestID, adminID string) error
	DeleteDecidedBefore(ctx context.Context, cutoff time.Time) (int, error)
}

type MemberRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Member, error)
	GetByUsername(ctx context.Context, username string) (*domain.Member, error)
	UpdateCredentials(ctx context.Context, id string, creds domain.Credentials) error
	ListByPoints(ctx context.Context, limit int) ([]domain.Member, error)
}

type ProjectRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	SetMemberCount(ctx context.Context, id string, count int) error
	List(ctx context.Context) ([]domain.Project, error)
}

type ProjectInterestRepository interface {
	Create(ctx context.Context, interest *domain.ProjectInterest) error
	GetByID(ctx context.Context, id string) (*domain.ProjectInterest, error)
	ListPending(ctx context.Context) ([]domain.ProjectInterest, error)
	// Decide transitions pending -> approved|held. On approval the
	// membership record is created and the project member count incremented
	// in the same store transaction.
	Decide(ctx context.Context, interestID string, status domain.ProjectInterestStatus, membership *domain.ProjectMembership) error
}

type ProjectMembershipRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.ProjectMembership, error)
	CountByProject(ctx context.Context, projectID string) (int, error)
}

type EventRepository interface {
	List(ctx context.Context) ([]domain.Event, error)
	CountUpcoming(ctx context.Context, from string) (int, error)
	CreateRsvp(ctx context.Context, rsvp *domain.EventRsvp) error
}

type SessionRepository interface {
	ListUpcoming(ctx context.Context, from string, limit int) ([]domain.Session, error)
}
