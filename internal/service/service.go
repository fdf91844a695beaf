package service

import (
	"context"

	"clubhub-backend/internal/domain"
)

// SubmitMembershipInput is the validated intake form.
type SubmitMembershipInput struct {
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	Github       string   `json:"github"`
	Portfolio    string   `json:"portfolio"`
	Interests    []string `json:"interests"`
	Experience   string   `json:"experience"`
	Goals        string   `json:"goals"`
	Role         string   `json:"role"`
	Availability string   `json:"availability"`
}

// MembershipDecisionResult is returned from an admin decision. Credentials
// are present only on approval, so the admin can hand them to the new member
// out-of-band; the portal never emails them.
type MembershipDecisionResult struct {
	MemberID    string              `json:"member_id,omitempty"`
	Credentials *domain.Credentials `json:"credentials,omitempty"`
}

type MembershipService interface {
	SubmitRequest(ctx context.Context, input SubmitMembershipInput) (*domain.MembershipRequest, error)
	ListPendingRequests(ctx context.Context) ([]domain.MembershipRequest, error)
	DecideRequest(ctx context.Context, requestID string, decision domain.MembershipDecision, adminID string) (*MembershipDecisionResult, error)
}

type MemberService interface {
	UpdateCredentials(ctx context.Context, memberID, username, password string) (domain.Credentials, error)
	Leaderboard(ctx context.Context, limit int) ([]domain.Profile, error)
}

type ProjectService interface {
	RegisterInterest(ctx context.Context, projectID, userID string) (*domain.ProjectInterest, error)
	ListPendingInterests(ctx context.Context) ([]domain.ProjectInterest, error)
	DecideInterest(ctx context.Context, interestID string, status domain.ProjectInterestStatus, projectID, userID string) error
	ListProjects(ctx context.Context) ([]domain.Project, error)
}

type EventService interface {
	ListEvents(ctx context.Context) ([]domain.Event, error)
	Rsvp(ctx context.Context, eventID, userID string) (*domain.EventRsvp, error)
}

type SessionService interface {
	ListUpcoming(ctx context.Context) ([]domain.Session, error)
}

type DashboardService interface {
	GetDashboard(ctx context.Context, userID string) (*domain.Dashboard, error)
}

type AuthService interface {
	// Login returns the member profile (credentials stripped) and a signed
	// access token.
	Login(ctx context.Context, username, password string) (*domain.Profile, string, error)
}
