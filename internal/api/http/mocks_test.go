package http

import (
	"context"

	"github.com/stretchr/testify/mock"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/service"
)

// MockAuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*domain.Profile, string, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*domain.Profile), args.String(1), args.Error(2)
}

// MockMembershipService
type MockMembershipService struct {
	mock.Mock
}

func (m *MockMembershipService) SubmitRequest(ctx context.Context, input service.SubmitMembershipInput) (*domain.MembershipRequest, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MembershipRequest), args.Error(1)
}
func (m *MockMembershipService) ListPendingRequests(ctx context.Context) ([]domain.MembershipRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MembershipRequest), args.Error(1)
}
func (m *MockMembershipService) DecideRequest(ctx context.Context, requestID string, decision domain.MembershipDecision, adminID string) (*service.MembershipDecisionResult, error) {
	args := m.Called(ctx, requestID, decision, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.MembershipDecisionResult), args.Error(1)
}

// MockMemberService
type MockMemberService struct {
	mock.Mock
}

func (m *MockMemberService) UpdateCredentials(ctx context.Context, memberID, username, password string) (domain.Credentials, error) {
	args := m.Called(ctx, memberID, username, password)
	return args.Get(0).(domain.Credentials), args.Error(1)
}
func (m *MockMemberService) Leaderboard(ctx context.Context, limit int) ([]domain.Profile, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Profile), args.Error(1)
}

// MockProjectService
type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) RegisterInterest(ctx context.Context, projectID, userID string) (*domain.ProjectInterest, error) {
	args := m.Called(ctx, projectID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProjectInterest), args.Error(1)
}
func (m *MockProjectService) ListPendingInterests(ctx context.Context) ([]domain.ProjectInterest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProjectInterest), args.Error(1)
}
func (m *MockProjectService) DecideInterest(ctx context.Context, interestID string, status domain.ProjectInterestStatus, projectID, userID string) error {
	args := m.Called(ctx, interestID, status, projectID, userID)
	return args.Error(0)
}
func (m *MockProjectService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

// MockEventService
type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) ListEvents(ctx context.Context) ([]domain.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}
func (m *MockEventService) Rsvp(ctx context.Context, eventID, userID string) (*domain.EventRsvp, error) {
	args := m.Called(ctx, eventID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EventRsvp), args.Error(1)
}

// MockSessionService
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) ListUpcoming(ctx context.Context) ([]domain.Session, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Session), args.Error(1)
}

// MockDashboardService
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) GetDashboard(ctx context.Context, userID string) (*domain.Dashboard, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dashboard), args.Error(1)
}
