package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"clubhub-backend/internal/domain"
)

// MockMembershipRequestRepo
type MockMembershipRequestRepo struct {
	mock.Mock
}

func (m *MockMembershipRequestRepo) Create(ctx context.Context, req *domain.MembershipRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockMembershipRequestRepo) GetByID(ctx context.Context, id string) (*domain.MembershipRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MembershipRequest), args.Error(1)
}
func (m *MockMembershipRequestRepo) ListPending(ctx context.Context) ([]domain.MembershipRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MembershipRequest), args.Error(1)
}
func (m *MockMembershipRequestRepo) Approve(ctx context.Context, requestID, adminID string, member *domain.Member) error {
	args := m.Called(ctx, requestID, adminID, member)
	return args.Error(0)
}
func (m *MockMembershipRequestRepo) Reject(ctx context.Context, requestID, adminID string) error {
	args := m.Called(ctx, requestID, adminID)
	return args.Error(0)
}
func (m *MockMembershipRequestRepo) DeleteDecidedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	args := m.Called(ctx, cutoff)
	return args.Int(0), args.Error(1)
}

// MockMemberRepo
type MockMemberRepo struct {
	mock.Mock
}

func (m *MockMemberRepo) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}
func (m *MockMemberRepo) GetByUsername(ctx context.Context, username string) (*domain.Member, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}
func (m *MockMemberRepo) UpdateCredentials(ctx context.Context, id string, creds domain.Credentials) error {
	args := m.Called(ctx, id, creds)
	return args.Error(0)
}
func (m *MockMemberRepo) ListByPoints(ctx context.Context, limit int) ([]domain.Member, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Member), args.Error(1)
}

// MockProjectRepo
type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}
func (m *MockProjectRepo) SetMemberCount(ctx context.Context, id string, count int) error {
	args := m.Called(ctx, id, count)
	return args.Error(0)
}
func (m *MockProjectRepo) List(ctx context.Context) ([]domain.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

// MockProjectInterestRepo
type MockProjectInterestRepo struct {
	mock.Mock
}

func (m *MockProjectInterestRepo) Create(ctx context.Context, interest *domain.ProjectInterest) error {
	args := m.Called(ctx, interest)
	return args.Error(0)
}
func (m *MockProjectInterestRepo) GetByID(ctx context.Context, id string) (*domain.ProjectInterest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProjectInterest), args.Error(1)
}
func (m *MockProjectInterestRepo) ListPending(ctx context.Context) ([]domain.ProjectInterest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProjectInterest), args.Error(1)
}
func (m *MockProjectInterestRepo) Decide(ctx context.Context, interestID string, status domain.ProjectInterestStatus, membership *domain.ProjectMembership) error {
	args := m.Called(ctx, interestID, status, membership)
	return args.Error(0)
}

// MockProjectMembershipRepo
type MockProjectMembershipRepo struct {
	mock.Mock
}

func (m *MockProjectMembershipRepo) ListByUser(ctx context.Context, userID string) ([]domain.ProjectMembership, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProjectMembership), args.Error(1)
}
func (m *MockProjectMembershipRepo) CountByProject(ctx context.Context, projectID string) (int, error) {
	args := m.Called(ctx, projectID)
	return args.Int(0), args.Error(1)
}

// MockEventRepo
type MockEventRepo struct {
	mock.Mock
}

func (m *MockEventRepo) List(ctx context.Context) ([]domain.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}
func (m *MockEventRepo) CountUpcoming(ctx context.Context, from string) (int, error) {
	args := m.Called(ctx, from)
	return args.Int(0), args.Error(1)
}
func (m *MockEventRepo) CreateRsvp(ctx context.Context, rsvp *domain.EventRsvp) error {
	args := m.Called(ctx, rsvp)
	return args.Error(0)
}

// MockSessionRepo
type MockSessionRepo struct {
	mock.Mock
}

func (m *MockSessionRepo) ListUpcoming(ctx context.Context, from string, limit int) ([]domain.Session, error) {
	args := m.Called(ctx, from, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Session), args.Error(1)
}
