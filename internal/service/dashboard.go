package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"
	"clubhub-backend/internal/utils"
)

const dashboardSessionLimit = 5

type dashboardService struct {
	memberRepo     repository.MemberRepository
	membershipRepo repository.ProjectMembershipRepository
	projectRepo    repository.ProjectRepository
	eventRepo      repository.EventRepository
	sessionRepo    repository.SessionRepository
}

func NewDashboardService(
	memberRepo repository.MemberRepository,
	membershipRepo repository.ProjectMembershipRepository,
	projectRepo repository.ProjectRepository,
	eventRepo repository.EventRepository,
	sessionRepo repository.SessionRepository,
) DashboardService {
	return &dashboardService{
		memberRepo:     memberRepo,
		membershipRepo: membershipRepo,
		projectRepo:    projectRepo,
		eventRepo:      eventRepo,
		sessionRepo:    sessionRepo,
	}
}

// GetDashboard composes the member's cross-collection summary: profile,
// owned projects, the next five sessions, and upcoming-event counts.
func (s *dashboardService) GetDashboard(ctx context.Context, userID string) (*domain.Dashboard, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}

	member, err := s.memberRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	memberships, err := s.membershipRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list project memberships: %w", err)
	}

	projects, err := s.fetchProjects(ctx, projectIDs(memberships))
	if err != nil {
		return nil, err
	}

	today := utils.Today()

	sessions, err := s.sessionRepo.ListUpcoming(ctx, today, dashboardSessionLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming sessions: %w", err)
	}
	if sessions == nil {
		sessions = []domain.Session{}
	}

	eventCount, err := s.eventRepo.CountUpcoming(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("failed to count upcoming events: %w", err)
	}

	return &domain.Dashboard{
		Member: member.Profile(),
		Stats: domain.DashboardStats{
			ActiveProjects:   len(projects),
			UpcomingEvents:   eventCount,
			UpcomingSessions: len(sessions),
		},
		Projects: projects,
		Sessions: sessions,
	}, nil
}

func projectIDs(memberships []domain.ProjectMembership) []string {
	seen := make(map[string]bool, len(memberships))
	ids := make([]string, 0, len(memberships))
	for _, m := range memberships {
		if seen[m.ProjectID] {
			continue
		}
		seen[m.ProjectID] = true
		ids = append(ids, m.ProjectID)
	}
	return ids
}

// fetchProjects fans the per-project reads out in parallel; they are
// independent round-trips. Dangling references are dropped silently, store
// faults fail the aggregation.
func (s *dashboardService) fetchProjects(ctx context.Context, ids []string) ([]domain.Project, error) {
	results := make([]*domain.Project, len(ids))
	errs := make([]error, len(ids))

	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			project, err := s.projectRepo.GetByID(ctx, id)
			if err != nil {
				if !errors.Is(err, domain.ErrNotFound) {
					errs[i] = err
				}
				return
			}
			results[i] = project
		}(i, id)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("failed to fetch project: %w", err)
		}
	}

	projects := make([]domain.Project, 0, len(results))
	for _, p := range results {
		if p != nil {
			projects = append(projects, *p)
		}
	}
	return projects, nil
}
