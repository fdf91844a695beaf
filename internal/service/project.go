package service

import (
	"context"
	"errors"
	"fmt"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/logger"
	"clubhub-backend/internal/repository"
)

type projectService struct {
	projectRepo  repository.ProjectRepository
	interestRepo repository.ProjectInterestRepository
	memberRepo   repository.MemberRepository
}

func NewProjectService(
	projectRepo repository.ProjectRepository,
	interestRepo repository.ProjectInterestRepository,
	memberRepo repository.MemberRepository,
) ProjectService {
	return &projectService{
		projectRepo:  projectRepo,
		interestRepo: interestRepo,
		memberRepo:   memberRepo,
	}
}

// RegisterInterest records a member's request to join a project. There is no
// per-(project,user) uniqueness: registering twice files two pending
// interests, matching the reference behavior.
func (s *projectService) RegisterInterest(ctx context.Context, projectID, userID string) (*domain.ProjectInterest, error) {
	if projectID == "" {
		return nil, fmt.Errorf("%w: project id is required", domain.ErrInvalidInput)
	}
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}

	interest := &domain.ProjectInterest{
		ProjectID: projectID,
		UserID:    userID,
	}
	if err := s.interestRepo.Create(ctx, interest); err != nil {
		return nil, fmt.Errorf("failed to create project interest: %w", err)
	}

	logger.Info("Project interest registered", "interest_id", interest.ID, "project_id", projectID, "user_id", userID)
	return interest, nil
}

// ListPendingInterests returns pending interests annotated with the project
// title and applicant identity the admin review screen shows. Lookup
// failures on the annotations are tolerated; referential integrity in the
// store is advisory only.
func (s *projectService) ListPendingInterests(ctx context.Context) ([]domain.ProjectInterest, error) {
	interests, err := s.interestRepo.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending interests: %w", err)
	}

	for i := range interests {
		if project, err := s.projectRepo.GetByID(ctx, interests[i].ProjectID); err == nil {
			interests[i].ProjectTitle = project.Title
		} else if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		if member, err := s.memberRepo.GetByID(ctx, interests[i].UserID); err == nil {
			interests[i].UserName = member.Name
			interests[i].UserEmail = member.Email
		} else if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	}
	return interests, nil
}

func (s *projectService) DecideInterest(ctx context.Context, interestID string, status domain.ProjectInterestStatus, projectID, userID string) error {
	if interestID == "" {
		return fmt.Errorf("%w: interest id is required", domain.ErrInvalidInput)
	}
	if status != domain.ProjectInterestStatusApproved && status != domain.ProjectInterestStatusHeld {
		return fmt.Errorf("%w: status must be approved or held", domain.ErrInvalidInput)
	}
	if projectID == "" || userID == "" {
		return fmt.Errorf("%w: project id and user id are required", domain.ErrInvalidInput)
	}

	var membership *domain.ProjectMembership
	if status == domain.ProjectInterestStatusApproved {
		membership = &domain.ProjectMembership{
			ProjectID: projectID,
			UserID:    userID,
		}
	}

	if err := s.interestRepo.Decide(ctx, interestID, status, membership); err != nil {
		return fmt.Errorf("failed to decide project interest: %w", err)
	}

	logger.Info("Project interest decided", "interest_id", interestID, "status", string(status))
	return nil
}

func (s *projectService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return s.projectRepo.List(ctx)
}
