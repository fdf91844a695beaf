package service

import (
	"context"
	"fmt"
	"strings"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/logger"
	"clubhub-backend/internal/repository"
	"clubhub-backend/internal/utils"
)

type membershipService struct {
	reqRepo    repository.MembershipRequestRepository
	memberRepo repository.MemberRepository
}

func NewMembershipService(reqRepo repository.MembershipRequestRepository, memberRepo repository.MemberRepository) MembershipService {
	return &membershipService{
		reqRepo:    reqRepo,
		memberRepo: memberRepo,
	}
}

func (s *membershipService) SubmitRequest(ctx context.Context, input SubmitMembershipInput) (*domain.MembershipRequest, error) {
	if err := validateSubmitInput(input); err != nil {
		return nil, err
	}

	req := &domain.MembershipRequest{
		Name:         strings.TrimSpace(input.Name),
		Email:        strings.TrimSpace(input.Email),
		Phone:        strings.TrimSpace(input.Phone),
		Github:       strings.TrimSpace(input.Github),
		Portfolio:    strings.TrimSpace(input.Portfolio),
		Interests:    input.Interests,
		Experience:   input.Experience,
		Goals:        input.Goals,
		Role:         input.Role,
		Availability: input.Availability,
	}
	if err := s.reqRepo.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("failed to create membership request: %w", err)
	}

	logger.Info("Membership request submitted", "request_id", req.ID, "email", req.Email)
	return req, nil
}

func validateSubmitInput(input SubmitMembershipInput) error {
	required := map[string]string{
		"name":         input.Name,
		"email":        input.Email,
		"phone":        input.Phone,
		"experience":   input.Experience,
		"goals":        input.Goals,
		"role":         input.Role,
		"availability": input.Availability,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: %s is required", domain.ErrInvalidInput, field)
		}
	}
	if len(input.Interests) == 0 {
		return fmt.Errorf("%w: at least one interest is required", domain.ErrInvalidInput)
	}
	return nil
}

func (s *membershipService) ListPendingRequests(ctx context.Context) ([]domain.MembershipRequest, error) {
	return s.reqRepo.ListPending(ctx)
}

// DecideRequest applies an admin decision to a pending request. Approval
// derives credentials from the applicant's name and creates the member in the
// same store transaction as the status swap, so a raced double-approve can
// never mint two members. The credential pair is returned to the caller; the
// admin delivers it out-of-band.
func (s *membershipService) DecideRequest(ctx context.Context, requestID string, decision domain.MembershipDecision, adminID string) (*MembershipDecisionResult, error) {
	if requestID == "" {
		return nil, fmt.Errorf("%w: request id is required", domain.ErrInvalidInput)
	}
	if decision != domain.MembershipDecisionApproved && decision != domain.MembershipDecisionRejected {
		return nil, fmt.Errorf("%w: decision must be approved or rejected", domain.ErrInvalidInput)
	}

	req, err := s.reqRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to get membership request: %w", err)
	}

	if decision == domain.MembershipDecisionRejected {
		if err := s.reqRepo.Reject(ctx, requestID, adminID); err != nil {
			return nil, fmt.Errorf("failed to reject membership request: %w", err)
		}
		logger.Info("Membership request rejected", "request_id", requestID, "admin_id", adminID)
		return &MembershipDecisionResult{}, nil
	}

	creds := utils.DeriveCredentials(req.Name, "", "")
	member := &domain.Member{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Github:       req.Github,
		Portfolio:    req.Portfolio,
		Interests:    req.Interests,
		Role:         req.Role,
		Availability: req.Availability,
		Username:     creds.Username,
		Password:     creds.Password,
		Badges:       0,
		Points:       0,
	}

	if err := s.reqRepo.Approve(ctx, requestID, adminID, member); err != nil {
		return nil, fmt.Errorf("failed to approve membership request: %w", err)
	}

	logger.Info("Membership request approved", "request_id", requestID, "member_id", member.ID, "admin_id", adminID)
	return &MembershipDecisionResult{
		MemberID:    member.ID,
		Credentials: &creds,
	}, nil
}
