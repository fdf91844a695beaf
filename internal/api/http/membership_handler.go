package http

import (
	"net/http"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/service"
)

// MembershipHandler serves intake submission and the admin decision surface
type MembershipHandler struct {
	membershipSvc service.MembershipService
}

func NewMembershipHandler(membershipSvc service.MembershipService) *MembershipHandler {
	return &MembershipHandler{membershipSvc: membershipSvc}
}

func (h *MembershipHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var input service.SubmitMembershipInput
	if err := decodeBody(r, &input); err != nil {
		respondError(w, err)
		return
	}

	req, err := h.membershipSvc.SubmitRequest(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}

	respondCreated(w, "Membership request submitted. We'll be in touch soon!", map[string]string{
		"requestId": req.ID,
	})
}

func (h *MembershipHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	reqs, err := h.membershipSvc.ListPendingRequests(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	if reqs == nil {
		reqs = []domain.MembershipRequest{}
	}
	respondData(w, "", reqs)
}

type decideMembershipRequest struct {
	RequestID string `json:"requestId"`
	Decision  string `json:"decision"`
	AdminID   string `json:"adminId"`
}

func (h *MembershipHandler) Decide(w http.ResponseWriter, r *http.Request) {
	var body decideMembershipRequest
	if err := decodeBody(r, &body); err != nil {
		respondError(w, err)
		return
	}

	result, err := h.membershipSvc.DecideRequest(r.Context(), body.RequestID, domain.MembershipDecision(body.Decision), body.AdminID)
	if err != nil {
		respondError(w, err)
		return
	}

	if result.Credentials != nil {
		respondData(w, "Member approved", result)
		return
	}
	respondData(w, "Membership request rejected", nil)
}
