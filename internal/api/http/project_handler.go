package http

import (
	"net/http"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/service"
)

// ProjectHandler serves project listings and the interest workflow
type ProjectHandler struct {
	projectSvc service.ProjectService
}

func NewProjectHandler(projectSvc service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectSvc: projectSvc}
}

func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectSvc.ListProjects(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	if projects == nil {
		projects = []domain.Project{}
	}
	respondData(w, "", projects)
}

type registerInterestRequest struct {
	ProjectID string `json:"projectId"`
	UserID    string `json:"userId"`
}

func (h *ProjectHandler) RegisterInterest(w http.ResponseWriter, r *http.Request) {
	var body registerInterestRequest
	if err := decodeBody(r, &body); err != nil {
		respondError(w, err)
		return
	}

	interest, err := h.projectSvc.RegisterInterest(r.Context(), body.ProjectID, body.UserID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondCreated(w, "Interest registered! The project lead will review it.", map[string]string{
		"interestId": interest.ID,
	})
}

func (h *ProjectHandler) ListPendingInterests(w http.ResponseWriter, r *http.Request) {
	interests, err := h.projectSvc.ListPendingInterests(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	if interests == nil {
		interests = []domain.ProjectInterest{}
	}
	respondData(w, "", interests)
}

type decideInterestRequest struct {
	InterestID string `json:"interestId"`
	Status     string `json:"status"`
	ProjectID  string `json:"projectId"`
	UserID     string `json:"userId"`
}

func (h *ProjectHandler) DecideInterest(w http.ResponseWriter, r *http.Request) {
	var body decideInterestRequest
	if err := decodeBody(r, &body); err != nil {
		respondError(w, err)
		return
	}

	err := h.projectSvc.DecideInterest(r.Context(), body.InterestID, domain.ProjectInterestStatus(body.Status), body.ProjectID, body.UserID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondData(w, "Interest decision recorded", nil)
}
