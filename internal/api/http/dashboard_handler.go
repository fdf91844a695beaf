package http

import (
	"fmt"
	"net/http"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/service"
)

// DashboardHandler serves the member dashboard aggregation
type DashboardHandler struct {
	dashboardSvc service.DashboardService
	sessionSvc   service.SessionService

	// Surfaced so the front end polls at the configured cadence instead of
	// a baked-in constant.
	pollIntervalSeconds int
}

func NewDashboardHandler(dashboardSvc service.DashboardService, sessionSvc service.SessionService, pollIntervalSeconds int) *DashboardHandler {
	return &DashboardHandler{
		dashboardSvc:        dashboardSvc,
		sessionSvc:          sessionSvc,
		pollIntervalSeconds: pollIntervalSeconds,
	}
}

func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		respondError(w, fmt.Errorf("%w: userId query parameter is required", domain.ErrInvalidInput))
		return
	}

	dashboard, err := h.dashboardSvc.GetDashboard(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondData(w, "", dashboard)
}

func (h *DashboardHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.sessionSvc.ListUpcoming(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	if sessions == nil {
		sessions = []domain.Session{}
	}
	respondData(w, "", sessions)
}

func (h *DashboardHandler) ClientConfig(w http.ResponseWriter, r *http.Request) {
	respondData(w, "", map[string]int{
		"pollIntervalSeconds": h.pollIntervalSeconds,
	})
}
