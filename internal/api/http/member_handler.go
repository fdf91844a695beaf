package http

import (
	"net/http"
	"strconv"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/service"
)

// MemberHandler serves credential updates and the leaderboard
type MemberHandler struct {
	memberSvc service.MemberService
}

func NewMemberHandler(memberSvc service.MemberService) *MemberHandler {
	return &MemberHandler{memberSvc: memberSvc}
}

type updateCredentialsRequest struct {
	MemberID string `json:"memberId"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *MemberHandler) UpdateCredentials(w http.ResponseWriter, r *http.Request) {
	var body updateCredentialsRequest
	if err := decodeBody(r, &body); err != nil {
		respondError(w, err)
		return
	}

	creds, err := h.memberSvc.UpdateCredentials(r.Context(), body.MemberID, body.Username, body.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	respondData(w, "Credentials updated successfully", map[string]domain.Credentials{
		"credentials": creds,
	})
}

func (h *MemberHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err == nil {
			limit = parsed
		}
	}

	profiles, err := h.memberSvc.Leaderboard(r.Context(), limit)
	if err != nil {
		respondError(w, err)
		return
	}
	if profiles == nil {
		profiles = []domain.Profile{}
	}
	respondData(w, "", profiles)
}
