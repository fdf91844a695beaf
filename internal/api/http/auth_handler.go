package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/service"
)

// AuthHandler serves login
type AuthHandler struct {
	authSvc service.AuthService
}

func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	User  *domain.Profile `json:"user"`
	Token string          `json:"token"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	if err := decodeBody(r, &body); err != nil {
		respondError(w, err)
		return
	}

	profile, token, err := h.authSvc.Login(r.Context(), body.Username, body.Password)
	if err != nil {
		// The two rejection messages are intentionally distinct; see the
		// service for the trade-off.
		switch {
		case errors.Is(err, service.ErrUnknownUsername):
			respondErrorMessage(w, err, "No member found with that username.")
		case errors.Is(err, service.ErrWrongPassword):
			respondErrorMessage(w, err, "Incorrect password. Try again.")
		default:
			respondError(w, err)
		}
		return
	}

	firstName := profile.Name
	if fields := strings.Fields(profile.Name); len(fields) > 0 {
		firstName = fields[0]
	}
	respondData(w, fmt.Sprintf("Welcome back, %s!", firstName), loginResponse{
		User:  profile,
		Token: token,
	})
}
