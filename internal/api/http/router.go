package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Handlers groups the per-area handlers the router wires up
type Handlers struct {
	Auth       *AuthHandler
	Membership *MembershipHandler
	Member     *MemberHandler
	Project    *ProjectHandler
	Event      *EventHandler
	Dashboard  *DashboardHandler
}

// NewRouter builds the /api/v1 route table
func NewRouter(h Handlers) *mux.Router {
	router := mux.NewRouter()
	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/auth/login", h.Auth.Login).Methods(http.MethodPost)

	api.HandleFunc("/membership-requests", h.Membership.Submit).Methods(http.MethodPost)
	api.HandleFunc("/membership-requests", h.Membership.ListPending).Methods(http.MethodGet)
	api.HandleFunc("/membership-requests", h.Membership.Decide).Methods(http.MethodPatch)

	api.HandleFunc("/members/credentials", h.Member.UpdateCredentials).Methods(http.MethodPatch)
	api.HandleFunc("/leaderboard", h.Member.Leaderboard).Methods(http.MethodGet)

	api.HandleFunc("/projects", h.Project.List).Methods(http.MethodGet)
	api.HandleFunc("/project-interests", h.Project.RegisterInterest).Methods(http.MethodPost)
	api.HandleFunc("/project-interests", h.Project.ListPendingInterests).Methods(http.MethodGet)
	api.HandleFunc("/project-interests", h.Project.DecideInterest).Methods(http.MethodPatch)

	api.HandleFunc("/events", h.Event.List).Methods(http.MethodGet)
	api.HandleFunc("/event-rsvps", h.Event.Rsvp).Methods(http.MethodPost)

	api.HandleFunc("/sessions", h.Dashboard.ListSessions).Methods(http.MethodGet)
	api.HandleFunc("/dashboard", h.Dashboard.Get).Methods(http.MethodGet)
	api.HandleFunc("/client-config", h.Dashboard.ClientConfig).Methods(http.MethodGet)

	return router
}
