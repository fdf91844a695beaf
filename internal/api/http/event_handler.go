package http

import (
	"errors"
	"net/http"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/service"
)

// EventHandler serves event listings and RSVP intake
type EventHandler struct {
	eventSvc service.EventService
}

func NewEventHandler(eventSvc service.EventService) *EventHandler {
	return &EventHandler{eventSvc: eventSvc}
}

func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.eventSvc.ListEvents(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	if events == nil {
		events = []domain.Event{}
	}
	respondData(w, "", events)
}

type rsvpRequest struct {
	EventID string `json:"eventId"`
	UserID  string `json:"userId"`
}

func (h *EventHandler) Rsvp(w http.ResponseWriter, r *http.Request) {
	var body rsvpRequest
	if err := decodeBody(r, &body); err != nil {
		respondError(w, err)
		return
	}

	rsvp, err := h.eventSvc.Rsvp(r.Context(), body.EventID, body.UserID)
	if err != nil {
		// Store faults surface as a retryable failure; the client owns the
		// retry.
		if errors.Is(err, domain.ErrStoreUnavailable) {
			respondErrorMessage(w, err, "Network error. Please retry.")
			return
		}
		respondError(w, err)
		return
	}

	respondCreated(w, "RSVP confirmed. See you there!", map[string]string{
		"rsvpId": rsvp.ID,
	})
}
