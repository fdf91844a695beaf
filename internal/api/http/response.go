package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/logger"
)

// envelope is the JSON shape of every response: {ok, message, data}.
type envelope struct {
	OK      bool        `json:"ok"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func respondData(w http.ResponseWriter, message string, data interface{}) {
	writeJSON(w, http.StatusOK, envelope{OK: true, Message: message, Data: data})
}

func respondCreated(w http.ResponseWriter, message string, data interface{}) {
	writeJSON(w, http.StatusCreated, envelope{OK: true, Message: message, Data: data})
}

// respondError maps the domain error taxonomy onto HTTP status codes and
// surfaces the error text as the human-readable message.
func respondError(w http.ResponseWriter, err error) {
	respondErrorMessage(w, err, err.Error())
}

func respondErrorMessage(w http.ResponseWriter, err error, message string) {
	writeJSON(w, statusForError(err), envelope{OK: false, Message: message})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrAlreadyDecided):
		return http.StatusConflict
	case errors.Is(err, domain.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// decodeBody parses a JSON request body, rejecting unknown fields so
// misspelled payloads fail loudly instead of silently dropping data.
func decodeBody(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: malformed request body", domain.ErrInvalidInput)
	}
	return nil
}
