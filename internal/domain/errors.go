package domain

import "errors"

var (
	// ErrInvalidInput marks a missing or malformed required field. Always a
	// client error.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound marks a referenced document id that does not resolve.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized marks a credential mismatch at login.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrAlreadyDecided marks a decision attempted on a request or interest
	// that has already left the pending state.
	ErrAlreadyDecided = errors.New("already decided")

	// ErrStoreUnavailable marks a transient backing-store fault. The server
	// never retries; the client decides.
	ErrStoreUnavailable = errors.New("store unavailable")
)
