package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors forming the error taxonomy of the backend contract.
// Backend failures normalized by the API client unwrap to one of these,
// so callers can branch with errors.Is regardless of the exact status code.
var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrValidation      = errors.New("validation failed")
	ErrServer          = errors.New("server error")
)

// GenericErrorMessage is shown when the backend supplies no message of its own.
const GenericErrorMessage = "Une erreur est survenue"

// APIError is the normalized form of a non-2xx backend response.
// Message prefers the backend-supplied text; Data carries the raw decoded
// error body for callers that need field-level details.
type APIError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend: %d %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend: status %d", e.Status)
}

// Unwrap maps the HTTP status onto the sentinel taxonomy.
func (e *APIError) Unwrap() error {
	switch {
	case e.Status == 401:
		return ErrUnauthenticated
	case e.Status == 403:
		return ErrForbidden
	case e.Status == 404:
		return ErrNotFound
	case e.Status == 409:
		return ErrConflict
	case e.Status == 400 || e.Status == 422:
		return ErrValidation
	case e.Status >= 500:
		return ErrServer
	}
	return nil
}

// NewAPIError builds an APIError, falling back to the generic message when
// the backend supplied none.
func NewAPIError(status int, message string, data any) *APIError {
	if message == "" {
		message = GenericErrorMessage
	}
	return &APIError{Status: status, Message: message, Data: data}
}
