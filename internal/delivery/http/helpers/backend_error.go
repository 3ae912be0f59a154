package helpers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"booknest/internal/domain"
	"booknest/internal/session"
)

// LoginPath is the login screen path; 401 handling never redirects to it
// from itself, so a failed login cannot loop.
const LoginPath = "/auth/login"

// ForbiddenPath is the screen shown on a 403 from the backend.
const ForbiddenPath = "/403"

// HandleBackendError is the single place a backend failure becomes a
// response. A 401 tears down the session and sends the user to the login
// screen (browser navigation) or a 401 envelope (API callers) exactly once;
// a 403 goes to the forbidden screen; everything else maps onto the envelope
// codes with the backend's message when it supplied one.
func HandleBackendError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, store *session.Store, err error) {
	var apiErr *domain.APIError
	if !errors.As(err, &apiErr) {
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteJSONError(w, http.StatusInternalServerError, ErrCodeInternalError, domain.GenericErrorMessage)
		return
	}

	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		store.Clear(w)
		if IsBrowserNavigation(r) && r.URL.Path != LoginPath {
			RedirectToLogin(w, r)
			return
		}
		WriteJSONError(w, http.StatusUnauthorized, ErrCodeUnauthorized, apiErr.Message)
	case errors.Is(err, domain.ErrForbidden):
		if IsBrowserNavigation(r) {
			http.Redirect(w, r, ForbiddenPath, http.StatusSeeOther)
			return
		}
		WriteJSONError(w, http.StatusForbidden, ErrCodeForbidden, apiErr.Message)
	case errors.Is(err, domain.ErrNotFound):
		WriteJSONError(w, http.StatusNotFound, ErrCodeNotFound, apiErr.Message)
	case errors.Is(err, domain.ErrConflict):
		WriteJSONError(w, http.StatusConflict, ErrCodeConflict, apiErr.Message)
	case errors.Is(err, domain.ErrValidation):
		WriteJSONErrorDetails(w, http.StatusBadRequest, ErrCodeValidation, apiErr.Message, apiErr.Data)
	default:
		logger.ErrorContext(r.Context(), "backend error", "path", r.URL.Path, "method", r.Method, "status", apiErr.Status, "err", err)
		WriteJSONError(w, http.StatusBadGateway, ErrCodeInternalError, apiErr.Message)
	}
}

// RedirectToLogin sends the user to the login screen with a redirect
// parameter pointing back at the requested path.
func RedirectToLogin(w http.ResponseWriter, r *http.Request) {
	target := LoginPath
	if r.URL.Path != "" && r.URL.Path != LoginPath {
		target += "?redirect=" + url.QueryEscape(r.URL.RequestURI())
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// IsBrowserNavigation reports whether the request looks like a top-level
// browser navigation rather than a programmatic API call. Only those get
// redirects; API callers get the error envelope.
func IsBrowserNavigation(r *http.Request) bool {
	return r.Method == http.MethodGet && strings.Contains(r.Header.Get("Accept"), "text/html")
}
