package middleware

import (
	"net/http"

	"booknest/internal/delivery/http/helpers"
	"booknest/internal/session"
)

// WithSession attaches the request's session (if any) to the context so the
// backend client can pick up the bearer token. It never rejects; guards do.
func WithSession(store *session.Store, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sess, ok := store.FromRequest(r); ok {
			r = r.WithContext(session.WithSession(r.Context(), sess))
		}
		next.ServeHTTP(w, r)
	})
}

// RequireSession returns a wrapper that rejects unauthenticated requests.
// Browser navigation is sent to the login screen with a redirect parameter;
// API callers get a 401 envelope.
func RequireSession() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if _, ok := session.FromContext(r.Context()); !ok {
				if helpers.IsBrowserNavigation(r) {
					helpers.RedirectToLogin(w, r)
					return
				}
				helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "authentication required")
				return
			}
			next(w, r)
		}
	}
}

// RequireAdmin returns a wrapper that rejects requests whose session user
// cannot moderate. This mirrors backend authorization for route gating; the
// backend still enforces it on every call.
func RequireAdmin() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			user, ok := session.UserFromContext(r.Context())
			if !ok {
				if helpers.IsBrowserNavigation(r) {
					helpers.RedirectToLogin(w, r)
					return
				}
				helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "authentication required")
				return
			}
			if !user.Role.CanModerate() {
				if helpers.IsBrowserNavigation(r) {
					http.Redirect(w, r, helpers.ForbiddenPath, http.StatusSeeOther)
					return
				}
				helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "forbidden")
				return
			}
			next(w, r)
		}
	}
}
