// Package session is the explicit session store for the web tier: the access
// token issued by the backend plus a cached copy of the user, persisted in a
// cookie with a defined lifecycle (saved on login/register, refreshed when
// the profile is re-validated, cleared on logout or any 401).
package session

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"booknest/internal/domain"
)

// CookieName is the fixed cookie under which the session is persisted.
const CookieName = "booknest_session"

// Session is the authenticated state carried between requests. The token is
// the credential (verified by the backend on every call); the cached user is
// a rendering hint only and never a substitute for backend authorization.
type Session struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// Store reads and writes sessions on the request/response cookie.
type Store struct {
	secure bool
	now    func() time.Time
}

// NewStore returns a Store. secure controls the cookie Secure attribute.
func NewStore(secure bool) *Store {
	return &Store{secure: secure, now: time.Now}
}

// FromRequest decodes the session cookie. A missing or malformed cookie, or
// one whose token has already expired, yields (nil, false).
func (s *Store) FromRequest(r *http.Request) (*Session, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil, false
	}
	raw, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil, false
	}
	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil || sess.Token == "" {
		return nil, false
	}
	if TokenExpired(sess.Token, s.now()) {
		return nil, false
	}
	return &sess, true
}

// Save writes the session cookie. The cookie lives until the token expires,
// falling back to a day when the token carries no expiry claim.
func (s *Store) Save(w http.ResponseWriter, sess *Session) {
	raw, err := json.Marshal(sess)
	if err != nil {
		return
	}
	maxAge := int((24 * time.Hour).Seconds())
	if exp, ok := TokenExpiry(sess.Token); ok {
		if d := exp.Sub(s.now()); d > 0 {
			maxAge = int(d.Seconds())
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    base64.RawURLEncoding.EncodeToString(raw),
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear removes the session cookie.
func (s *Store) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

type contextKey string

const sessionKey contextKey = "session"

// WithSession returns a context carrying the session. Used by the session middleware.
func WithSession(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

// FromContext returns the session attached to the context, if any.
func FromContext(ctx context.Context) (*Session, bool) {
	sess, ok := ctx.Value(sessionKey).(*Session)
	return sess, ok && sess != nil
}

// TokenFromContext returns the bearer token of the context's session.
func TokenFromContext(ctx context.Context) (string, bool) {
	sess, ok := FromContext(ctx)
	if !ok || sess.Token == "" {
		return "", false
	}
	return sess.Token, true
}

// UserFromContext returns the cached user of the context's session.
func UserFromContext(ctx context.Context) (*domain.User, bool) {
	sess, ok := FromContext(ctx)
	if !ok || sess.User == nil {
		return nil, false
	}
	return sess.User, true
}
