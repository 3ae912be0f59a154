package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// The backend issues JWT access tokens. We never verify the signature here
// (only the backend holds the secret); the expiry claim is inspected as a
// UX hint so obviously stale sessions are dropped without a round-trip.

// TokenExpiry returns the token's exp claim, if present and parseable.
func TokenExpiry(token string) (time.Time, bool) {
	var claims jwt.RegisteredClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// TokenExpired reports whether the token carries an exp claim in the past.
// A token without an expiry, or one that cannot be parsed as a JWT at all,
// is not treated as expired; the backend has the final say.
func TokenExpired(token string, now time.Time) bool {
	exp, ok := TokenExpiry(token)
	if !ok {
		return false
	}
	return exp.Before(now)
}
