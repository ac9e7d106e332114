package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenExpired reports whether raw is a JWT whose exp claim has passed.
// The token is parsed without signature verification: the claim only
// schedules a refresh ahead of a call, the server remains the authority
// on token validity.
func tokenExpired(raw string, now time.Time) bool {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(raw, &claims); err != nil {
		// opaque tokens carry no schedule; send them as-is
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(now)
}
