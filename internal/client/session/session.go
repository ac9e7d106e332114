// Package session owns the client-held authentication state: the Session
// record, the Store that persists it, and the rules for when the console
// counts as signed in.
package session

import (
	"github.com/Fredson-Santos/conekta-bots/internal/client/models"
)

// Session is the client's view of the authenticated user. User may be nil
// while Authenticated is true: the token arrives first and the profile is
// fetched afterwards, best-effort.
//
// Invariant: Authenticated is true exactly when AccessToken is non-empty.
// Store implementations enforce it on every mutation and on hydration.
type Session struct {
	User          *models.User
	AccessToken   string
	RefreshToken  string
	Authenticated bool
}

// Tokens returns the session's token pair.
func (s Session) Tokens() models.TokenPair {
	return models.TokenPair{AccessToken: s.AccessToken, RefreshToken: s.RefreshToken}
}
