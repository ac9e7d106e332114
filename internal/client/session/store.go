package session

import (
	"context"

	"github.com/Fredson-Santos/conekta-bots/internal/client/models"
)

// Store is the single source of truth for the Session. Every mutating
// operation persists durably before it returns, so a restart immediately
// after any call observes the new state. There are no package-level
// instances: callers inject a Store so tests can run isolated ones.
type Store interface {
	// Hydrate loads the previously persisted session, if any. Missing or
	// malformed state yields the empty session; Hydrate never fails.
	Hydrate(ctx context.Context) Session

	// Read returns the current session snapshot. Never blocks on I/O.
	Read() Session

	// SetSession replaces the user and tokens in one step and marks the
	// session authenticated. Fails if tokens carry no access token.
	SetSession(ctx context.Context, user *models.User, tokens models.TokenPair) error

	// SetIdentity replaces only the user, leaving tokens and the
	// authenticated flag untouched.
	SetIdentity(ctx context.Context, user *models.User) error

	// SetTokens replaces only the token pair, keeping the user. Used when
	// a refresh rotates the pair mid-session.
	SetTokens(ctx context.Context, tokens models.TokenPair) error

	// Clear wipes user and tokens and persists the cleared record, so a
	// stale token cannot survive a later restart.
	Clear(ctx context.Context) error
}
