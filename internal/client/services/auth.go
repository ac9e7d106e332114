// Package services contains the application services of the console. This
// file holds the authentication service: the orchestration between the
// API boundary and the credential store for login, registration, identity
// refresh, and logout.
package services

import (
	"context"
	"errors"

	"github.com/Fredson-Santos/conekta-bots/internal/client/api"
	"github.com/Fredson-Santos/conekta-bots/internal/client/session"
	"github.com/Fredson-Santos/conekta-bots/internal/logging"
)

// ErrNoToken is returned when a login succeeds at the HTTP level but the
// response carries no access token; the session stays anonymous.
var ErrNoToken = errors.New("login response carried no token")

// AuthService wires the API client and the credential store together.
//
// Contract:
//   - Login: exchange credentials, persist the session, then fetch the
//     profile best-effort.
//   - Register: create an account; never mutates the session.
//   - RefreshIdentity: refetch and store the profile.
//   - Logout: clear the persisted session.
type AuthService struct {
	client api.Client
	store  session.Store
	log    logging.Logger
}

func NewAuthService(client api.Client, store session.Store, log logging.Logger) *AuthService {
	return &AuthService{client: client, store: store, log: log.With("component", "auth")}
}

// Login authenticates against the backend and persists the resulting
// session before returning, so the gate's next evaluation already sees
// the authenticated state. When the login payload has no inlined user,
// the profile is fetched afterwards; a failure there is logged and
// swallowed — the session stays authenticated with an absent identity
// and the profile is refetched later.
func (a *AuthService) Login(ctx context.Context, email, password string) error {
	res, err := a.client.Login(ctx, email, password)
	if err != nil {
		return err
	}
	if res.Tokens.AccessToken == "" {
		return ErrNoToken
	}

	if err := a.store.SetSession(ctx, res.User, res.Tokens); err != nil {
		return err
	}
	a.log.Info(ctx, "logged in", "email", email)

	if res.User == nil {
		user, err := a.client.CurrentUser(ctx)
		if err != nil {
			a.log.Warn(ctx, "identity fetch after login failed", "error", err)
			return nil
		}
		if err := a.store.SetIdentity(ctx, user); err != nil {
			a.log.Warn(ctx, "failed to persist identity", "error", err)
		}
	}
	return nil
}

// Register creates a new account. The backend returns the created profile
// without tokens, so the caller still has to log in afterwards.
func (a *AuthService) Register(ctx context.Context, email, password string) error {
	return a.client.Register(ctx, email, password)
}

// RefreshIdentity refetches the profile behind the current token and
// stores it.
func (a *AuthService) RefreshIdentity(ctx context.Context) error {
	user, err := a.client.CurrentUser(ctx)
	if err != nil {
		return err
	}
	return a.store.SetIdentity(ctx, user)
}

// Logout clears the persisted session. The backend keeps no server-side
// session for the console, so this is purely a local operation.
func (a *AuthService) Logout(ctx context.Context) error {
	if err := a.store.Clear(ctx); err != nil {
		return err
	}
	a.log.Info(ctx, "logged out")
	return nil
}
