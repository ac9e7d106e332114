package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/Fredson-Santos/conekta-bots/internal/client/models"
	"github.com/Fredson-Santos/conekta-bots/internal/client/repositories/state"
	"github.com/Fredson-Santos/conekta-bots/internal/logging"
)

// StorageKey is the key the persisted session record lives under, kept
// identical to the record the browser console writes.
const StorageKey = "auth-storage"

// ErrEmptyAccessToken is returned by SetSession when the token pair has no
// access token; accepting it would produce an authenticated session
// without credentials.
var ErrEmptyAccessToken = errors.New("empty access token")

// persistedSession is the on-disk layout of the session record.
type persistedSession struct {
	User          *models.User `json:"user"`
	Token         string       `json:"token"`
	RefreshToken  string       `json:"refresh_token,omitempty"`
	Authenticated bool         `json:"isAuthenticated"`
}

// DurableStore is a Store backed by the local client_state repository.
// The repository write happens inside the same critical section as the
// in-memory swap, so Read after a completed mutation always sees the
// persisted value and never a half-applied one.
type DurableStore struct {
	repo state.Repository
	log  logging.Logger

	mu  sync.RWMutex
	cur Session
}

func NewDurableStore(repo state.Repository, log logging.Logger) *DurableStore {
	return &DurableStore{repo: repo, log: log.With("component", "session")}
}

// Hydrate loads the persisted record. Anything unreadable (missing row,
// undecodable JSON, storage error) degrades to the empty session; the
// authenticated flag is re-derived from the token so a corrupted record
// can never claim authentication without one.
func (s *DurableStore) Hydrate(ctx context.Context) Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cur = Session{}

	raw, err := s.repo.Get(ctx, StorageKey)
	if err != nil {
		s.log.Warn(ctx, "failed to read persisted session, starting empty", "error", err)
		return s.cur
	}
	if len(raw) == 0 {
		return s.cur
	}

	var p persistedSession
	if err := json.Unmarshal(raw, &p); err != nil {
		s.log.Warn(ctx, "malformed persisted session, starting empty", "error", err)
		return s.cur
	}

	s.cur = Session{
		User:          p.User,
		AccessToken:   p.Token,
		RefreshToken:  p.RefreshToken,
		Authenticated: p.Token != "",
	}
	return s.cur
}

func (s *DurableStore) Read() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}

// Tokens returns the current token pair. It exists so the API client can
// depend on a narrow credential view instead of the whole Store.
func (s *DurableStore) Tokens() models.TokenPair {
	return s.Read().Tokens()
}

func (s *DurableStore) SetSession(ctx context.Context, user *models.User, tokens models.TokenPair) error {
	if tokens.AccessToken == "" {
		return ErrEmptyAccessToken
	}

	next := Session{
		User:          user,
		AccessToken:   tokens.AccessToken,
		RefreshToken:  tokens.RefreshToken,
		Authenticated: true,
	}
	return s.replace(ctx, next)
}

func (s *DurableStore) SetIdentity(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.cur
	next.User = user
	return s.replaceLocked(ctx, next)
}

func (s *DurableStore) SetTokens(ctx context.Context, tokens models.TokenPair) error {
	if tokens.AccessToken == "" {
		return ErrEmptyAccessToken
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.cur
	next.AccessToken = tokens.AccessToken
	next.RefreshToken = tokens.RefreshToken
	next.Authenticated = true
	return s.replaceLocked(ctx, next)
}

func (s *DurableStore) Clear(ctx context.Context) error {
	return s.replace(ctx, Session{})
}

func (s *DurableStore) replace(ctx context.Context, next Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.replaceLocked(ctx, next)
}

// replaceLocked persists next and only then swaps the in-memory session.
// A failed write leaves the current session untouched, so memory never
// claims state that disk does not hold.
func (s *DurableStore) replaceLocked(ctx context.Context, next Session) error {
	raw, err := json.Marshal(persistedSession{
		User:          next.User,
		Token:         next.AccessToken,
		RefreshToken:  next.RefreshToken,
		Authenticated: next.Authenticated,
	})
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.repo.Set(ctx, StorageKey, raw); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	s.cur = next
	return nil
}
