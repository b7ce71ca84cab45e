// Package session holds the client-side authentication state: the current
// user, the bootstrap lifecycle, and the derived authenticated flag.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/devhub/internal/client/api"
	"github.com/dmitrijs2005/devhub/internal/client/localstore"
	"github.com/dmitrijs2005/devhub/internal/client/models"
	"github.com/dmitrijs2005/devhub/internal/logging"
)

// State names the phases of the session lifecycle.
type State string

const (
	StateUninitialized State = "uninitialized"
	StateBootstrapping State = "bootstrapping"
	StateAuthenticated State = "authenticated"
	StateAnonymous     State = "anonymous"
)

// ErrNotAuthenticated is returned by operations that require a signed-in
// user while the session is anonymous.
var ErrNotAuthenticated = errors.New("not authenticated")

// Session is the process-wide authentication state machine:
//
//	Uninitialized -> Bootstrapping -> Authenticated(user) | Anonymous
//
// IsAuthenticated is strictly derived from the cached user; there is no
// independently stored flag to fall out of sync.
type Session struct {
	mu     sync.Mutex
	client api.Client
	store  localstore.Store
	log    logging.Logger

	state State
	user  *models.User
}

// New returns an uninitialized session. Call Bootstrap before use.
func New(client api.Client, store localstore.Store, log logging.Logger) *Session {
	return &Session{
		client: client,
		store:  store,
		log:    log,
		state:  StateUninitialized,
	}
}

// Bootstrap restores the session from the persisted token. No token means
// Anonymous. A token that no longer validates against "current user" is
// deleted and the session is demoted to Anonymous; this is the only place a
// stale token is validated. The returned error reports local store trouble
// only, never a rejected token.
func (s *Session) Bootstrap(ctx context.Context) error {
	s.mu.Lock()
	s.state = StateBootstrapping
	s.user = nil
	s.mu.Unlock()

	token, err := localstore.Token(ctx, s.store)
	if err != nil {
		s.setAnonymous()
		return fmt.Errorf("failed to read persisted token: %w", err)
	}
	if token == "" {
		s.setAnonymous()
		return nil
	}

	user, err := s.client.CurrentUser(ctx)
	if err != nil {
		s.log.Warn(ctx, "stored token rejected, clearing it", "error", err)
		if err := s.client.Logout(ctx); err != nil {
			s.log.Error(ctx, "failed to clear rejected token", "error", err)
		}
		s.setAnonymous()
		return nil
	}

	s.mu.Lock()
	s.state = StateAuthenticated
	s.user = user
	s.mu.Unlock()

	s.log.Info(ctx, "session restored", "username", user.Username)
	return nil
}

// Login authenticates with the backend. On success the session becomes
// Authenticated; on failure it is left untouched and the error is
// propagated to the caller. No silent retry.
func (s *Session) Login(ctx context.Context, email, password string) (*models.User, error) {
	res, err := s.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.state = StateAuthenticated
	s.user = res.User
	s.mu.Unlock()

	return res.User, nil
}

// Register creates an account; same state contract as Login.
func (s *Session) Register(ctx context.Context, req api.RegisterRequest) (*models.User, error) {
	res, err := s.client.Register(ctx, req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.state = StateAuthenticated
	s.user = res.User
	s.mu.Unlock()

	return res.User, nil
}

// UpdateUser applies a partial profile update scoped to the current user.
// On success the cached user is replaced with the server's copy; on failure
// it is left unchanged and the error is propagated.
func (s *Session) UpdateUser(ctx context.Context, upd api.UserUpdate) (*models.User, error) {
	s.mu.Lock()
	current := s.user
	s.mu.Unlock()

	if current == nil {
		return nil, ErrNotAuthenticated
	}

	user, err := s.client.UpdateUser(ctx, current.ID, upd)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	// Replace only if still signed in as the same user.
	if s.user != nil && s.user.ID == user.ID {
		s.user = user
	}
	s.mu.Unlock()

	return user, nil
}

// Logout clears the persisted token and the cached user, transitioning to
// Anonymous. It is synchronous, idempotent, never touches the network, and
// always succeeds from the caller's point of view.
func (s *Session) Logout(ctx context.Context) {
	if err := s.client.Logout(ctx); err != nil {
		s.log.Error(ctx, "failed to clear local credentials", "error", err)
	}
	s.setAnonymous()
}

func (s *Session) setAnonymous() {
	s.mu.Lock()
	s.state = StateAnonymous
	s.user = nil
	s.mu.Unlock()
}

// User returns the cached current user, or nil when anonymous.
func (s *Session) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// IsAuthenticated reports whether a user is cached. Always derived, never
// stored.
func (s *Session) IsAuthenticated() bool {
	return s.User() != nil
}

// Loading reports whether bootstrap is still in flight.
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == StateBootstrapping
}

// State returns the current lifecycle phase.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
