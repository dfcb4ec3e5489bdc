package session

import (
	"context"
	"errors"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/me4war/meshwar-client/internal/models"
	"github.com/me4war/meshwar-client/internal/store"
)

var ErrLoginRejected = errors.New("login rejected")

// Authenticator is the slice of the account API the session needs.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*models.LoginResult, error)
}

// State is an atomic snapshot of the session. All derived fields change
// together; subscribers never observe a half-updated session.
type State struct {
	LoggedIn       bool
	VerifiedDriver bool
	User           *models.User
}

// Store holds the bearer token and the identity derived from it. Login,
// Logout and the restore-on-construction path are the only writers.
type Store struct {
	mu    sync.Mutex
	local *store.Local
	auth  Authenticator

	state   State
	token   string
	subs    map[int]chan State
	nextSub int
}

// NewStore builds a session over the local state store, restoring a persisted
// token from a previous run without a network call.
func NewStore(local *store.Local, auth Authenticator) *Store {
	s := &Store{
		local: local,
		auth:  auth,
		subs:  make(map[int]chan State),
	}
	if token, ok := local.Token(); ok && token != "" {
		s.token = token
		s.state = State{
			LoggedIn:       true,
			VerifiedDriver: local.VerifiedDriver(),
			User:           IdentityFromToken(token),
		}
	}
	return s
}

// Login calls the account endpoint and, on a response carrying a token,
// persists it and republishes the full session state before returning.
func (s *Store) Login(ctx context.Context, email, password string) error {
	result, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return err
	}
	if result == nil || result.Token == "" {
		return ErrLoginRejected
	}

	s.mu.Lock()
	if err := s.local.SetToken(result.Token); err != nil {
		log.WithError(err).Warn("failed to persist token")
	}
	if err := s.local.SetVerifiedDriver(result.IsVerifiedDriver); err != nil {
		log.WithError(err).Warn("failed to persist verified-driver flag")
	}
	s.token = result.Token
	s.state = State{
		LoggedIn:       true,
		VerifiedDriver: result.IsVerifiedDriver,
		User:           IdentityFromToken(result.Token),
	}
	s.publishLocked()
	s.mu.Unlock()
	return nil
}

// Logout clears persisted state and republishes false/false/nil synchronously.
func (s *Store) Logout() {
	s.mu.Lock()
	s.local.ClearSession()
	s.token = ""
	s.state = State{}
	s.publishLocked()
	s.mu.Unlock()
}

// IsLoggedIn reports whether a token is present.
func (s *Store) IsLoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.LoggedIn
}

// IsVerifiedDriver reports the verified-driver flag from the last login.
func (s *Store) IsVerifiedDriver() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.VerifiedDriver
}

// CurrentUser returns the identity derived from the token, nil when anonymous.
func (s *Store) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.User
}

// CurrentUserID returns the user id claim, "" when anonymous.
func (s *Store) CurrentUserID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return UserIDFromToken(s.token)
}

// IsAdmin reads the role claim from the current token.
func (s *Store) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return IsAdminToken(s.token)
}

// Token returns the bearer token for outgoing requests.
func (s *Store) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.token != ""
}

// Subscribe returns a channel of state snapshots and a cancel function. The
// current state is delivered immediately, then one snapshot per mutation.
func (s *Store) Subscribe() (<-chan State, func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	ch := make(chan State, 8)
	s.subs[id] = ch
	ch <- s.state
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		if sub, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(sub)
		}
		s.mu.Unlock()
	}
	return ch, cancel
}

func (s *Store) publishLocked() {
	for _, ch := range s.subs {
		select {
		case ch <- s.state:
		default:
			// Subscriber is not draining; drop rather than block the writer.
		}
	}
}
