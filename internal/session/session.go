// Package session owns the authenticated/unauthenticated state machine.
//
// The session constructs the API client with itself as the event sink, so a
// refresh performed deep inside the client is mirrored here, and a failed
// refresh anywhere in the program forces this state machine to Unauthenticated.
package session

import (
	"context"
	"log/slog"
	"sync"

	"taskboard/internal/api"
	"taskboard/internal/authstore"
	"taskboard/internal/config"
)

// State is the session lifecycle state.
type State int

const (
	// StateInitializing is the state before Bootstrap has run.
	StateInitializing State = iota

	// StateAuthenticated means a refresh token is held.
	StateAuthenticated

	// StateUnauthenticated means no usable session exists.
	StateUnauthenticated
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	}
	return "unknown"
}

// Session is the session owner. All methods are safe for concurrent use;
// the API client invokes the event callbacks from request goroutines.
type Session struct {
	store  *authstore.Store
	client *api.Client
	log    *slog.Logger

	mu     sync.Mutex
	state  State
	tokens api.Tokens
	email  string
}

// New creates a Session in the Initializing state. The session wires itself
// into the API client as the event sink.
func New(cfg *config.Config, store *authstore.Store, log *slog.Logger) *Session {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	s := &Session{
		store: store,
		log:   log,
		state: StateInitializing,
	}
	s.client = api.New(cfg, store, s, log)
	return s
}

// Client returns the API client bound to this session.
func (s *Session) Client() *api.Client {
	return s.client
}

// Bootstrap resolves Initializing. If a refresh token is persisted, one bare
// refresh call is made (bypassing the retry interceptor); success yields
// Authenticated with the new access token and the stored refresh token.
// No refresh token, or a failed call, yields Unauthenticated.
func (s *Session) Bootstrap(ctx context.Context) {
	refresh := s.store.Refresh()
	if refresh == "" {
		s.setUnauthenticated()
		return
	}

	access, err := s.client.Refresh(ctx, refresh)
	if err != nil {
		s.log.Debug("bootstrap refresh failed", slog.String("err", err.Error()))
		s.store.Clear()
		s.setUnauthenticated()
		return
	}

	s.store.SetAccess(access)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateAuthenticated
	s.tokens = api.Tokens{Access: access, Refresh: refresh}
	s.email = s.store.Email()
}

// Login authenticates with an email or username. All failures, credential or
// transport alike, collapse to false; callers surface a generic message.
func (s *Session) Login(ctx context.Context, identifier, password string) bool {
	tokens, err := s.client.Login(ctx, identifier, password)
	if err != nil {
		s.log.Debug("login failed", slog.String("err", err.Error()))
		return false
	}

	s.store.SetTokens(tokens.Access, tokens.Refresh)
	s.store.SetEmail(identifier)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateAuthenticated
	s.tokens = tokens
	s.email = identifier
	return true
}

// Register creates an account and then logs in with the new username and
// password. Registration alone never authenticates.
func (s *Session) Register(ctx context.Context, email, username, password, password2 string) bool {
	if err := s.client.Register(ctx, email, username, password, password2); err != nil {
		s.log.Debug("register failed", slog.String("err", err.Error()))
		return false
	}
	return s.Login(ctx, username, password)
}

// Logout clears tokens and identity and transitions to Unauthenticated.
func (s *Session) Logout() {
	s.store.Clear()
	s.store.SetEmail("")
	s.setUnauthenticated()
}

// LoggedOut implements api.SessionEvents. Token storage has already been
// cleared by the client; only the in-memory state transitions here.
func (s *Session) LoggedOut() {
	s.setUnauthenticated()
}

// AccessTokenUpdated implements api.SessionEvents. The access token is
// updated in place; there is no state transition.
func (s *Session) AccessTokenUpdated(access string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens.Access = access
	if s.tokens.Refresh == "" {
		s.tokens.Refresh = s.store.Refresh()
	}
}

// State returns the current session state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// IsAuthenticated reports whether a refresh token is held.
func (s *Session) IsAuthenticated() bool {
	return s.State() == StateAuthenticated
}

// Email returns the identity associated with the session, or "".
func (s *Session) Email() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.email
}

// Tokens returns the current token pair.
func (s *Session) Tokens() api.Tokens {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokens
}

func (s *Session) setUnauthenticated() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateUnauthenticated
	s.tokens = api.Tokens{}
	s.email = ""
}
