// Package session owns the bearer-token lifecycle: one process-wide
// token set on login, read by every outbound call, and cleared on
// logout or detected expiry. No other component keeps its own copy.
package session

import (
	"log/slog"
	"sync"

	"github.com/foreskyapp/foresky-cli/internal/errors"
)

// State is the authentication state of the process.
type State string

// Session states.
const (
	StateAnonymous     State = "anonymous"
	StateAuthenticated State = "authenticated"
)

// Reason says why a state transition happened. Subscribers use it to
// tell a detected expiry apart from an explicit logout.
type Reason string

// Transition reasons.
const (
	ReasonLogin   Reason = "login"
	ReasonLogout  Reason = "logout"
	ReasonExpired Reason = "expired"
)

// TokenStore persists the token between runs. Implemented by state.Store.
type TokenStore interface {
	Token() string
	SetToken(token string) error
	ClearToken() error
}

// Manager holds the session token and enforces the teardown contract:
// a single forced logout per detected expiry, observable by subscribers.
type Manager struct {
	mu     sync.RWMutex
	token  string
	store  TokenStore
	logger *slog.Logger
	subs   []func(State, Reason)
}

// NewManager creates a manager seeded from the persisted token, so a
// restart resumes the previous session until the server says otherwise.
func NewManager(store TokenStore, logger *slog.Logger) *Manager {
	return &Manager{
		token:  store.Token(),
		store:  store,
		logger: logger,
	}
}

// State returns the current session state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.token == "" {
		return StateAnonymous
	}
	return StateAuthenticated
}

// Token returns the current bearer token, or "" when anonymous. The
// gateway consults this on every outbound call.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// Subscribe registers fn to be called on every state transition.
// Subscribers run outside the manager's lock.
func (m *Manager) Subscribe(fn func(State, Reason)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs = append(m.subs, fn)
}

// Login stores the token in memory and on disk and announces the
// transition to Authenticated.
func (m *Manager) Login(token string) error {
	m.mu.Lock()
	m.token = token
	subs := m.subscribers()
	m.mu.Unlock()

	if err := m.store.SetToken(token); err != nil {
		return err
	}
	notify(subs, StateAuthenticated, ReasonLogin)
	return nil
}

// Logout clears the token and announces the transition to Anonymous.
// Logging out while anonymous is a no-op.
func (m *Manager) Logout() error {
	subs, torn := m.teardown()
	if !torn {
		return nil
	}
	if err := m.store.ClearToken(); err != nil {
		return err
	}
	notify(subs, StateAnonymous, ReasonLogout)
	return nil
}

// HandleAuthFailure inspects a failed call's error. An expired or
// invalid token tears the session down; any other failure (including an
// unverified account) is left for the caller to surface. Repeated
// identical failures tear down at most once.
func (m *Manager) HandleAuthFailure(err error) {
	if !errors.Is(err, errors.ErrTokenExpired) {
		return
	}

	subs, torn := m.teardown()
	if !torn {
		return // already anonymous, nothing to repeat
	}

	m.logger.Info("session expired, signing out")
	if clearErr := m.store.ClearToken(); clearErr != nil {
		m.logger.Warn("failed to clear persisted token", "error", clearErr)
	}
	notify(subs, StateAnonymous, ReasonExpired)
}

// teardown clears the in-memory token. It reports false when the
// session was already anonymous, which is what makes forced logout
// idempotent under racing failures.
func (m *Manager) teardown() ([]func(State, Reason), bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.token == "" {
		return nil, false
	}
	m.token = ""
	return m.subscribers(), true
}

func (m *Manager) subscribers() []func(State, Reason) {
	subs := make([]func(State, Reason), len(m.subs))
	copy(subs, m.subs)
	return subs
}

func notify(subs []func(State, Reason), s State, r Reason) {
	for _, fn := range subs {
		fn(s, r)
	}
}
