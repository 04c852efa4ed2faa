package session

import (
	"errors"
	"sync"

	"github.com/spec-kit/content-gateway/internal/domain"
)

// ErrNoToken is returned when a profile would be attached to a session
// that holds no bearer token.
var ErrNoToken = errors.New("session: no token present")

// Record is a point-in-time snapshot of the session state.
// IsAuthenticated holds exactly when Token is non-empty; User may lag
// behind Token while the profile is still being fetched, but is never
// present without it.
type Record struct {
	User            *domain.Profile
	Token           string
	IsAuthenticated bool
	IsLoading       bool
}

// Credentials is the durable counterpart of the session state. The
// cookie-backed implementation lives in this package; tests use Memory.
type Credentials interface {
	// Token returns the persisted bearer token, if any. A corrupt
	// entry reads as absent and is purged by the implementation.
	Token() (string, bool)
	// Remember reports the persisted remember preference.
	Remember() bool
	// User returns the persisted profile, if any. Corrupt entries read
	// as absent and are purged.
	User() (*domain.Profile, bool)
	SetToken(token string, remember bool) error
	SetUser(user *domain.Profile, remember bool) error
	Clear() error
}

// Store is the authoritative holder of one session's auth state.
// Instances are constructed per request or per test; there is no
// process-wide singleton. Durable writes happen synchronously within
// each mutator, and their failures are returned to the caller.
type Store struct {
	mu    sync.Mutex
	creds Credentials
	state Record
}

// New builds an empty Store over the given credential storage.
func New(creds Credentials) *Store {
	return &Store{creds: creds}
}

// Login persists the token and profile, then swaps the in-memory state
// in one step. The remember flag decides the credential expiry.
func (s *Store) Login(user *domain.Profile, token string, remember bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.creds.SetToken(token, remember); err != nil {
		return err
	}
	if user != nil {
		if err := s.creds.SetUser(user, remember); err != nil {
			return err
		}
	}
	s.state = Record{User: user, Token: token, IsAuthenticated: token != ""}
	return nil
}

// SetToken persists the token alone. Used when a token is obtained
// before the profile has been fetched; the existing profile attribute
// is left untouched.
func (s *Store) SetToken(token string, remember bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.creds.SetToken(token, remember); err != nil {
		return err
	}
	s.state.Token = token
	s.state.IsAuthenticated = token != ""
	if token == "" {
		s.state.User = nil
	}
	return nil
}

// SetUser replaces the profile attribute. It refuses to attach a
// profile to a tokenless session, preserving the invariant that a user
// is never present without a token.
func (s *Store) SetUser(user *domain.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user != nil && s.state.Token == "" {
		return ErrNoToken
	}
	if user != nil {
		if err := s.creds.SetUser(user, s.creds.Remember()); err != nil {
			return err
		}
	}
	s.state.User = user
	return nil
}

// Initialize rehydrates the token from persisted storage. The profile
// is deliberately left empty; callers fetch it separately, and must
// tolerate the transient authenticated-without-user window.
func (s *Store) Initialize() {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, ok := s.creds.Token()
	if !ok || token == "" {
		s.state = Record{IsLoading: s.state.IsLoading}
		return
	}
	s.state.Token = token
	s.state.IsAuthenticated = true
}

// Logout purges every persisted credential entry and resets the state.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.creds.Clear(); err != nil {
		return err
	}
	s.state = Record{}
	return nil
}

// SetLoading flips the transient loading flag gating guard evaluation.
func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.IsLoading = loading
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
