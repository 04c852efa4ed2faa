package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Level grades a toast.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Toast is one user-visible notification. Toasts auto-dismiss once
// their TTL elapses unless dismissed explicitly first.
type Toast struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Level       Level     `json:"level"`
	CreatedAt   time.Time `json:"created_at"`
}

// Store keeps pending toasts per session key. Expiry is evaluated
// lazily on read against the injected clock.
type Store struct {
	mu     sync.Mutex
	ttl    time.Duration
	now    func() time.Time
	queues map[string][]Toast
}

// NewStore builds a Store with the given auto-dismiss TTL.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 5 * time.Second
	}
	return &Store{
		ttl:    ttl,
		now:    time.Now,
		queues: make(map[string][]Toast),
	}
}

// WithClock overrides the time source. Test hook.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// Push queues a toast for the session key and returns it.
func (s *Store) Push(key, title, description string, level Level) Toast {
	toast := Toast{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Level:       level,
		CreatedAt:   s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.queues[key] = append(s.queues[key], toast)
	return toast
}

// List returns the session's live toasts, dropping expired ones.
func (s *Store) List(key string) []Toast {
	s.mu.Lock()
	defer s.mu.Unlock()

	live := s.prune(key)
	out := make([]Toast, len(live))
	copy(out, live)
	return out
}

// Dismiss removes one toast by id and reports whether it existed.
func (s *Store) Dismiss(key, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	live := s.prune(key)
	for i, toast := range live {
		if toast.ID == id {
			s.queues[key] = append(live[:i:i], live[i+1:]...)
			return true
		}
	}
	return false
}

// prune drops expired toasts for key and returns the survivors.
// Caller holds the lock.
func (s *Store) prune(key string) []Toast {
	deadline := s.now().Add(-s.ttl)
	queue := s.queues[key]
	live := queue[:0]
	for _, toast := range queue {
		if toast.CreatedAt.After(deadline) {
			live = append(live, toast)
		}
	}
	if len(live) == 0 {
		delete(s.queues, key)
		return nil
	}
	s.queues[key] = live
	return live
}
