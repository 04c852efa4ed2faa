package registry

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/content-gateway/internal/domain"
)

const sessionPrefix = "sessions:"

// ErrNotFound signals that no active session exists for the token.
var ErrNotFound = errors.New("session not found")

// Registry records active sessions in Redis, keyed by a fingerprint of
// the bearer token. Login writes an entry, logout deletes it, and the
// session middleware reads it to rehydrate profiles without a fresh
// upstream fetch.
type Registry struct {
	client      *redis.Client
	sessionTTL  time.Duration
	rememberTTL time.Duration
}

type entry struct {
	Profile  *domain.Profile `json:"profile"`
	Remember bool            `json:"remember"`
	SavedAt  time.Time       `json:"saved_at"`
}

// New builds a Registry. sessionTTL bounds non-remembered sessions;
// rememberDays bounds remembered ones.
func New(client *redis.Client, sessionTTL time.Duration, rememberDays int) *Registry {
	if sessionTTL <= 0 {
		sessionTTL = 12 * time.Hour
	}
	if rememberDays <= 0 {
		rememberDays = 30
	}
	return &Registry{
		client:      client,
		sessionTTL:  sessionTTL,
		rememberTTL: time.Duration(rememberDays) * 24 * time.Hour,
	}
}

// Fingerprint derives the storage key component for a bearer token.
// The raw token never reaches Redis.
func Fingerprint(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// Put records an active session for the token.
func (r *Registry) Put(ctx context.Context, token string, profile *domain.Profile, remember bool) error {
	if r == nil || r.client == nil {
		return errors.New("registry not configured")
	}
	if token == "" {
		return errors.New("empty token")
	}

	payload, err := json.Marshal(entry{Profile: profile, Remember: remember, SavedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("marshal session entry: %w", err)
	}

	ttl := r.sessionTTL
	if remember {
		ttl = r.rememberTTL
	}
	if err := r.client.Set(ctx, sessionPrefix+Fingerprint(token), payload, ttl).Err(); err != nil {
		return fmt.Errorf("store session entry: %w", err)
	}
	return nil
}

// Lookup returns the profile recorded for the token, or ErrNotFound.
func (r *Registry) Lookup(ctx context.Context, token string) (*domain.Profile, error) {
	if r == nil || r.client == nil {
		return nil, ErrNotFound
	}

	raw, err := r.client.Get(ctx, sessionPrefix+Fingerprint(token)).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session entry: %w", err)
	}

	var e entry
	if err := json.Unmarshal(raw, &e); err != nil {
		// Unreadable entries are dropped, matching the credential
		// store's corruption policy.
		_ = r.client.Del(ctx, sessionPrefix+Fingerprint(token)).Err()
		return nil, ErrNotFound
	}
	if e.Profile == nil {
		return nil, ErrNotFound
	}
	return e.Profile, nil
}

// Delete removes the session entry for the token. Deleting a missing
// entry is not an error.
func (r *Registry) Delete(ctx context.Context, token string) error {
	if r == nil || r.client == nil {
		return nil
	}
	if err := r.client.Del(ctx, sessionPrefix+Fingerprint(token)).Err(); err != nil {
		return fmt.Errorf("delete session entry: %w", err)
	}
	return nil
}
