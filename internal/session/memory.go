package session

import (
	"time"

	"github.com/spec-kit/content-gateway/internal/domain"
)

// Memory is an in-process Credentials implementation. It backs tests
// and any caller without a cookie jar, and runs the sealed-token and
// profile codecs exactly as the cookie implementation does, so
// corruption handling is exercised the same way.
type Memory struct {
	codec   *TokenCodec
	ttl     time.Duration
	entries map[string]string
}

const (
	memTokenKey    = "token"
	memRememberKey = "remember"
	memUserKey     = "user"
)

// NewMemory builds an empty in-process credential store.
func NewMemory(codec *TokenCodec, rememberTTL time.Duration) *Memory {
	return &Memory{codec: codec, ttl: rememberTTL, entries: make(map[string]string)}
}

// Token returns the stored bearer token, purging a corrupt entry.
func (m *Memory) Token() (string, bool) {
	sealed, ok := m.entries[memTokenKey]
	if !ok {
		return "", false
	}
	token, _, valid := m.codec.Open(sealed)
	if !valid {
		delete(m.entries, memTokenKey)
		return "", false
	}
	return token, true
}

// Remember reports the stored remember preference.
func (m *Memory) Remember() bool {
	return m.entries[memRememberKey] == "true"
}

// User returns the stored profile, purging a corrupt entry.
func (m *Memory) User() (*domain.Profile, bool) {
	value, ok := m.entries[memUserKey]
	if !ok {
		return nil, false
	}
	profile, valid := decodeProfile(value)
	if !valid {
		delete(m.entries, memUserKey)
		return nil, false
	}
	return profile, true
}

// SetToken seals and stores the token together with the remember flag.
func (m *Memory) SetToken(token string, remember bool) error {
	sealed, err := m.codec.Seal(token, remember, m.ttl)
	if err != nil {
		return err
	}
	m.entries[memTokenKey] = sealed
	if remember {
		m.entries[memRememberKey] = "true"
	} else {
		m.entries[memRememberKey] = "false"
	}
	return nil
}

// SetUser stores the serialized profile.
func (m *Memory) SetUser(user *domain.Profile, _ bool) error {
	encoded, err := encodeProfile(user)
	if err != nil {
		return err
	}
	m.entries[memUserKey] = encoded
	return nil
}

// Clear removes every entry.
func (m *Memory) Clear() error {
	m.entries = make(map[string]string)
	return nil
}

// Corrupt overwrites an entry with garbage. Test helper.
func (m *Memory) Corrupt(key string) {
	m.entries[key] = "%%%not-decodable%%%"
}

// Has reports whether an entry is present. Test helper.
func (m *Memory) Has(key string) bool {
	_, ok := m.entries[key]
	return ok
}
