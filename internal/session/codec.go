package session

import (
	"encoding/json"
	"errors"
	"net/url"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/content-gateway/internal/domain"
)

// TokenCodec seals the upstream bearer token inside a signed JWT before
// it is written to the credential cookie, so a tampered cookie reads as
// absent rather than as a forged credential.
type TokenCodec struct {
	secret []byte
}

// NewTokenCodec builds a codec over the shared cookie-signing secret.
func NewTokenCodec(secret string) *TokenCodec {
	return &TokenCodec{secret: []byte(secret)}
}

type tokenClaims struct {
	Token    string `json:"tok"`
	Remember bool   `json:"rem"`
	jwt.RegisteredClaims
}

// Seal wraps the bearer token. Remembered credentials carry an expiry
// matching the cookie TTL; session-scoped ones carry none.
func (tc *TokenCodec) Seal(token string, remember bool, ttl time.Duration) (string, error) {
	claims := &tokenClaims{
		Token:    token,
		Remember: remember,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	if remember && ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(ttl))
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tc.secret)
}

// Open validates a sealed value and returns the bearer token and the
// remember flag. Any parse or signature failure reads as absence.
func (tc *TokenCodec) Open(sealed string) (string, bool, bool) {
	parsed, err := jwt.ParseWithClaims(sealed, &tokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tc.secret, nil
	})
	if err != nil {
		return "", false, false
	}
	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || !parsed.Valid || claims.Token == "" {
		return "", false, false
	}
	return claims.Token, claims.Remember, true
}

// encodeProfile serializes a profile for cookie transport as
// URL-encoded JSON.
func encodeProfile(p *domain.Profile) (string, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return url.QueryEscape(string(raw)), nil
}

// decodeProfile reverses encodeProfile. A corrupt value returns
// ok=false and must be purged by the caller, never surfaced as an
// error.
func decodeProfile(value string) (*domain.Profile, bool) {
	raw, err := url.QueryUnescape(value)
	if err != nil {
		return nil, false
	}
	var p domain.Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, false
	}
	return &p, true
}
