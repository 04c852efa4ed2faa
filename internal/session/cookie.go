package session

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/content-gateway/internal/config"
	"github.com/spec-kit/content-gateway/internal/domain"
)

// CookieCredentials persists the three credential entries (sealed
// bearer token, remember flag, URL-encoded profile) as cookies on one
// request/response pair.
type CookieCredentials struct {
	ctx   *fiber.Ctx
	cfg   config.SessionConfig
	codec *TokenCodec
}

// NewCookieCredentials binds credential storage to a single request.
func NewCookieCredentials(c *fiber.Ctx, cfg config.SessionConfig, codec *TokenCodec) *CookieCredentials {
	return &CookieCredentials{ctx: c, cfg: cfg, codec: codec}
}

func (cc *CookieCredentials) rememberTTL() time.Duration {
	days := cc.cfg.RememberDays
	if days <= 0 {
		days = 30
	}
	return time.Duration(days) * 24 * time.Hour
}

// Token reads the sealed token cookie. Corrupt or tampered values are
// purged and read as absent.
func (cc *CookieCredentials) Token() (string, bool) {
	sealed := cc.ctx.Cookies(cc.cfg.TokenCookie)
	if sealed == "" {
		return "", false
	}
	token, _, ok := cc.codec.Open(sealed)
	if !ok {
		cc.purge(cc.cfg.TokenCookie)
		return "", false
	}
	return token, true
}

// Remember reports the persisted remember preference.
func (cc *CookieCredentials) Remember() bool {
	return cc.ctx.Cookies(cc.cfg.RememberCookie) == "true"
}

// User reads the profile cookie. Corrupt values are purged and read as
// absent.
func (cc *CookieCredentials) User() (*domain.Profile, bool) {
	value := cc.ctx.Cookies(cc.cfg.UserCookie)
	if value == "" {
		return nil, false
	}
	profile, ok := decodeProfile(value)
	if !ok {
		cc.purge(cc.cfg.UserCookie)
		return nil, false
	}
	return profile, true
}

// SetToken writes the sealed token and remember cookies. Remembered
// credentials get a days-based expiry; otherwise the cookies are
// session-scoped.
func (cc *CookieCredentials) SetToken(token string, remember bool) error {
	ttl := cc.rememberTTL()
	sealed, err := cc.codec.Seal(token, remember, ttl)
	if err != nil {
		return err
	}
	cc.write(cc.cfg.TokenCookie, sealed, remember, ttl)
	if remember {
		cc.write(cc.cfg.RememberCookie, "true", true, ttl)
	} else {
		cc.write(cc.cfg.RememberCookie, "false", false, 0)
	}
	return nil
}

// SetUser writes the URL-encoded profile cookie.
func (cc *CookieCredentials) SetUser(user *domain.Profile, remember bool) error {
	encoded, err := encodeProfile(user)
	if err != nil {
		return err
	}
	cc.write(cc.cfg.UserCookie, encoded, remember, cc.rememberTTL())
	return nil
}

// Clear purges all three credential cookies.
func (cc *CookieCredentials) Clear() error {
	cc.purge(cc.cfg.TokenCookie)
	cc.purge(cc.cfg.RememberCookie)
	cc.purge(cc.cfg.UserCookie)
	return nil
}

func (cc *CookieCredentials) write(name, value string, persistent bool, ttl time.Duration) {
	cookie := &fiber.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HTTPOnly: true,
		Secure:   cc.cfg.SecureCookies,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
	if persistent && ttl > 0 {
		cookie.Expires = time.Now().Add(ttl)
	}
	cc.ctx.Cookie(cookie)
}

func (cc *CookieCredentials) purge(name string) {
	cc.ctx.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   cc.cfg.SecureCookies,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(-time.Hour),
	})
}
