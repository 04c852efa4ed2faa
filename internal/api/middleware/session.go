package middleware

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/content-gateway/internal/config"
	"github.com/spec-kit/content-gateway/internal/session"
	"github.com/spec-kit/content-gateway/internal/session/registry"
)

const sessionKey = "session_store"

// Session rehydrates a per-request session store from the credential
// cookies. When the token is present but the profile is not, the
// profile is restored from the profile cookie, then from the session
// registry; failing both, the request proceeds through the
// authenticated-without-user window and handlers fetch the profile
// upstream.
func Session(cfg config.SessionConfig, codec *session.TokenCodec, reg *registry.Registry, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		creds := session.NewCookieCredentials(c, cfg, codec)
		store := session.New(creds)
		store.Initialize()

		snap := store.Snapshot()
		if snap.IsAuthenticated && snap.User == nil {
			if user, ok := creds.User(); ok {
				if err := store.SetUser(user); err != nil {
					logger.Warn("restore profile from cookie", zap.Error(err))
				}
			} else if reg != nil {
				user, err := reg.Lookup(c.UserContext(), snap.Token)
				switch {
				case err == nil:
					if err := store.SetUser(user); err != nil {
						logger.Warn("restore profile from registry", zap.Error(err))
					}
				case err != registry.ErrNotFound:
					logger.Warn("session registry lookup", zap.Error(err))
				}
			}
		}

		c.Locals(sessionKey, store)
		return c.Next()
	}
}

// SessionFromContext retrieves the request's session store.
func SessionFromContext(c *fiber.Ctx) (*session.Store, bool) {
	store, ok := c.Locals(sessionKey).(*session.Store)
	return store, ok
}

// Token returns the request's bearer token, empty when anonymous.
func Token(c *fiber.Ctx) string {
	store, ok := SessionFromContext(c)
	if !ok {
		return ""
	}
	return store.Snapshot().Token
}
