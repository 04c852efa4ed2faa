package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/content-gateway/internal/locale"
)

const localeKey = "request_locale"

// Locale validates the locale segment of routed paths. Unrecognized
// segments redirect to the default-locale equivalent; recognized ones
// are stashed for handlers. Uses the same locale set as the route
// guard, so the two can never disagree about what counts as a locale.
func Locale(locales *locale.Set) fiber.Handler {
	return func(c *fiber.Ctx) error {
		loc, rest, recognized := locales.Split(c.Path())
		if !recognized {
			target := locales.Root(loc)
			if rest != "/" {
				target += rest
			}
			return c.Redirect(target, fiber.StatusFound)
		}

		c.Locals(localeKey, loc)
		return c.Next()
	}
}

// LocaleFromContext returns the request's locale, falling back to the
// set's default.
func LocaleFromContext(c *fiber.Ctx, locales *locale.Set) string {
	if loc, ok := c.Locals(localeKey).(string); ok && loc != "" {
		return loc
	}
	return locales.Default()
}
