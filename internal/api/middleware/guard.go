package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/content-gateway/internal/routeguard"
)

const guardKey = "guard_decision"

// Guard applies the route guard to every request in its group. Denied
// requests are redirected with replace semantics; permitted ones carry
// the classification in request locals for conditional rendering.
func Guard(guard *routeguard.Guard) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var authenticated, loading bool
		if store, ok := SessionFromContext(c); ok {
			snap := store.Snapshot()
			authenticated = snap.IsAuthenticated
			loading = snap.IsLoading
		}

		decision := guard.Evaluate(c.Path(), authenticated, loading)
		if !decision.Allowed() {
			return c.Redirect(decision.Redirect, fiber.StatusFound)
		}

		c.Locals(guardKey, decision)
		return c.Next()
	}
}

// GuardFromContext retrieves the guard decision for the request.
func GuardFromContext(c *fiber.Ctx) (routeguard.Decision, bool) {
	decision, ok := c.Locals(guardKey).(routeguard.Decision)
	return decision, ok
}
