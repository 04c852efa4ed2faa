package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/content-gateway/internal/api/dto"
	"github.com/spec-kit/content-gateway/internal/api/middleware"
	"github.com/spec-kit/content-gateway/internal/locale"
)

// HomeHandler serves the locale root, which doubles as the guard's
// redirect target.
type HomeHandler struct {
	locales *locale.Set
}

// NewHomeHandler constructs handler.
func NewHomeHandler(locales *locale.Set) *HomeHandler {
	return &HomeHandler{locales: locales}
}

// Index handles GET /:locale.
func (h *HomeHandler) Index(c *fiber.Ctx) error {
	session := dto.SessionResponse{}
	if store, ok := middleware.SessionFromContext(c); ok {
		snap := store.Snapshot()
		session.User = snap.User
		session.IsAuthenticated = snap.IsAuthenticated
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"locale":  middleware.LocaleFromContext(c, h.locales),
			"session": session,
		},
	})
}
