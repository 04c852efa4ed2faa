package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/content-gateway/internal/api/middleware"
	"github.com/spec-kit/content-gateway/internal/notify"
	"github.com/spec-kit/content-gateway/internal/session/registry"
	apperrors "github.com/spec-kit/content-gateway/pkg/util"
)

// NotificationsHandler exposes the pending toasts for a session.
type NotificationsHandler struct {
	toasts *notify.Store
}

// NewNotificationsHandler constructs handler.
func NewNotificationsHandler(toasts *notify.Store) *NotificationsHandler {
	return &NotificationsHandler{toasts: toasts}
}

// List handles GET /:locale/notifications. Anonymous sessions have no
// toast queue and get an empty list.
func (h *NotificationsHandler) List(c *fiber.Ctx) error {
	token := middleware.Token(c)
	if token == "" {
		return c.JSON(fiber.Map{"data": []notify.Toast{}})
	}
	return c.JSON(fiber.Map{"data": h.toasts.List(registry.Fingerprint(token))})
}

// Dismiss handles DELETE /:locale/notifications/:id.
func (h *NotificationsHandler) Dismiss(c *fiber.Ctx) error {
	token := middleware.Token(c)
	if token == "" {
		return apperrors.NewUnauthorized("not signed in")
	}
	if !h.toasts.Dismiss(registry.Fingerprint(token), c.Params("id")) {
		return apperrors.NewNotFound("notification", nil)
	}
	return c.SendStatus(http.StatusNoContent)
}
