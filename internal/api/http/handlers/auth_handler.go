package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/content-gateway/internal/api/dto"
	"github.com/spec-kit/content-gateway/internal/api/middleware"
	"github.com/spec-kit/content-gateway/internal/content"
	"github.com/spec-kit/content-gateway/internal/notify"
	"github.com/spec-kit/content-gateway/internal/session/registry"
	"github.com/spec-kit/content-gateway/internal/upstream"
	apperrors "github.com/spec-kit/content-gateway/pkg/util"
)

// AuthHandler exposes the login/logout/profile endpoints.
type AuthHandler struct {
	content       *content.Service
	registry      *registry.Registry
	toasts        *notify.Store
	logger        *zap.Logger
	profileFences upstream.FenceSet
}

// NewAuthHandler constructs handler.
func NewAuthHandler(contentService *content.Service, reg *registry.Registry, toasts *notify.Store, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{content: contentService, registry: reg, toasts: toasts, logger: logger}
}

// Login handles POST /:locale/login by exchanging credentials with the
// upstream API and persisting the resulting session.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "email and password required")
	}

	result, err := h.content.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	store, ok := middleware.SessionFromContext(c)
	if !ok {
		return apperrors.NewInternalError(nil)
	}
	if err := store.Login(&result.User, result.Token, req.Remember); err != nil {
		return apperrors.NewInternalError(err)
	}

	if h.registry != nil {
		if err := h.registry.Put(c.UserContext(), result.Token, &result.User, req.Remember); err != nil {
			h.logger.Warn("record session", zap.Error(err))
		}
	}
	if h.toasts != nil {
		h.toasts.Push(registry.Fingerprint(result.Token), "Signed in", "Welcome back, "+result.User.Name, notify.LevelSuccess)
	}

	return c.JSON(fiber.Map{"data": dto.SessionResponse{
		User:            &result.User,
		IsAuthenticated: true,
	}})
}

// Logout handles POST /:locale/logout by purging every credential
// entry and the registry record.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	store, ok := middleware.SessionFromContext(c)
	if !ok {
		return apperrors.NewInternalError(nil)
	}

	snap := store.Snapshot()
	if snap.Token != "" && h.registry != nil {
		if err := h.registry.Delete(c.UserContext(), snap.Token); err != nil {
			h.logger.Warn("delete session record", zap.Error(err))
		}
	}
	if err := store.Logout(); err != nil {
		return apperrors.NewInternalError(err)
	}

	return c.SendStatus(http.StatusNoContent)
}

// Me handles GET /:locale/me. When the session holds a token but no
// profile yet, the profile is fetched upstream; a response superseded
// by a newer refresh is dropped instead of overwriting session state.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	store, ok := middleware.SessionFromContext(c)
	if !ok {
		return apperrors.NewInternalError(nil)
	}

	snap := store.Snapshot()
	if !snap.IsAuthenticated {
		return apperrors.NewUnauthorized("not signed in")
	}
	if snap.User != nil {
		return c.JSON(fiber.Map{"data": dto.SessionResponse{User: snap.User, IsAuthenticated: true}})
	}

	// One fence per session: a refresh for one user must never drop
	// another user's in-flight profile write.
	fence := h.profileFences.For(registry.Fingerprint(snap.Token))
	gen := fence.Begin()
	profile, err := h.content.Profile(c.UserContext(), snap.Token)
	if err != nil {
		return err
	}
	if fence.Admit(gen) {
		if err := store.SetUser(&profile); err != nil {
			h.logger.Warn("attach fetched profile", zap.Error(err))
		}
		if h.registry != nil {
			if err := h.registry.Put(c.UserContext(), snap.Token, &profile, false); err != nil {
				h.logger.Warn("refresh session record", zap.Error(err))
			}
		}
	}

	return c.JSON(fiber.Map{"data": dto.SessionResponse{User: &profile, IsAuthenticated: true}})
}
