package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/content-gateway/internal/api/dto"
	"github.com/spec-kit/content-gateway/internal/api/middleware"
	"github.com/spec-kit/content-gateway/internal/domain"
	"github.com/spec-kit/content-gateway/internal/notify"
	"github.com/spec-kit/content-gateway/internal/service"
	"github.com/spec-kit/content-gateway/internal/session/registry"
	apperrors "github.com/spec-kit/content-gateway/pkg/util"
)

// BookmarksHandler serves saved-content endpoints. All routes sit
// behind a protected prefix, but the handler still verifies the
// session itself; the guard is advisory.
type BookmarksHandler struct {
	bookmarks *service.BookmarkService
	toasts    *notify.Store
}

// NewBookmarksHandler constructs handler.
func NewBookmarksHandler(bookmarks *service.BookmarkService, toasts *notify.Store) *BookmarksHandler {
	return &BookmarksHandler{bookmarks: bookmarks, toasts: toasts}
}

// requireUser resolves the signed-in user's profile or fails with 401.
func requireUser(c *fiber.Ctx) (*domain.Profile, string, error) {
	store, ok := middleware.SessionFromContext(c)
	if !ok {
		return nil, "", apperrors.NewUnauthorized("not signed in")
	}
	snap := store.Snapshot()
	if !snap.IsAuthenticated {
		return nil, "", apperrors.NewUnauthorized("not signed in")
	}
	if snap.User == nil {
		// Token-before-profile window: the caller should hit /me first.
		return nil, "", apperrors.NewUnauthorized("profile not loaded")
	}
	return snap.User, snap.Token, nil
}

// Create handles POST /:locale/bookmarks.
func (h *BookmarksHandler) Create(c *fiber.Ctx) error {
	user, token, err := requireUser(c)
	if err != nil {
		return err
	}

	var req dto.CreateBookmarkRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	bookmark, err := h.bookmarks.Save(c.UserContext(), user.ID, domain.ContentDomain(req.Domain), req.Slug, req.Title)
	if err != nil {
		return err
	}

	if h.toasts != nil {
		h.toasts.Push(registry.Fingerprint(token), "Bookmark saved", bookmark.Title, notify.LevelSuccess)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": bookmark})
}

// List handles GET /:locale/bookmarks.
func (h *BookmarksHandler) List(c *fiber.Ctx) error {
	user, _, err := requireUser(c)
	if err != nil {
		return err
	}

	bookmarks, err := h.bookmarks.List(c.UserContext(), user.ID)
	if err != nil {
		return err
	}
	if bookmarks == nil {
		bookmarks = []domain.Bookmark{}
	}
	return c.JSON(fiber.Map{"data": bookmarks})
}

// Delete handles DELETE /:locale/bookmarks/:id.
func (h *BookmarksHandler) Delete(c *fiber.Ctx) error {
	user, _, err := requireUser(c)
	if err != nil {
		return err
	}

	if err := h.bookmarks.Remove(c.UserContext(), user.ID, c.Params("id")); err != nil {
		return apperrors.MapError(err)
	}
	return c.SendStatus(http.StatusNoContent)
}
