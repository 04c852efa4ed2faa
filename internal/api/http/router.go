package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/content-gateway/internal/api/http/handlers"
	"github.com/spec-kit/content-gateway/internal/api/middleware"
	"github.com/spec-kit/content-gateway/internal/locale"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Locales       *locale.Set
	Session       fiber.Handler
	Guard         fiber.Handler
	Health        *handlers.HealthHandler
	Home          *handlers.HomeHandler
	Auth          *handlers.AuthHandler
	Content       *handlers.ContentHandler
	Bookmarks     *handlers.BookmarksHandler
	Notifications *handlers.NotificationsHandler
}

// RegisterRoutes wires HTTP routes. Everything except the health
// probes lives under a locale segment and passes through the locale,
// session and guard middlewares in that order.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect(cfg.Locales.Root(cfg.Locales.Default()), fiber.StatusFound)
	})

	loc := app.Group("/:locale", middleware.Locale(cfg.Locales), cfg.Session, cfg.Guard)

	loc.Get("/", cfg.Home.Index)

	loc.Post("/login", cfg.Auth.Login)
	loc.Post("/logout", cfg.Auth.Logout)
	loc.Get("/me", cfg.Auth.Me)

	loc.Get("/lectures", cfg.Content.Lectures)
	loc.Get("/lectures/categories", cfg.Content.LectureCategories)
	loc.Get("/protocols", cfg.Content.Protocols)
	loc.Get("/protocols/categories", cfg.Content.ProtocolCategories)
	loc.Get("/flashcards", cfg.Content.FlashcardDecks)
	loc.Get("/flashcards/:deck/cards", cfg.Content.FlashcardCards)
	loc.Get("/power-points", cfg.Content.PowerPoints)
	loc.Get("/handbook", cfg.Content.Handbook)
	loc.Get("/essentials", cfg.Content.Essentials)
	loc.Get("/articles", cfg.Content.Articles)

	loc.Post("/bookmarks", cfg.Bookmarks.Create)
	loc.Get("/bookmarks", cfg.Bookmarks.List)
	loc.Delete("/bookmarks/:id", cfg.Bookmarks.Delete)

	loc.Get("/notifications", cfg.Notifications.List)
	loc.Delete("/notifications/:id", cfg.Notifications.Dismiss)
}
