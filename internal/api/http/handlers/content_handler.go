package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/content-gateway/internal/api/middleware"
	"github.com/spec-kit/content-gateway/internal/content"
)

// ContentHandler serves the browsing endpoints. Every method is a thin
// forward to one resource accessor; errors flow to the error
// middleware untouched.
type ContentHandler struct {
	content *content.Service
}

// NewContentHandler constructs handler.
func NewContentHandler(contentService *content.Service) *ContentHandler {
	return &ContentHandler{content: contentService}
}

// categoryFilter reads an optional category_id query value; absence
// maps to nil so the query serializer omits it.
func categoryFilter(c *fiber.Ctx) any {
	if v := c.Query("category_id"); v != "" {
		return v
	}
	return nil
}

// Lectures handles GET /:locale/lectures.
func (h *ContentHandler) Lectures(c *fiber.Ctx) error {
	page, err := h.content.Lectures(c.UserContext(), middleware.Token(c), c.QueryInt("page", 1), categoryFilter(c))
	if err != nil {
		return err
	}
	return c.JSON(page)
}

// LectureCategories handles GET /:locale/lectures/categories.
func (h *ContentHandler) LectureCategories(c *fiber.Ctx) error {
	categories, err := h.content.LectureCategories(c.UserContext(), middleware.Token(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": categories})
}

// Protocols handles GET /:locale/protocols.
func (h *ContentHandler) Protocols(c *fiber.Ctx) error {
	page, err := h.content.Protocols(c.UserContext(), middleware.Token(c), c.QueryInt("page", 1), categoryFilter(c))
	if err != nil {
		return err
	}
	return c.JSON(page)
}

// ProtocolCategories handles GET /:locale/protocols/categories.
func (h *ContentHandler) ProtocolCategories(c *fiber.Ctx) error {
	categories, err := h.content.ProtocolCategories(c.UserContext(), middleware.Token(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": categories})
}

// FlashcardDecks handles GET /:locale/flashcards.
func (h *ContentHandler) FlashcardDecks(c *fiber.Ctx) error {
	page, err := h.content.FlashcardDecks(c.UserContext(), middleware.Token(c), c.QueryInt("page", 1))
	if err != nil {
		return err
	}
	return c.JSON(page)
}

// FlashcardCards handles GET /:locale/flashcards/:deck/cards.
func (h *ContentHandler) FlashcardCards(c *fiber.Ctx) error {
	cards, err := h.content.FlashcardCards(c.UserContext(), middleware.Token(c), c.Params("deck"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": cards})
}

// PowerPoints handles GET /:locale/power-points.
func (h *ContentHandler) PowerPoints(c *fiber.Ctx) error {
	page, err := h.content.PowerPoints(c.UserContext(), middleware.Token(c), c.QueryInt("page", 1))
	if err != nil {
		return err
	}
	return c.JSON(page)
}

// Handbook handles GET /:locale/handbook.
func (h *ContentHandler) Handbook(c *fiber.Ctx) error {
	sections, err := h.content.BookSections(c.UserContext(), middleware.Token(c), content.BookHandbook)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": sections})
}

// Essentials handles GET /:locale/essentials.
func (h *ContentHandler) Essentials(c *fiber.Ctx) error {
	sections, err := h.content.BookSections(c.UserContext(), middleware.Token(c), content.BookEssentials)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": sections})
}

// Articles handles GET /:locale/articles.
func (h *ContentHandler) Articles(c *fiber.Ctx) error {
	page, err := h.content.Articles(c.UserContext(), middleware.Token(c), c.QueryInt("page", 1))
	if err != nil {
		return err
	}
	return c.JSON(page)
}
