package content

import (
	"context"
	"fmt"

	"github.com/spec-kit/content-gateway/internal/domain"
	"github.com/spec-kit/content-gateway/internal/upstream"
)

// Book slugs known to the upstream API.
const (
	BookEssentials = "the-essentials-4th-edition"
	BookHandbook   = "the-resident-handbook"
)

// Service exposes typed accessors over the upstream content API. Every
// accessor is a pass-through over Client.Do with a fixed path template;
// pagination means forwarding a page number, nothing more.
type Service struct {
	api *upstream.Client
}

// NewService builds the accessor set.
func NewService(api *upstream.Client) *Service {
	return &Service{api: api}
}

// Login exchanges credentials with the upstream API for a profile and
// a bearer token.
func (s *Service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	raw, err := s.api.Post(ctx, "/user/login", upstream.RequestOptions{
		Body: map[string]string{"email": email, "password": password},
	})
	if err != nil {
		return LoginResult{}, err
	}
	return upstream.DecodeSingle[LoginResult](raw)
}

// Profile fetches the signed-in user's profile.
func (s *Service) Profile(ctx context.Context, token string) (domain.Profile, error) {
	raw, err := s.api.Get(ctx, "/user/profile", upstream.RequestOptions{Token: token})
	if err != nil {
		return domain.Profile{}, err
	}
	return upstream.DecodeSingle[domain.Profile](raw)
}

// Lectures lists lectures one page at a time, optionally filtered by
// category.
func (s *Service) Lectures(ctx context.Context, token string, page int, categoryID any) (upstream.Paginated[Lecture], error) {
	raw, err := s.api.Get(ctx, "/user/lectures", upstream.RequestOptions{
		Token: token,
		Query: map[string]any{"page": page, "category_id": categoryID},
	})
	if err != nil {
		return upstream.Paginated[Lecture]{}, err
	}
	return upstream.DecodePaginated[Lecture](raw)
}

// LectureCategories lists all lecture categories.
func (s *Service) LectureCategories(ctx context.Context, token string) ([]LectureCategory, error) {
	raw, err := s.api.Get(ctx, "/user/lecture_categories", upstream.RequestOptions{Token: token})
	if err != nil {
		return nil, err
	}
	list, err := upstream.DecodeList[LectureCategory](raw)
	if err != nil {
		return nil, err
	}
	return list.Data, nil
}

// Protocols lists protocols for a category, one page at a time.
func (s *Service) Protocols(ctx context.Context, token string, page int, categoryID any) (upstream.Paginated[Protocol], error) {
	raw, err := s.api.Get(ctx, "/user/protocols", upstream.RequestOptions{
		Token: token,
		Query: map[string]any{"page": page, "category_id": categoryID},
	})
	if err != nil {
		return upstream.Paginated[Protocol]{}, err
	}
	return upstream.DecodePaginated[Protocol](raw)
}

// ProtocolCategories lists all protocol categories.
func (s *Service) ProtocolCategories(ctx context.Context, token string) ([]ProtocolCategory, error) {
	raw, err := s.api.Get(ctx, "/user/protocol_categories", upstream.RequestOptions{Token: token})
	if err != nil {
		return nil, err
	}
	list, err := upstream.DecodeList[ProtocolCategory](raw)
	if err != nil {
		return nil, err
	}
	return list.Data, nil
}

// FlashcardDecks lists study decks, one page at a time.
func (s *Service) FlashcardDecks(ctx context.Context, token string, page int) (upstream.Paginated[FlashcardDeck], error) {
	raw, err := s.api.Get(ctx, "/user/flashcard_decks", upstream.RequestOptions{
		Token: token,
		Query: map[string]any{"page": page},
	})
	if err != nil {
		return upstream.Paginated[FlashcardDeck]{}, err
	}
	return upstream.DecodePaginated[FlashcardDeck](raw)
}

// FlashcardCards lists the cards of one deck.
func (s *Service) FlashcardCards(ctx context.Context, token, deckSlug string) ([]Flashcard, error) {
	path := fmt.Sprintf("/user/flashcard_decks/%s/cards", deckSlug)
	raw, err := s.api.Get(ctx, path, upstream.RequestOptions{Token: token})
	if err != nil {
		return nil, err
	}
	list, err := upstream.DecodeList[Flashcard](raw)
	if err != nil {
		return nil, err
	}
	return list.Data, nil
}

// PowerPoints lists slide decks, one page at a time.
func (s *Service) PowerPoints(ctx context.Context, token string, page int) (upstream.Paginated[PowerPoint], error) {
	raw, err := s.api.Get(ctx, "/user/power_points", upstream.RequestOptions{
		Token: token,
		Query: map[string]any{"page": page},
	})
	if err != nil {
		return upstream.Paginated[PowerPoint]{}, err
	}
	return upstream.DecodePaginated[PowerPoint](raw)
}

// BookSections lists the sections of a handbook or essentials book.
func (s *Service) BookSections(ctx context.Context, token, bookSlug string) ([]BookSection, error) {
	path := fmt.Sprintf("/user/book/%s/sections", bookSlug)
	raw, err := s.api.Get(ctx, path, upstream.RequestOptions{Token: token})
	if err != nil {
		return nil, err
	}
	list, err := upstream.DecodeList[BookSection](raw)
	if err != nil {
		return nil, err
	}
	return list.Data, nil
}

// Articles lists articles, one page at a time.
func (s *Service) Articles(ctx context.Context, token string, page int) (upstream.Paginated[Article], error) {
	raw, err := s.api.Get(ctx, "/user/articles", upstream.RequestOptions{
		Token: token,
		Query: map[string]any{"page": page},
	})
	if err != nil {
		return upstream.Paginated[Article]{}, err
	}
	return upstream.DecodePaginated[Article](raw)
}
