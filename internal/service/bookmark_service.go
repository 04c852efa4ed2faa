package service

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/spec-kit/content-gateway/internal/domain"
	"github.com/spec-kit/content-gateway/internal/persistence"
	"github.com/spec-kit/content-gateway/internal/repository"
	apperrors "github.com/spec-kit/content-gateway/pkg/util"
)

// BookmarkService validates and coordinates saved-content operations.
type BookmarkService struct {
	bookmarks repository.BookmarkRepository
}

// NewBookmarkService builds the service.
func NewBookmarkService(bookmarks repository.BookmarkRepository) *BookmarkService {
	return &BookmarkService{bookmarks: bookmarks}
}

// Save stores a bookmark for the user.
func (s *BookmarkService) Save(ctx context.Context, userID int64, contentDomain domain.ContentDomain, slug, title string) (*domain.Bookmark, error) {
	if !contentDomain.Valid() {
		return nil, apperrors.NewValidationError("unknown content domain", map[string]any{"domain": string(contentDomain)})
	}
	slug = strings.TrimSpace(slug)
	title = strings.TrimSpace(title)
	if slug == "" || title == "" {
		return nil, apperrors.NewValidationError("slug and title required", nil)
	}

	bookmark := &domain.Bookmark{
		ID:     uuid.NewString(),
		UserID: userID,
		Domain: contentDomain,
		Slug:   slug,
		Title:  title,
	}
	if err := s.bookmarks.Create(ctx, bookmark); err != nil {
		return nil, mapStoreError(err)
	}
	return bookmark, nil
}

// List returns the user's bookmarks, newest first.
func (s *BookmarkService) List(ctx context.Context, userID int64) ([]domain.Bookmark, error) {
	bookmarks, err := s.bookmarks.ListByUser(ctx, userID)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return bookmarks, nil
}

// Remove deletes one bookmark owned by the user.
func (s *BookmarkService) Remove(ctx context.Context, userID int64, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.NewValidationError("invalid bookmark id", nil)
	}
	return mapStoreError(s.bookmarks.Delete(ctx, userID, id))
}

// mapStoreError folds the unconfigured-store sentinel into a 503;
// everything else passes through for the shared taxonomy to map.
func mapStoreError(err error) error {
	if errors.Is(err, persistence.ErrNotConfigured) {
		return apperrors.NewDomainError("DEPENDENCY_UNAVAILABLE",
			"bookmark storage not configured", http.StatusServiceUnavailable, nil)
	}
	return err
}
