package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/content-gateway/internal/domain"
	"github.com/spec-kit/content-gateway/internal/persistence"
)

// BookmarkRepository defines persistence access for saved content.
type BookmarkRepository interface {
	Create(ctx context.Context, bookmark *domain.Bookmark) error
	ListByUser(ctx context.Context, userID int64) ([]domain.Bookmark, error)
	Delete(ctx context.Context, userID int64, id string) error
}

type bookmarkRepository struct {
	pool *pgxpool.Pool
}

// NewBookmarkRepository returns a Postgres-backed implementation.
// Without a pool it degrades to a stub reporting the store
// unconfigured, so bookmark routes fail cleanly instead of panicking.
func NewBookmarkRepository(pool *pgxpool.Pool) BookmarkRepository {
	if pool == nil {
		return unavailableRepository{}
	}
	return &bookmarkRepository{pool: pool}
}

type unavailableRepository struct{}

func (unavailableRepository) Create(context.Context, *domain.Bookmark) error {
	return persistence.ErrNotConfigured
}

func (unavailableRepository) ListByUser(context.Context, int64) ([]domain.Bookmark, error) {
	return nil, persistence.ErrNotConfigured
}

func (unavailableRepository) Delete(context.Context, int64, string) error {
	return persistence.ErrNotConfigured
}

func (r *bookmarkRepository) Create(ctx context.Context, bookmark *domain.Bookmark) error {
	const query = `
        INSERT INTO bookmarks (id, user_id, domain, slug, title)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING created_at`

	return r.pool.QueryRow(ctx, query,
		bookmark.ID,
		bookmark.UserID,
		bookmark.Domain,
		bookmark.Slug,
		bookmark.Title,
	).Scan(&bookmark.CreatedAt)
}

func (r *bookmarkRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Bookmark, error) {
	const query = `
        SELECT id, user_id, domain, slug, title, created_at
        FROM bookmarks
        WHERE user_id = $1
        ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookmarks []domain.Bookmark
	for rows.Next() {
		var b domain.Bookmark
		if err := rows.Scan(&b.ID, &b.UserID, &b.Domain, &b.Slug, &b.Title, &b.CreatedAt); err != nil {
			return nil, err
		}
		bookmarks = append(bookmarks, b)
	}
	return bookmarks, rows.Err()
}

func (r *bookmarkRepository) Delete(ctx context.Context, userID int64, id string) error {
	const query = `DELETE FROM bookmarks WHERE user_id = $1 AND id = $2`

	cmd, err := r.pool.Exec(ctx, query, userID, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
