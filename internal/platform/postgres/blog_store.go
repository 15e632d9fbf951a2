package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/platform/logger"
	"github.com/phrazzld/blog-api/internal/store"
)

// BlogStore implements the store.BlogStore interface using a PostgreSQL
// database as the storage backend.
type BlogStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewBlogStore creates a new PostgreSQL implementation of the BlogStore
// interface. The connection (or transaction) is managed by the caller.
// If logger is nil, the default logger is used.
func NewBlogStore(db store.DBTX, logger *slog.Logger) *BlogStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &BlogStore{
		db:     db,
		logger: logger.With(slog.String("component", "blog_store")),
	}
}

// Ensure BlogStore implements store.BlogStore interface
var _ store.BlogStore = (*BlogStore)(nil)

// Create implements store.BlogStore.Create.
// Returns store.ErrInvalidEntity if the author reference is dangling.
func (s *BlogStore) Create(ctx context.Context, blog *domain.Blog) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO blogs (title, content, author_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query, blog.Title, blog.Content, blog.AuthorID).
		Scan(&blog.ID)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during blog creation",
				slog.Int64("author_id", blog.AuthorID))
			return fmt.Errorf("%w: author with ID %d not found",
				store.ErrInvalidEntity, blog.AuthorID)
		}

		log.Error("failed to create blog",
			slog.String("error", err.Error()),
			slog.Int64("author_id", blog.AuthorID))
		return MapError(err)
	}

	return nil
}

// Update implements store.BlogStore.Update.
// Only title and content change; author_id is deliberately left alone.
// Returns store.ErrBlogNotFound when no row matched the given ID.
func (s *BlogStore) Update(ctx context.Context, id int64, title, content string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE blogs
		SET title = $1, content = $2
		WHERE id = $3
	`
	result, err := s.db.ExecContext(ctx, query, title, content, id)
	if err != nil {
		log.Error("failed to update blog",
			slog.String("error", err.Error()),
			slog.Int64("blog_id", id))
		return MapError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: id %d", store.ErrBlogNotFound, id)
	}

	return nil
}

// List implements store.BlogStore.List.
func (s *BlogStore) List(ctx context.Context) ([]domain.Blog, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, content, author_id
		FROM blogs
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list blogs", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Warn("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	blogs := []domain.Blog{}
	for rows.Next() {
		var blog domain.Blog
		if err := rows.Scan(&blog.ID, &blog.Title, &blog.Content, &blog.AuthorID); err != nil {
			log.Error("failed to scan blog row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		blogs = append(blogs, blog)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return blogs, nil
}

// GetByID implements store.BlogStore.GetByID.
func (s *BlogStore) GetByID(ctx context.Context, id int64) (*domain.Blog, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, content, author_id
		FROM blogs
		WHERE id = $1
		LIMIT 1
	`
	var blog domain.Blog
	err := s.db.QueryRowContext(ctx, query, id).
		Scan(&blog.ID, &blog.Title, &blog.Content, &blog.AuthorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", store.ErrBlogNotFound, id)
		}

		log.Error("failed to get blog",
			slog.String("error", err.Error()),
			slog.Int64("blog_id", id))
		return nil, MapError(err)
	}

	return &blog, nil
}
