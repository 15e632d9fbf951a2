package store

import (
	"context"

	"github.com/phrazzld/blog-api/internal/domain"
)

// BlogStore defines the interface for blog post persistence.
type BlogStore interface {
	// Create inserts a new blog post and assigns the database-generated ID
	// to blog.ID. Returns ErrInvalidEntity if the author does not exist.
	Create(ctx context.Context, blog *domain.Blog) error

	// Update rewrites the title and content of the post with the given ID.
	// The author reference is never touched. Returns ErrBlogNotFound if no
	// row matches.
	Update(ctx context.Context, id int64, title, content string) error

	// List returns every blog post, in no particular order.
	List(ctx context.Context) ([]domain.Blog, error)

	// GetByID returns the post with the given ID, or ErrBlogNotFound if it
	// does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Blog, error)
}
