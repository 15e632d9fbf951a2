package store

import (
	"context"

	"github.com/phrazzld/blog-api/internal/domain"
)

// UserStore defines the interface for user persistence.
type UserStore interface {
	// Create inserts a new user and assigns the database-generated ID to
	// user.ID. Returns ErrUsernameExists if the username is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByCredentials finds the user whose username, password, and name
	// ALL match the supplied values. The conjunctive match, including the
	// display name, mirrors the signin contract.
	// Returns ErrUserNotFound if no row matches.
	GetByCredentials(ctx context.Context, username, password, name string) (*domain.User, error)
}
