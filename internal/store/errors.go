package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in
	// the store.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity.
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity violates a database
	// constraint other than uniqueness, e.g. a blog referencing a missing
	// author.
	ErrInvalidEntity = errors.New("invalid entity")

	// Entity-specific errors

	// ErrUserNotFound indicates that no user matched the lookup.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrBlogNotFound indicates that the requested blog post does not exist.
	ErrBlogNotFound = fmt.Errorf("%w: blog", ErrNotFound)

	// ErrUsernameExists indicates that a user with the given username
	// already exists.
	ErrUsernameExists = fmt.Errorf("%w: username", ErrDuplicate)
)

// IsNotFoundError reports whether the error is any kind of "not found"
// error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError reports whether the error is any kind of "duplicate"
// error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
