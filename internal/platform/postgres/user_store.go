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

// UserStore implements the store.UserStore interface using a PostgreSQL
// database as the storage backend.
type UserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewUserStore creates a new PostgreSQL implementation of the UserStore
// interface. The connection (or transaction) is managed by the caller.
// If logger is nil, the default logger is used.
func NewUserStore(db store.DBTX, logger *slog.Logger) *UserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &UserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure UserStore implements store.UserStore interface
var _ store.UserStore = (*UserStore)(nil)

// Create implements store.UserStore.Create.
// Returns store.ErrUsernameExists when the username unique constraint
// trips; any other failure is mapped through MapError.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO users (username, password, name)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query, user.Username, user.Password, user.Name).
		Scan(&user.ID)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("duplicate username during user creation",
				slog.String("username", user.Username))
			return fmt.Errorf("%w: %v", store.ErrUsernameExists, err)
		}

		log.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("username", user.Username))
		return MapError(err)
	}

	return nil
}

// GetByCredentials implements store.UserStore.GetByCredentials.
// The lookup matches username AND password AND name, mirroring the signin
// contract's conjunctive match.
func (s *UserStore) GetByCredentials(
	ctx context.Context,
	username, password, name string,
) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, username, password, name
		FROM users
		WHERE username = $1 AND password = $2 AND name = $3
		LIMIT 1
	`
	var user domain.User
	err := s.db.QueryRowContext(ctx, query, username, password, name).
		Scan(&user.ID, &user.Username, &user.Password, &user.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %v", store.ErrUserNotFound, err)
		}

		log.Error("failed to look up user by credentials",
			slog.String("error", err.Error()),
			slog.String("username", username))
		return nil, MapError(err)
	}

	return &user, nil
}
