package postgres

import (
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/phrazzld/blog-api/migrations"
)

// migrationTableName keeps goose's bookkeeping table out of the way of the
// application schema.
const migrationTableName = "schema_migrations"

// Migrate applies all pending embedded migrations against the given
// database. It is called once at startup, before the HTTP server accepts
// requests.
func Migrate(db *sql.DB) error {
	goose.SetBaseFS(migrations.Files)
	goose.SetTableName(migrationTableName)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
