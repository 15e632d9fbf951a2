// Package postgres provides PostgreSQL-backed implementations of the
// store interfaces, using database/sql over the pgx stdlib driver. All
// database errors are translated into the sentinel errors defined in the
// store package before crossing the package boundary.
package postgres
