// Package migrations embeds the goose SQL migrations that define the
// relational schema for users and blog posts.
package migrations

import "embed"

// Files holds the embedded SQL migration files, applied at startup.
//
//go:embed *.sql
var Files embed.FS
