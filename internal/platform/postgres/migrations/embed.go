// Package migrations holds the goose SQL migrations of the PostgreSQL schema.
package migrations

import "embed"

// FS contains the migration files at its root.
//
//go:embed *.sql
var FS embed.FS
