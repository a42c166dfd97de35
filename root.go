// Package shortener exposes build-time embedded assets shared across the
// application, most notably the SQL migrations applied by the migrate
// subcommand.
package shortener

import "embed"

// Migrations holds the embedded goose migration files.
//
//go:embed migrations/*.sql
var Migrations embed.FS
