// Package creditor embeds the SQL migrations so the migrate command can run
// them without access to the source tree.
package creditor

import "embed"

// Migrations contains the goose SQL migration files.
//
//go:embed migrations/*.sql
var Migrations embed.FS
