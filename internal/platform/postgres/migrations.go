package postgres

import "embed"

// MigrationsFS holds the embedded SQL migrations so the server binary can
// bring the schema up to date on its own, without a migrations directory
// shipped alongside it.
//
//go:embed migrations/*.sql
var MigrationsFS embed.FS
