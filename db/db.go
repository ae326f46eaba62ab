// Package db embeds the SQL migrations for the portal schema.
package db

import "embed"

// Migrations holds the SQL migration files applied by portalctl db migrate.
//
//go:embed migrations/*.sql
var Migrations embed.FS
