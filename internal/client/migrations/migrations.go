// Package migrations embeds the goose migrations that bootstrap the SQLite
// key/value medium.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
