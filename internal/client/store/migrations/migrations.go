// Package migrations embeds the SQL schema migrations for the client's
// local field cache.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
