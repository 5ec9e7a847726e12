// Package migrations embeds the sqlite schema migrations of the client
// database.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
