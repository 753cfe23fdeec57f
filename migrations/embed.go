// Package migrations embeds the SQL schema migrations for the launches database.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
