// Package migrations embeds the SQL migration files into the binary so a
// fresh database can be brought up to date without shipping files alongside.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
