// Package migrations embeds the goose SQL migrations so the server binary
// can migrate any database it is pointed at.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
