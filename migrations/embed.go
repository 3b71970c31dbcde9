// Package migrations holds the goose SQL migrations, embedded so that the
// server, the migrate command, and integration tests apply the same schema.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
