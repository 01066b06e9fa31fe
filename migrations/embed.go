// Package migrations embeds the goose SQL migrations so the server and
// test helpers apply the same schema without a migrations directory on disk.
package migrations

import "embed"

// FS holds every *.sql migration at its root.
//
//go:embed *.sql
var FS embed.FS
