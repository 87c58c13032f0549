package migrations

import "embed"

// FS contains embedded Postgres migrations for event storage.
//
//go:embed *.sql
var FS embed.FS
