package migrations

import "embed"

// FS holds the versioned schema applied by cmd/migrate and the e2e suite.
//
//go:embed *.sql
var FS embed.FS
