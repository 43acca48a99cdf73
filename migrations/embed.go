// Package migrations holds the embedded SQL migration set applied at startup
// and by integration tests.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
