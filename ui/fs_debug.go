//go:build debug

package ui

import (
	"io/fs"
	"os"
)

// devRoot is where the dashboard sources live relative to the working
// directory when running with -tags debug.
const devRoot = "ui"

// DistFS returns a live filesystem over the dashboard sources so edits to
// index.html and assets/ show up on refresh without rebuilding the binary.
func DistFS() fs.FS {
	return os.DirFS(devRoot)
}
