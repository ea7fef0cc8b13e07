// Package ui embeds the desktop frontend served by the Wails asset server.
package ui

import (
	"embed"
	"io/fs"
)

//go:embed all:frontend
var assets embed.FS

// Assets returns the frontend rooted at its index.html.
func Assets() (fs.FS, error) {
	return fs.Sub(assets, "frontend")
}
