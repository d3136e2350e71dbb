// Package data provides the embedded level manifest and map assets.
package data

import "embed"

// dataFS embeds the level manifest and Tiled map exports at build time.
//
//go:embed *.json *.tmj
var dataFS embed.FS

// FS returns the embedded filesystem containing level assets.
func FS() embed.FS {
	return dataFS
}
