// Package gamedata provides embedded game data and utilities for loading it.
package gamedata

import "embed"

// dataFS embeds the board layout and career definitions at build time.
//
//go:embed *.json
var dataFS embed.FS
