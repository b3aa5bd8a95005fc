// Package gamedata provides embedded game data and utilities for loading it.
package gamedata

import "embed"

// dataFS holds the JSON data files compiled into the binary.
//
//go:embed *.json
var dataFS embed.FS
