// Package gamedata provides the embedded skill, enemy, board and narrative
// catalogs and utilities for loading them.
package gamedata

import "embed"

// dataFS embeds all YAML catalogs and narrative text from this directory at build time.
//
//go:embed *.yaml *.txt
var dataFS embed.FS
