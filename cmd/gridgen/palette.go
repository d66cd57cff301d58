// SPDX-License-Identifier: MIT

package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/tilegrid/generator"
	"github.com/katalvlaran/tilegrid/render"
)

// tileColors are 256-colour foregrounds per tile; missing tiles use the terminal default.
var tileColors = map[generator.Tile]lipgloss.Color{
	generator.Wall:  lipgloss.Color("250"),
	generator.Road:  lipgloss.Color("180"),
	generator.Water: lipgloss.Color("33"),
	generator.Grass: lipgloss.Color("34"),
	generator.Sand:  lipgloss.Color("222"),
	generator.Rock:  lipgloss.Color("244"),
	generator.Floor: lipgloss.Color("238"),
	generator.Door:  lipgloss.Color("130"),
}

// tileGlyph draws a tile with its rune and colour.
func tileGlyph(t generator.Tile) render.Glyph {
	gl := render.Glyph{Rune: t.Rune()}
	if c, ok := tileColors[t]; ok {
		gl.Fg = c
	}
	return gl
}

// plainGlyph draws any rune uncoloured.
func plainGlyph(r rune) render.Glyph { return render.Glyph{Rune: r} }
