// SPDX-License-Identifier: MIT

package generator

import "github.com/katalvlaran/tilegrid/grid"

var (
	orthogonal = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	around     = [][2]int{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}
)

// countAround counts cells holding t at the given offsets from (x,y).
// Out-of-range cells never count.
func countAround(g *grid.Grid[Tile], x, y int, offsets [][2]int, t Tile) int {
	n := 0
	for _, d := range offsets {
		if v, ok := g.At(x+d[0], y+d[1]); ok && v == t {
			n++
		}
	}
	return n
}

// onBorder reports whether (x,y) lies on the outer ring of g.
func onBorder(g *grid.Grid[Tile], x, y int) bool {
	return x == 0 || y == 0 || x == g.Width()-1 || y == g.Height()-1
}
