// SPDX-License-Identifier: MIT

package generator

import "fmt"

// Tile is one map cell.
type Tile uint8

const (
	Empty Tile = iota
	Wall
	Road
	Water
	Grass
	Sand
	Rock
	Floor
	Door
)

// Tiles lists every tile in declaration order.
var Tiles = []Tile{Empty, Wall, Road, Water, Grass, Sand, Rock, Floor, Door}

var tileRunes = [...]rune{
	Empty: ' ',
	Wall:  '#',
	Road:  '=',
	Water: '~',
	Grass: '"',
	Sand:  ':',
	Rock:  '^',
	Floor: '.',
	Door:  '+',
}

var tileNames = [...]string{
	Empty: "empty",
	Wall:  "wall",
	Road:  "road",
	Water: "water",
	Grass: "grass",
	Sand:  "sand",
	Rock:  "rock",
	Floor: "floor",
	Door:  "door",
}

// Rune returns the tile's display character; unknown tiles render as '?'.
func (t Tile) Rune() rune {
	if int(t) < len(tileRunes) {
		return tileRunes[t]
	}
	return '?'
}

// String returns the tile's lowercase name.
func (t Tile) String() string {
	if int(t) < len(tileNames) {
		return tileNames[t]
	}
	return fmt.Sprintf("Tile(%d)", uint8(t))
}

// Walkable reports whether units can stand on t.
func (t Tile) Walkable() bool {
	switch t {
	case Road, Grass, Sand, Floor, Door:
		return true
	default:
		return false
	}
}

// ParseTile maps a display character back to its tile.
func ParseTile(r rune) (Tile, bool) {
	for i, c := range tileRunes {
		if c == r {
			return Tile(i), true
		}
	}
	return Empty, false
}
