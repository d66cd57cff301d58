// SPDX-License-Identifier: MIT

package generator

import (
	"fmt"

	"github.com/katalvlaran/tilegrid/grid"
	"github.com/katalvlaran/tilegrid/rewrite"
)

var (
	// chamfer cuts a corner of the map off and closes the room behind it:
	//
	//	# #      . #
	//	# .  ->  # #
	chamfer = func() rewrite.PatternSet[Tile] {
		w := rewrite.Is(Wall)
		cut := rewrite.Becomes[Tile](&rewrite.Cell[Tile]{
			MatchFn: func(v Tile, x, y int, src *grid.Grid[Tile]) bool { return v == Wall && corner(src, x, y) },
		}, Empty)
		return rewrite.Variants(rewrite.MustPattern(
			rewrite.Row[Tile](cut, w),
			rewrite.Row[Tile](w, rewrite.Becomes[Tile](rewrite.Is(Floor), Wall)),
		))
	}()

	// doorway turns a straight outer wall cell with floor behind it into a Door.
	// Neighbouring doors are impossible because both flanks must be Wall.
	doorway = func() rewrite.PatternSet[Tile] {
		w := rewrite.Is(Wall)
		door := rewrite.Becomes[Tile](&rewrite.Cell[Tile]{
			MatchFn: func(v Tile, x, y int, src *grid.Grid[Tile]) bool { return v == Wall && onBorder(src, x, y) },
		}, Door)
		return rewrite.Variants(rewrite.MustPattern(
			rewrite.Row[Tile](w, door, w),
			rewrite.Row[Tile](rewrite.Any[Tile](), rewrite.Is(Floor), rewrite.Any[Tile]()),
		))
	}()
)

// Building generates a w×h walled room.
// MAIN DESCRIPTION:
//   - Outline of walls around a floor, chamfered corners, doors.
//
// Implementation:
//   - Stage 1: border cells are Wall, interior cells Floor.
//   - Stage 2: for rooms of at least 5×5, one pass of the chamfer rule
//     (expanded to all four corners).
//   - Stage 3: max(1, density×perimeter/4) doors, each placed at the first
//     match of the doorway rule in shuffled order.
//
// Errors:
//   - ErrTooSmall below 3×3.
//   - grid.ErrInvalidDimensions (wrapped).
func Building(w, h int, opts ...Option) (*grid.Grid[Tile], error) {
	if w > 0 && h > 0 && (w < 3 || h < 3) {
		return nil, fmt.Errorf("generator: Building(%d,%d) needs at least 3x3: %w", w, h, ErrTooSmall)
	}
	cfg := newConfig(opts)
	g, err := grid.NewFunc(w, h, func(x, y int) Tile {
		if x == 0 || y == 0 || x == w-1 || y == h-1 {
			return Wall
		}
		return Floor
	})
	if err != nil {
		return nil, fmt.Errorf("generator: Building(%d,%d): %w", w, h, err)
	}
	eng := cfg.engine()

	if w >= 5 && h >= 5 {
		eng.MatchReplaceAll(g, chamfer)
	}

	doors := int(cfg.density * float64(2*(w+h)-4) / 4)
	if doors < 1 {
		doors = 1
	}
	for i := 0; i < doors; i++ {
		if !eng.MatchReplaceShuffle(g, doorway) {
			break
		}
	}

	return g, nil
}
