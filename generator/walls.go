// SPDX-License-Identifier: MIT

package generator

import (
	"fmt"

	"github.com/katalvlaran/tilegrid/grid"
	"github.com/katalvlaran/tilegrid/rewrite"
)

// wallGrowth extends a wall tip into open space: the centre becomes Wall when
// the wall lies directly above it and no other cell of the window is a wall.
// Expanded to all four directions.
var wallGrowth = func() rewrite.PatternSet[Tile] {
	n := rewrite.Not(Wall)
	w := rewrite.Is(Wall)
	grow := rewrite.Becomes[Tile](rewrite.Is(Empty), Wall)
	return rewrite.Variants(rewrite.MustPattern(
		rewrite.Row[Tile](n, w, n),
		rewrite.Row[Tile](n, grow, n),
		rewrite.Row[Tile](n, n, n),
	))
}()

// Walls generates straight walls growing inward from the border.
// MAIN DESCRIPTION:
//   - Border stubs grown into walls in shuffled passes to fixpoint.
//
// Implementation:
//   - Stage 1: every non-corner border cell becomes a Wall stub with
//     probability density; if none was drawn, one stub is placed at the
//     middle of the top edge.
//   - Stage 2: shuffled passes of the wall-growth rule (all four directions)
//     until nothing grows. Walls stop one cell short of other walls, which
//     leaves gaps to walk through.
//   - Stage 3: one pass prunes walls with no wall among their 8 neighbours.
//
// Errors:
//   - grid.ErrInvalidDimensions (wrapped), ErrNoConvergence (wrapped).
func Walls(w, h int, opts ...Option) (*grid.Grid[Tile], error) {
	cfg := newConfig(opts)
	g, err := blank("Walls", w, h, Empty)
	if err != nil {
		return nil, err
	}
	eng := cfg.engine()

	stub := rewrite.Becomes[Tile](&rewrite.Cell[Tile]{
		MatchFn: func(_ Tile, x, y int, src *grid.Grid[Tile]) bool {
			return onBorder(src, x, y) && !corner(src, x, y) && cfg.chance(cfg.density)
		},
	}, Wall)
	if !eng.MatchReplaceAll(g, rewrite.PatternSet[Tile]{rewrite.MustPattern(rewrite.Row[Tile](stub))}) && w >= 3 {
		g.Set(w/2, 0, Wall)
	}

	if _, err := Fixpoint(func() bool { return eng.MatchReplaceShuffleAll(g, wallGrowth) }, cfg.passLimit(w, h)); err != nil {
		return nil, fmt.Errorf("generator: Walls growth: %w", err)
	}

	prune := rewrite.Becomes[Tile](&rewrite.Cell[Tile]{
		MatchFn: func(v Tile, x, y int, src *grid.Grid[Tile]) bool {
			return v == Wall && countAround(src, x, y, around, Wall) == 0
		},
	}, Empty)
	eng.MatchReplaceAll(g, rewrite.PatternSet[Tile]{rewrite.MustPattern(rewrite.Row[Tile](prune))})

	return g, nil
}

// corner reports whether (x,y) is one of the four corners of g.
func corner(g *grid.Grid[Tile], x, y int) bool {
	return (x == 0 || x == g.Width()-1) && (y == 0 || y == g.Height()-1)
}
