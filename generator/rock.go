// SPDX-License-Identifier: MIT

package generator

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/tilegrid/grid"
	"github.com/katalvlaran/tilegrid/rewrite"
	"github.com/katalvlaran/tilegrid/weighted"
)

// growthWeights decides whether an empty cell touching the blob turns to rock.
var growthWeights = weighted.MustTable(map[Tile]float64{Rock: 2, Empty: 1})

// rockGrowth matches every Empty cell with an orthogonal Rock neighbour and
// rewrites it with a draw from growthWeights taken from rng.
func rockGrowth(rng *rand.Rand) rewrite.PatternSet[Tile] {
	edge := &rewrite.Cell[Tile]{
		MatchFn: func(v Tile, x, y int, src *grid.Grid[Tile]) bool {
			return v == Empty && countAround(src, x, y, orthogonal, Rock) > 0
		},
	}

	return rewrite.PatternSet[Tile]{rewrite.MustPattern(rewrite.Row[Tile](
		rewrite.Choose[Tile](edge, growthWeights, rng),
	))}
}

// RockFormation generates a destructible rock formation: a single blob in the
// middle of an otherwise Empty map.
// MAIN DESCRIPTION:
//   - Weighted random growth from the centre, then hole smoothing.
//
// Implementation:
//   - Stage 1: the centre cell is Rock.
//   - Stage 2: growth shuffled passes. An Empty cell with an orthogonal Rock
//     neighbour is rewritten with a draw from {Rock:2, Empty:1}. Cells grown
//     earlier in a pass can feed later cells of that pass.
//   - Stage 3: shuffled passes to fixpoint fill every Empty cell with at least
//     three orthogonal Rock neighbours.
//
// Guarantees:
//   - The rock cells form one 4-connected region containing the centre.
//
// Errors:
//   - grid.ErrInvalidDimensions (wrapped), ErrNoConvergence (wrapped).
func RockFormation(w, h int, opts ...Option) (*grid.Grid[Tile], error) {
	cfg := newConfig(opts)
	g, err := blank("RockFormation", w, h, Empty)
	if err != nil {
		return nil, err
	}
	g.Set(w/2, h/2, Rock)
	eng := cfg.engine()

	grow := rockGrowth(cfg.rng)
	for i := 0; i < cfg.growth; i++ {
		eng.MatchReplaceShuffleAll(g, grow)
	}

	smooth := rewrite.PatternSet[Tile]{rewrite.MustPattern(rewrite.Row[Tile](
		rewrite.Becomes[Tile](&rewrite.Cell[Tile]{
			MatchFn: func(v Tile, x, y int, src *grid.Grid[Tile]) bool {
				return v == Empty && countAround(src, x, y, orthogonal, Rock) >= 3
			},
		}, Rock),
	))}
	if _, err := Fixpoint(func() bool { return eng.MatchReplaceShuffleAll(g, smooth) }, cfg.passLimit(w, h)); err != nil {
		return nil, fmt.Errorf("generator: RockFormation smoothing: %w", err)
	}

	return g, nil
}
