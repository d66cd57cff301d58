// SPDX-License-Identifier: MIT

package generator

import (
	"fmt"

	"github.com/katalvlaran/tilegrid/grid"
	"github.com/katalvlaran/tilegrid/gridgraph"
	"github.com/katalvlaran/tilegrid/rewrite"
	"github.com/katalvlaran/tilegrid/weighted"
)

// Terrain thresholds over the noise value.
const (
	waterLevel = 0.35
	rockLevel  = 0.75
)

// scatterWeights decides what a scattered grass cell turns into.
var scatterWeights = weighted.MustTable(map[Tile]float64{Rock: 3, Water: 1})

// terrain classifies one noise sample.
func terrain(n float64) Tile {
	switch {
	case n < waterLevel:
		return Water
	case n < rockLevel:
		return Grass
	default:
		return Rock
	}
}

// TileMap generates outdoor terrain.
// MAIN DESCRIPTION:
//   - Noise terrain with shores, scattered features and connecting roads.
//
// Implementation:
//   - Stage 1: classify the noise of every cell as Water, Grass or Rock.
//   - Stage 2: one shuffled pass scatters Rock/Water over Grass with
//     probability density (weighted table Rock:3, Water:1).
//   - Stage 3: shuffled passes to fixpoint turn Grass beside Water into Sand,
//     using a 2×1 pattern expanded to all four orientations.
//   - Stage 4: while the walkable cells form several regions, bridge the first
//     two with the cheapest chain of non-walkable cells and pave it as Road.
//
// Guarantees:
//   - No Grass cell is orthogonally adjacent to Water.
//   - All walkable cells form one 4-connected region (if any exist).
//
// Errors:
//   - grid.ErrInvalidDimensions (wrapped), ErrNoConvergence (wrapped).
func TileMap(w, h int, opts ...Option) (*grid.Grid[Tile], error) {
	cfg := newConfig(opts)
	g, err := grid.NewFunc(w, h, func(x, y int) Tile { return terrain(cfg.noise(x, y)) })
	if err != nil {
		return nil, fmt.Errorf("generator: TileMap(%d,%d): %w", w, h, err)
	}
	eng := cfg.engine()

	scatter := rewrite.Choose[Tile](&rewrite.Cell[Tile]{
		MatchFn: func(v Tile, _, _ int, _ *grid.Grid[Tile]) bool {
			return v == Grass && cfg.chance(cfg.density)
		},
	}, scatterWeights, cfg.rng)
	eng.MatchReplaceShuffleAll(g, rewrite.PatternSet[Tile]{rewrite.MustPattern(rewrite.Row[Tile](scatter))})

	shore := rewrite.Variants(rewrite.MustPattern(rewrite.Row[Tile](
		rewrite.Is(Water),
		rewrite.Becomes[Tile](rewrite.Is(Grass), Sand),
	)))
	if _, err := Fixpoint(func() bool { return eng.MatchReplaceShuffleAll(g, shore) }, cfg.passLimit(w, h)); err != nil {
		return nil, fmt.Errorf("generator: TileMap shores: %w", err)
	}

	if err := connect(g, Road); err != nil {
		return nil, fmt.Errorf("generator: TileMap roads: %w", err)
	}

	return g, nil
}

// connect paves the cheapest bridges between walkable regions with t until
// one region remains. Each bridge merges at least two regions.
func connect(g *grid.Grid[Tile], t Tile) error {
	gg, err := gridgraph.New(g, Tile.Walkable)
	if err != nil {
		return err
	}
	for len(gg.Components()) > 1 {
		path, _, err := gg.Bridge(0, 1)
		if err != nil {
			return err
		}
		for _, idx := range path {
			x, y := gg.Coordinate(idx)
			if !gg.Open(x, y) {
				g.Set(x, y, t)
			}
		}
	}

	return nil
}
