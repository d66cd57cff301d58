// SPDX-License-Identifier: MIT

// Package generator builds tile maps by composing the grid, rewrite,
// weighted and gridgraph packages.
//
// What:
//
//   - Tile: the cell vocabulary (Empty, Wall, Road, Water, Grass, Sand, Rock,
//     Floor, Door).
//   - TileMap: noise terrain, sand shores, weighted scatter and roads that
//     join every walkable region.
//   - Walls: border stubs grown into straight walls in shuffled passes.
//   - Building: a walled rectangle with chamfered corners and doors.
//   - RockFormation: a blob grown by weighted random rewrites, then smoothed.
//   - Fixpoint: the caller-level loop that repeats a rewrite pass until it
//     stops changing the grid.
//
// Determinism:
//
//	Every generator draws all randomness (noise seed, shuffled scan order,
//	weighted picks) from one *rand.Rand, so the same WithSeed and dimensions
//	produce the same map.
//
// Options:
//
//   - WithSeed / WithRand: the random stream (default seed DefaultSeed).
//   - WithNoise: terrain source for TileMap (default ValueNoise).
//   - WithMaxPasses: bound for every fixpoint loop (0 = W×H).
//   - WithDensity: scatter / stub / door density in [0,1].
//   - WithGrowth: number of Rock growth passes.
//
// Errors:
//
//   - grid.ErrInvalidDimensions (wrapped) for non-positive sizes.
//   - ErrTooSmall when a generator needs a minimum footprint.
//   - ErrNoConvergence when a fixpoint loop exceeds its pass bound.
package generator
