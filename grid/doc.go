// SPDX-License-Identifier: MIT

// Package grid provides a dense, fixed-size, content-agnostic 2D grid plus the
// traversal, geometry and search primitives the rewrite engine is built on.
//
// What:
//
//   - Grid[T]: w×h row-major buffer (index = x + y*w) with bounds-checked At/Set.
//     Out-of-range reads report "absent"; out-of-range writes are ignored.
//   - Walkers: Sequential (row-major, deterministic) and *Shuffler (rows and
//     columns drawn from two independent permutations). Every walk can be
//     stopped early by returning Stop.
//   - Combinators: ForEach, Reduce, Find, Some, Every, Many, Map, Fill, Seed.
//     Each is written once against the Walker interface, so the deterministic
//     and shuffled flavours cannot drift apart.
//   - Geometry: Slice, Transpose, MirrorX, MirrorY, Rotate (multiples of 90°).
//   - Search: IsSubGrid, FindSubGrid, FindSubGrids, Equal.
//   - Variants: the deduplicated orbit of a grid under the 8 symmetries of the square.
//
// Why:
//
//   - Rewrite rules are authored once in one orientation; Variants derives the
//     rotated/reflected copies without producing duplicates for symmetric shapes.
//   - Shuffled traversal removes the top-left growth bias of rewrite passes.
//
// Ownership:
//
//   - Every derivation (Slice, Transpose, Mirror*, Rotate, Clone, Map) allocates
//     a new buffer; source buffers are never aliased.
//   - A *Shuffler owns its permutation buffers; a walk must finish before the
//     same Shuffler starts another one (nested walks panic with ErrReentrantWalk).
//
// Complexity:
//
//   - At/Set: O(1). Clone/transforms/Map/Fill: O(w·h).
//   - FindSubGrid: O(W·H·w·h) worst case, fail-fast per anchor.
//   - Variants: O(8·w·h) transforms plus O(k²·w·h) dedup with k ≤ 8.
//
// Errors:
//
//   - ErrInvalidDimensions: non-positive width or height.
//   - ErrEmptyGrid, ErrNonRectangular: FromRows input validation.
//   - ErrInvalidRotation: Rotate with a degree that is not a multiple of 90.
package grid
