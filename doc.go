// SPDX-License-Identifier: MIT

// Package tilegrid is a toolkit for procedural tile maps built on 2D pattern
// rewriting.
//
// What is tilegrid?
//
//	A small, generic library where you author tiny grids of rules and let an
//	engine find and rewrite every place they fit:
//		• Grids: row-major storage with optional holes, slicing and copying
//		• Traversal: row-major or reproducibly shuffled walks + combinators
//		• Geometry: transpose, mirrors, rotations and symmetry variants
//		• Search: sub-grid equality and multi-pattern search
//		• Rewriting: match / match-all / match-replace with isolated snapshots
//		• Weighted choice: reproducible draws from weight tables
//
// Everything is organized under a handful of subpackages:
//
//	grid/      - Grid[T], walkers, combinators, transforms, Variants, sub-grid search
//	rewrite/   - Rule and Rewriter, patterns, the match and match-replace Engine
//	weighted/  - weight tables and Pick
//	gridgraph/ - connected components and 0-1 BFS corridors over a grid
//	generator/ - ready-made generators (terrain, walls, buildings, rock) and Fixpoint
//	render/    - ASCII and lipgloss-styled terminal output
//
// The gridgen command (cmd/gridgen) drives the generators from the shell.
//
// Quick example:
//
//	host, _ := grid.NewFill(8, 8, 0)
//	set := rewrite.PatternSet[int]{
//		rewrite.MustPattern(rewrite.Row(rewrite.Becomes(rewrite.Is(0), 1))),
//	}
//	eng := rewrite.NewEngine[int](rewrite.WithSeed(7))
//	for eng.MatchReplaceShuffleAll(host, set) {
//	}
//
// All engines are single-threaded; give each goroutine its own Engine.
package tilegrid
