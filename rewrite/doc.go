// SPDX-License-Identifier: MIT

// Package rewrite implements pattern matching and match-replace rewriting over
// grid.Grid values.
//
// What:
//
//   - Rule[T]: a per-cell predicate. Rules that also implement Rewriter[T]
//     produce the replacement value; other rules keep the matched value.
//   - Pattern[T]: a small grid of rules anchored at its top-left corner.
//   - PatternSet[T]: an ordered list of patterns; at one anchor the first
//     matching pattern wins.
//   - Engine[T]: the matcher. It owns an Arena (scratch grids, result buffer,
//     shuffled walker) so anchor tests do not allocate.
//
// Families (deterministic row-major scan / shuffled scan):
//
//	Match / MatchShuffle                   first match → (Match[T], bool)
//	MatchAll / MatchShuffleAll             one Match per matching anchor
//	MatchReplace / MatchReplaceShuffle     rewrite the first matching anchor
//	MatchReplaceAll / MatchReplaceShuffleAll
//	                                       rewrite every matching anchor in one pass
//
// Read/write isolation:
//
//	At a matching anchor every matched value is copied into a snapshot BEFORE
//	any Rewrite runs. Rewriters receive the original value and the snapshot,
//	and their results are written back in one batch, so a rule never observes
//	a sibling cell already rewritten within the same application.
//
// Fixpoints:
//
//	The ...All operations perform exactly one full pass and report whether
//	anything was rewritten. Converging to a fixpoint is the caller's loop:
//
//		for eng.MatchReplaceShuffleAll(g, rules) {
//		}
//
// Concurrency:
//
//	An Engine is single-threaded and NOT reentrant: a rule must not call back
//	into the same Engine. Nested use panics with ErrReentrant.
package rewrite
