// SPDX-License-Identifier: MIT

// Package rewrite - match-replace engine.

package rewrite

import "github.com/katalvlaran/tilegrid/grid"

// apply rewrites host at anchor (sx,sy) with pattern p, whose matched values
// are in vals.
// MAIN DESCRIPTION:
//   - One isolated application of a matched pattern.
//
// Implementation:
//   - Stage 1: snapshot = copy of vals (taken before any Rewrite runs).
//   - Stage 2: every cell's Rewriter (if any) computes its result from the
//     ORIGINAL value and the snapshot; results go to the arena buffer.
//   - Stage 3: write all results back into host in one batch.
//
// Behavior highlights:
//   - No Rewrite call can observe a value produced by another Rewrite of the
//     same application, neither through snap nor through host.
//
// Complexity:
//   - Time O(w*h) of p; one snapshot allocation per application.
func (e *Engine[T]) apply(host *grid.Grid[T], p Pattern[T], vals *grid.Grid[T], sx, sy int) {
	snap := vals.Clone()
	pw, ph := p.Size()
	res := e.arena.resultBuf(pw * ph)

	grid.ForEach(grid.Sequential, p, func(r Rule[T], x, y int) grid.Step {
		v, _ := snap.At(x, y)
		if rw, ok := r.(Rewriter[T]); ok {
			v = rw.Rewrite(v, sx+x, sy+y, host, snap)
		}
		res[x+y*pw] = v
		return grid.Continue
	})
	grid.Sequential.Walk(pw, ph, func(x, y int) grid.Step {
		host.Set(sx+x, sy+y, res[x+y*pw])
		return grid.Continue
	})
}

// replaceFirst rewrites the first matching anchor in wk's order.
func (e *Engine[T]) replaceFirst(wk grid.Walker, host *grid.Grid[T], set PatternSet[T]) bool {
	e.enter()
	defer e.leave()

	return grid.Some(wk, host, func(_ T, x, y int) bool {
		idx, vals := e.firstAt(host, set, x, y)
		if idx < 0 {
			return false
		}
		e.apply(host, set[idx], vals, x, y)
		return true
	})
}

// replaceAll rewrites at every matching anchor in one pass of wk.
// Anchors visited later in the pass see rewrites made earlier in the pass.
func (e *Engine[T]) replaceAll(wk grid.Walker, host *grid.Grid[T], set PatternSet[T]) bool {
	e.enter()
	defer e.leave()

	return grid.Many(wk, host, func(_ T, x, y int) bool {
		idx, vals := e.firstAt(host, set, x, y)
		if idx < 0 {
			return false
		}
		e.apply(host, set[idx], vals, x, y)
		return true
	})
}

// MatchReplace rewrites the first matching anchor in row-major order and
// reports whether a rewrite happened.
func (e *Engine[T]) MatchReplace(host *grid.Grid[T], set PatternSet[T]) bool {
	return e.replaceFirst(grid.Sequential, host, set)
}

// MatchReplaceShuffle rewrites the first matching anchor in shuffled order.
func (e *Engine[T]) MatchReplaceShuffle(host *grid.Grid[T], set PatternSet[T]) bool {
	return e.replaceFirst(e.walker(true), host, set)
}

// MatchReplaceAll performs exactly one row-major pass, rewriting at every
// matching anchor, and reports whether at least one rewrite happened.
// Loop on the result to reach a fixpoint.
func (e *Engine[T]) MatchReplaceAll(host *grid.Grid[T], set PatternSet[T]) bool {
	return e.replaceAll(grid.Sequential, host, set)
}

// MatchReplaceShuffleAll is MatchReplaceAll over a shuffled anchor order.
func (e *Engine[T]) MatchReplaceShuffleAll(host *grid.Grid[T], set PatternSet[T]) bool {
	return e.replaceAll(e.walker(true), host, set)
}
