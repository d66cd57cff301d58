// SPDX-License-Identifier: MIT

// Package rewrite - pattern match engine.

package rewrite

import "github.com/katalvlaran/tilegrid/grid"

// testAt evaluates pattern p with its top-left corner at (sx,sy).
// MAIN DESCRIPTION:
//   - All-or-nothing test of one pattern at one anchor.
//
// Implementation:
//   - Stage 1: reject anchors from which p does not fit (no partial edge matches).
//   - Stage 2: copy each host cell into the shape's scratch grid and evaluate
//     the rule; stop at the first failing rule or host hole.
//
// Returns:
//   - the scratch grid holding the matched values (valid until the next test)
//     and true on success; nil, false otherwise.
//
// Complexity:
//   - Time O(w*h) of p worst case, Space O(1) (scratch reused).
func (e *Engine[T]) testAt(host *grid.Grid[T], p Pattern[T], sx, sy int) (*grid.Grid[T], bool) {
	pw, ph := p.Size()
	if sx < 0 || sy < 0 || sx+pw > host.Width() || sy+ph > host.Height() {
		return nil, false
	}
	scratch := e.arena.scratchFor(pw, ph)
	ok := grid.Every(grid.Sequential, p, func(r Rule[T], x, y int) bool {
		v, present := host.At(sx+x, sy+y)
		if !present {
			return false
		}
		scratch.Set(x, y, v)
		return r.Match(v, sx+x, sy+y, host)
	})
	if !ok {
		return nil, false
	}

	return scratch, true
}

// firstAt returns the index of the first pattern of set matching at (sx,sy)
// and its scratch values, or -1.
func (e *Engine[T]) firstAt(host *grid.Grid[T], set PatternSet[T], sx, sy int) (int, *grid.Grid[T]) {
	for i, p := range set {
		if vals, ok := e.testAt(host, p, sx, sy); ok {
			return i, vals
		}
	}

	return -1, nil
}

// match scans host anchors in wk's order and returns the first match.
func (e *Engine[T]) match(wk grid.Walker, host *grid.Grid[T], set PatternSet[T]) (Match[T], bool) {
	e.enter()
	defer e.leave()

	var m Match[T]
	found := grid.Some(wk, host, func(_ T, x, y int) bool {
		idx, vals := e.firstAt(host, set, x, y)
		if idx < 0 {
			return false
		}
		m = Match[T]{X: x, Y: y, Pattern: idx, Snapshot: vals.Clone()}
		return true
	})

	return m, found
}

// matchAll scans every anchor in wk's order and collects one Match per anchor.
func (e *Engine[T]) matchAll(wk grid.Walker, host *grid.Grid[T], set PatternSet[T]) []Match[T] {
	e.enter()
	defer e.leave()

	var out []Match[T]
	grid.ForEach(wk, host, func(_ T, x, y int) grid.Step {
		if idx, vals := e.firstAt(host, set, x, y); idx >= 0 {
			out = append(out, Match[T]{X: x, Y: y, Pattern: idx, Snapshot: vals.Clone()})
		}
		return grid.Continue
	})

	return out
}

// Match returns the first match in row-major anchor order.
func (e *Engine[T]) Match(host *grid.Grid[T], set PatternSet[T]) (Match[T], bool) {
	return e.match(grid.Sequential, host, set)
}

// MatchShuffle returns the first match in shuffled anchor order.
func (e *Engine[T]) MatchShuffle(host *grid.Grid[T], set PatternSet[T]) (Match[T], bool) {
	return e.match(e.walker(true), host, set)
}

// MatchAll returns one match per matching anchor in row-major order.
// The host is not modified, so every anchor sees the same contents.
func (e *Engine[T]) MatchAll(host *grid.Grid[T], set PatternSet[T]) []Match[T] {
	return e.matchAll(grid.Sequential, host, set)
}

// MatchShuffleAll is MatchAll in shuffled anchor order.
func (e *Engine[T]) MatchShuffleAll(host *grid.Grid[T], set PatternSet[T]) []Match[T] {
	return e.matchAll(e.walker(true), host, set)
}
