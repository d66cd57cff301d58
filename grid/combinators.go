// SPDX-License-Identifier: MIT

// Package grid - higher-order traversal combinators.
//
// Every combinator takes the Walker as its first argument and is implemented
// exactly once; passing Sequential or a *Shuffler selects the visiting order.
// Values are read through At, so holes are visited with the zero value of T.

package grid

// Hit is a cell located by Find: its coordinates and value.
type Hit[T any] struct {
	X, Y  int
	Value T
}

// ForEach visits every cell of g in wk's order until fn returns Stop.
// Returns Stop iff the walk was aborted.
// Complexity: O(w*h).
func ForEach[T any](wk Walker, g *Grid[T], fn func(v T, x, y int) Step) Step {
	return wk.Walk(g.w, g.h, func(x, y int) Step {
		v, _ := g.At(x, y)
		return fn(v, x, y)
	})
}

// Reduce folds every cell into an accumulator in wk's order.
// Complexity: O(w*h).
func Reduce[T, A any](wk Walker, g *Grid[T], init A, fn func(acc A, v T, x, y int) A) A {
	acc := init
	ForEach(wk, g, func(v T, x, y int) Step {
		acc = fn(acc, v, x, y)
		return Continue
	})

	return acc
}

// Find returns the first cell (in wk's order) satisfying pred.
// The walk stops at the first hit; ok=false means no cell satisfied pred.
// Complexity: O(w*h) worst case.
func Find[T any](wk Walker, g *Grid[T], pred func(v T, x, y int) bool) (hit Hit[T], ok bool) {
	ForEach(wk, g, func(v T, x, y int) Step {
		if pred(v, x, y) {
			hit, ok = Hit[T]{X: x, Y: y, Value: v}, true
			return Stop
		}
		return Continue
	})

	return hit, ok
}

// Some reports whether at least one cell satisfies pred.
func Some[T any](wk Walker, g *Grid[T], pred func(v T, x, y int) bool) bool {
	_, ok := Find(wk, g, pred)
	return ok
}

// Every reports whether no cell is a counter-example to pred.
func Every[T any](wk Walker, g *Grid[T], pred func(v T, x, y int) bool) bool {
	_, found := Find(wk, g, func(v T, x, y int) bool { return !pred(v, x, y) })
	return !found
}

// Many calls fn for EVERY cell (never stops early) and reports whether any call
// returned true. This is the "apply everywhere in one full scan" primitive.
// Complexity: exactly w*h calls.
func Many[T any](wk Walker, g *Grid[T], fn func(v T, x, y int) bool) bool {
	hit := false
	ForEach(wk, g, func(v T, x, y int) Step {
		if fn(v, x, y) {
			hit = true
		}
		return Continue
	})

	return hit
}

// Map builds a new grid of the same size with fn applied to every cell.
// Holes in g stay holes in the result (fn is not called for them).
// Complexity: O(w*h).
func Map[T, U any](wk Walker, g *Grid[T], fn func(v T, x, y int) U) *Grid[U] {
	out := newGrid[U](g.w, g.h)
	wk.Walk(g.w, g.h, func(x, y int) Step {
		if v, ok := g.At(x, y); ok {
			out.Set(x, y, fn(v, x, y))
		} else {
			out.clear(x, y)
		}
		return Continue
	})

	return out
}

// Fill sets every cell of g to v.
func Fill[T any](wk Walker, g *Grid[T], v T) {
	wk.Walk(g.w, g.h, func(x, y int) Step {
		g.Set(x, y, v)
		return Continue
	})
}

// Seed sets every cell of g to fn(x,y), calling fn once per cell in wk's order.
func Seed[T any](wk Walker, g *Grid[T], fn func(x, y int) T) {
	wk.Walk(g.w, g.h, func(x, y int) Step {
		g.Set(x, y, fn(x, y))
		return Continue
	})
}

// Count returns the number of cells satisfying pred.
func Count[T any](wk Walker, g *Grid[T], pred func(v T, x, y int) bool) int {
	return Reduce(wk, g, 0, func(n int, v T, x, y int) int {
		if pred(v, x, y) {
			return n + 1
		}
		return n
	})
}
