// SPDX-License-Identifier: MIT

// Package rewrite - caller-owned scratch state.
//
// The anchor test is the hot path of every scan: it runs W·H·|set| times per
// pass. Arena keeps one scratch grid per pattern shape (patterns and their
// variants come in very few shapes), one result buffer grown to the largest
// pattern seen, and the shuffled walker. Nothing here is global; an Arena is
// owned by exactly one Engine.

package rewrite

import "github.com/katalvlaran/tilegrid/grid"

// shape is a (width, height) pair used to key scratch grids.
type shape struct{ w, h int }

// Arena holds reusable buffers for one Engine.
type Arena[T any] struct {
	scratch  map[shape]*grid.Grid[T] // lazily created per pattern shape
	results  []T                     // rewrite results, grown to the largest pattern
	shuffler *grid.Shuffler          // randomized walker; owns its permutation buffers
}

// newArena returns an empty arena walking with s.
func newArena[T any](s *grid.Shuffler) *Arena[T] {
	return &Arena[T]{scratch: make(map[shape]*grid.Grid[T]), shuffler: s}
}

// scratchFor returns the reusable scratch grid for a w×h pattern.
func (a *Arena[T]) scratchFor(w, h int) *grid.Grid[T] {
	k := shape{w, h}
	if g, ok := a.scratch[k]; ok {
		return g
	}
	g, _ := grid.New[T](w, h) // pattern dimensions are always positive
	a.scratch[k] = g

	return g
}

// resultBuf returns a buffer of length n, reusing capacity.
func (a *Arena[T]) resultBuf(n int) []T {
	if cap(a.results) < n {
		a.results = make([]T, n)
	}

	return a.results[:n]
}

// Shapes reports how many distinct scratch grids the arena holds.
func (a *Arena[T]) Shapes() int { return len(a.scratch) }
