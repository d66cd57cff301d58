// SPDX-License-Identifier: MIT

// Package rewrite - rules.
//
// A Rule is the predicate half of a pattern cell; a Rewriter is the optional
// mutator half. Keeping them as two interfaces lets a cell be "match only"
// (keep the value) without a nil-function convention at call sites.
//
// AI-Hints:
//   - Rules are compared by identity when patterns are expanded into variants,
//     so implementations must be comparable; every constructor here returns a
//     pointer. Reuse one rule value for cells that mean the same thing.

package rewrite

import (
	"cmp"
	"math/rand"
	"slices"

	"github.com/katalvlaran/tilegrid/grid"
	"github.com/katalvlaran/tilegrid/weighted"
)

// Rule decides whether one host cell satisfies one pattern cell.
// v is the host value, (x,y) its HOST coordinates and src the host grid, so a
// rule may look beyond the pattern window (neighbours, noise lookups, ...).
type Rule[T any] interface {
	Match(v T, x, y int, src *grid.Grid[T]) bool
}

// Rewriter produces the replacement for a matched cell.
// v is the ORIGINAL matched value; snap is the isolated snapshot of the whole
// matched window in pattern-local coordinates. snap must not be retained.
type Rewriter[T any] interface {
	Rewrite(v T, x, y int, src, snap *grid.Grid[T]) T
}

// Cell adapts a pair of closures to Rule and Rewriter.
// A nil RewriteFn keeps the matched value; a nil MatchFn matches everything.
type Cell[T any] struct {
	MatchFn   func(v T, x, y int, src *grid.Grid[T]) bool
	RewriteFn func(v T, x, y int, src, snap *grid.Grid[T]) T
}

// Compile-time assertions.
var (
	_ Rule[int]     = (*Cell[int])(nil)
	_ Rewriter[int] = (*Cell[int])(nil)
)

// Match implements Rule.
func (c *Cell[T]) Match(v T, x, y int, src *grid.Grid[T]) bool {
	if c.MatchFn == nil {
		return true
	}

	return c.MatchFn(v, x, y, src)
}

// Rewrite implements Rewriter.
func (c *Cell[T]) Rewrite(v T, x, y int, src, snap *grid.Grid[T]) T {
	if c.RewriteFn == nil {
		return v
	}

	return c.RewriteFn(v, x, y, src, snap)
}

// Same reports whether two rules are the same rule value (identity).
// It is the equality used to deduplicate pattern variants.
func Same[T any](a, b Rule[T]) bool { return a == b }

// Any matches every cell and keeps it.
func Any[T any]() *Cell[T] { return &Cell[T]{} }

// Where matches cells whose value satisfies pred.
func Where[T any](pred func(v T) bool) *Cell[T] {
	return &Cell[T]{MatchFn: func(v T, _, _ int, _ *grid.Grid[T]) bool { return pred(v) }}
}

// Is matches cells holding one of vs.
func Is[T comparable](vs ...T) *Cell[T] {
	set := slices.Clone(vs)
	return Where(func(v T) bool { return slices.Contains(set, v) })
}

// Not matches cells holding none of vs.
func Not[T comparable](vs ...T) *Cell[T] {
	set := slices.Clone(vs)
	return Where(func(v T) bool { return !slices.Contains(set, v) })
}

// Becomes matches like r and rewrites the cell to v.
func Becomes[T any](r Rule[T], v T) *Cell[T] {
	return &Cell[T]{
		MatchFn:   r.Match,
		RewriteFn: func(T, int, int, *grid.Grid[T], *grid.Grid[T]) T { return v },
	}
}

// Choose matches like r and rewrites the cell to a key drawn from tab.
// rng is shared with the caller; keep it on the same goroutine as the engine.
func Choose[T cmp.Ordered](r Rule[T], tab *weighted.Table[T], rng *rand.Rand) *Cell[T] {
	return &Cell[T]{
		MatchFn:   r.Match,
		RewriteFn: func(T, int, int, *grid.Grid[T], *grid.Grid[T]) T { return tab.Pick(rng) },
	}
}

// Keep matches like r and never rewrites; it hides any Rewriter r implements.
func Keep[T any](r Rule[T]) *Cell[T] {
	return &Cell[T]{MatchFn: r.Match}
}
