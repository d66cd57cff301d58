// SPDX-License-Identifier: MIT

// Package rewrite - patterns and pattern sets.

package rewrite

import (
	"fmt"

	"github.com/katalvlaran/tilegrid/grid"
)

// Pattern is a small grid of rules tested with its top-left corner on an anchor.
type Pattern[T any] = *grid.Grid[Rule[T]]

// PatternSet is an ordered list of patterns; the first match wins at an anchor.
type PatternSet[T any] []Pattern[T]

// Match is one successful pattern application site.
//   - X, Y: the anchor (top-left host coordinate).
//   - Pattern: index of the winning pattern in the set.
//   - Snapshot: a copy of the matched host cells, owned by the caller.
type Match[T any] struct {
	X, Y     int
	Pattern  int
	Snapshot *grid.Grid[T]
}

// NewPattern builds a pattern from rows[y][x] of rules.
//
// Errors:
//   - ErrEmptyPattern when rows is empty.
//   - grid.ErrNonRectangular for ragged rows.
//   - ErrNilRule when a cell is nil (wrapped with its coordinates).
func NewPattern[T any](rows ...[]Rule[T]) (Pattern[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyPattern
	}
	for y, row := range rows {
		for x, r := range row {
			if r == nil {
				return nil, fmt.Errorf("rewrite: NewPattern(%d,%d): %w", x, y, ErrNilRule)
			}
		}
	}
	p, err := grid.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("rewrite: NewPattern: %w", err)
	}

	return p, nil
}

// MustPattern is NewPattern for static pattern tables; it panics on error.
func MustPattern[T any](rows ...[]Rule[T]) Pattern[T] {
	p, err := NewPattern(rows...)
	if err != nil {
		panic(err)
	}

	return p
}

// Row is shorthand for one pattern row: Row(a, b, c) == []Rule[T]{a, b, c}.
func Row[T any](rules ...Rule[T]) []Rule[T] { return rules }

// Variants expands p into its deduplicated rotation/reflection orbit.
// Rules are compared by identity (Same).
func Variants[T any](p Pattern[T]) PatternSet[T] {
	return grid.Variants(p, Same[T])
}

// Expand returns the concatenated variants of every pattern in set, preserving
// set order (all variants of set[0] first).
func Expand[T any](set PatternSet[T]) PatternSet[T] {
	out := make(PatternSet[T], 0, len(set)*8)
	for _, p := range set {
		out = append(out, Variants(p)...)
	}

	return out
}
