// SPDX-License-Identifier: MIT

// Package grid - dense storage (row-major) & bounds-checked accessors.
//
// Purpose:
//   - Provide a flat row-major buffer with the explicit index formula x + y*w.
//   - Centralize bounds safety in At/Set: every other operation is written on
//     top of them, so no derived operation can read or write out of range.
//   - Model "absent" cells (holes) without an error path: reads outside the
//     grid, or of a cell sampled from outside a source by Slice, report ok=false.
//
// AI-Hints:
//   - Use NewFunc to seed values; the generator runs in the same row-major order
//     as Sequential traversal, so seeding is reproducible.
//   - Grids have no shared storage: Clone before handing a grid to code that
//     must not observe later mutations.
//
// Complexity quicksheet:
//   - New/NewFill/NewFunc/FromRows/Clone: O(w*h); At/Set/InBounds: O(1).

package grid

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
	_fmtHole     = "_"
)

// Grid is a fixed-size rectangular buffer of T values in row-major order.
//   - w,h hold the dimensions (both > 0, fixed at construction).
//   - data has length exactly w*h (offset = x + y*w).
//   - holes is nil for every grid except slices that sampled outside their source.
type Grid[T any] struct {
	w, h  int    // width (columns) and height (rows)
	data  []T    // contiguous row-major storage, len == w*h
	holes []bool // lazily allocated absent-cell mask, len == w*h when non-nil
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Grid[int])(nil)

// New creates a w×h grid filled with the zero value of T.
//
// Errors:
//   - ErrInvalidDimensions when w <= 0 or h <= 0.
//
// Complexity: O(w*h) time and space.
func New[T any](w, h int) (*Grid[T], error) {
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidDimensions
	}

	return newGrid[T](w, h), nil
}

// NewFill creates a w×h grid with every cell set to v.
// Complexity: O(w*h).
func NewFill[T any](w, h int, v T) (*Grid[T], error) {
	g, err := New[T](w, h)
	if err != nil {
		return nil, err
	}
	Fill(Sequential, g, v)

	return g, nil
}

// NewFunc creates a w×h grid seeded by fn, which is invoked exactly once per
// cell in row-major order (the Sequential order).
//
// Inputs:
//   - w, h: positive dimensions.
//   - fn:   generator receiving cell coordinates.
//
// Errors:
//   - ErrInvalidDimensions when w <= 0 or h <= 0.
//
// Complexity: O(w*h) calls of fn.
func NewFunc[T any](w, h int, fn func(x, y int) T) (*Grid[T], error) {
	g, err := New[T](w, h)
	if err != nil {
		return nil, err
	}
	Seed(Sequential, g, fn)

	return g, nil
}

// FromRows builds a grid from rows[y][x]. The input is copied.
//
// Errors:
//   - ErrEmptyGrid when there are no rows or the first row is empty.
//   - ErrNonRectangular when rows differ in length.
//
// Complexity: O(w*h).
func FromRows[T any](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w, h := len(rows[0]), len(rows)
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	return NewFunc(w, h, func(x, y int) T { return rows[y][x] })
}

// newGrid allocates a zero grid without validation; callers guarantee w,h > 0.
func newGrid[T any](w, h int) *Grid[T] {
	return &Grid[T]{w: w, h: h, data: make([]T, w*h)}
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.h }

// Size packs Width() and Height() into a single call.
func (g *Grid[T]) Size() (w, h int) { return g.w, g.h }

// Len returns the number of cells (w*h).
func (g *Grid[T]) Len() int { return len(g.data) }

// InBounds reports whether (x,y) lies within the grid.
// Complexity: O(1).
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// index maps in-bounds (x,y) to the row-major offset x + y*w.
func (g *Grid[T]) index(x, y int) int {
	return x + y*g.w
}

// Coordinate converts a row-major offset back to (x,y).
// Complexity: O(1).
func (g *Grid[T]) Coordinate(idx int) (x, y int) {
	return idx % g.w, idx / g.w
}

// At returns the value at (x,y).
// MAIN DESCRIPTION:
//   - The only bounds-checked read in the package.
//
// Behavior highlights:
//   - Out-of-range coordinates yield (zero, false), never an error or panic.
//   - Holes (cells sampled from outside a source by Slice) also yield (zero, false).
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Grid[T]) At(x, y int) (T, bool) {
	var zero T
	if !g.InBounds(x, y) {
		return zero, false
	}
	i := g.index(x, y)
	if g.holes != nil && g.holes[i] {
		return zero, false
	}

	return g.data[i], true
}

// Set stores v at (x,y) and reports whether the write happened.
// MAIN DESCRIPTION:
//   - The only bounds-checked write in the package.
//
// Behavior highlights:
//   - Out-of-range writes are silently ignored (false); the buffer is untouched.
//   - Writing a hole fills it.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Grid[T]) Set(x, y int, v T) bool {
	if !g.InBounds(x, y) {
		return false
	}
	i := g.index(x, y)
	g.data[i] = v
	if g.holes != nil {
		g.holes[i] = false
	}

	return true
}

// Present reports whether (x,y) is in bounds and holds a value (not a hole).
func (g *Grid[T]) Present(x, y int) bool {
	_, ok := g.At(x, y)
	return ok
}

// clear turns an in-bounds cell into a hole. Out-of-range coordinates are ignored.
func (g *Grid[T]) clear(x, y int) {
	if !g.InBounds(x, y) {
		return
	}
	if g.holes == nil {
		g.holes = make([]bool, len(g.data))
	}
	i := g.index(x, y)
	var zero T
	g.data[i] = zero
	g.holes[i] = true
}

// copyCell moves one cell from src(sx,sy) to dst(dx,dy), carrying absence as a hole.
func copyCell[T any](dst *Grid[T], dx, dy int, src *Grid[T], sx, sy int) {
	if v, ok := src.At(sx, sy); ok {
		dst.Set(dx, dy, v)
		return
	}
	dst.clear(dx, dy)
}

// Clone returns a deep copy: same dimensions and contents, new buffer.
// Mutating the clone never affects g.
// Complexity: O(w*h).
func (g *Grid[T]) Clone() *Grid[T] {
	cp := &Grid[T]{w: g.w, h: g.h, data: make([]T, len(g.data))}
	copy(cp.data, g.data)
	if g.holes != nil {
		cp.holes = make([]bool, len(g.holes))
		copy(cp.holes, g.holes)
	}

	return cp
}

// Rows returns a copy of the contents as rows[y][x]. Holes appear as zero values.
// Complexity: O(w*h).
func (g *Grid[T]) Rows() [][]T {
	out := make([][]T, g.h)
	for y := 0; y < g.h; y++ {
		out[y] = make([]T, g.w)
		copy(out[y], g.data[y*g.w:(y+1)*g.w])
	}

	return out
}

// String renders rows as "[a, b, c]\n" lines with %v; holes print as "_".
// Intended for diagnostics and test failure messages, not hot paths.
func (g *Grid[T]) String() string {
	var b strings.Builder
	for y := 0; y < g.h; y++ {
		b.WriteString(_fmtRowOpen)
		for x := 0; x < g.w; x++ {
			if v, ok := g.At(x, y); ok {
				fmt.Fprintf(&b, "%v", v)
			} else {
				b.WriteString(_fmtHole)
			}
			if x+1 < g.w {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
