// SPDX-License-Identifier: MIT

// Package grid - geometry transforms.
//
// All transforms allocate a new grid and are written on top of At/Set (via
// copyCell), so absence propagates: a hole in the source is a hole in the
// result. Rotate is composed purely from Transpose and the two mirrors:
//
//	  0° = copy
//	 90° = MirrorX ∘ Transpose
//	180° = MirrorX ∘ MirrorY
//	270° = MirrorY ∘ Transpose

package grid

import "fmt"

// ctxRotate tags Rotate errors for grep-ability.
const ctxRotate = "Rotate"

// Slice copies the w×h window whose top-left corner is (sx,sy) in g.
// Source cells outside g become holes in the slice instead of failing.
//
// Errors:
//   - ErrInvalidDimensions when w <= 0 or h <= 0.
//
// Complexity: O(w*h).
func Slice[T any](g *Grid[T], sx, sy, w, h int) (*Grid[T], error) {
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidDimensions
	}
	out := newGrid[T](w, h)
	Sequential.Walk(w, h, func(x, y int) Step {
		copyCell(out, x, y, g, sx+x, sy+y)
		return Continue
	})

	return out, nil
}

// Transpose swaps the axes: result(x,y) = g(y,x), result is h×w.
// Complexity: O(w*h).
func Transpose[T any](g *Grid[T]) *Grid[T] {
	out := newGrid[T](g.h, g.w)
	Sequential.Walk(out.w, out.h, func(x, y int) Step {
		copyCell(out, x, y, g, y, x)
		return Continue
	})

	return out
}

// MirrorX reverses the x axis: result(x,y) = g(w-1-x, y).
// Complexity: O(w*h).
func MirrorX[T any](g *Grid[T]) *Grid[T] {
	out := newGrid[T](g.w, g.h)
	last := g.w - 1
	Sequential.Walk(g.w, g.h, func(x, y int) Step {
		copyCell(out, x, y, g, last-x, y)
		return Continue
	})

	return out
}

// MirrorY reverses the y axis: result(x,y) = g(x, h-1-y).
// Complexity: O(w*h).
func MirrorY[T any](g *Grid[T]) *Grid[T] {
	out := newGrid[T](g.w, g.h)
	last := g.h - 1
	Sequential.Walk(g.w, g.h, func(x, y int) Step {
		copyCell(out, x, y, g, x, last-y)
		return Continue
	})

	return out
}

// Rotate turns g clockwise by deg degrees.
// MAIN DESCRIPTION:
//   - Rotation by any multiple of 90, negative values included.
//
// Implementation:
//   - Stage 1: reject deg%90 != 0 with ErrInvalidRotation.
//   - Stage 2: normalize into [0,360).
//   - Stage 3: compose mirrors and transpose (see file header).
//
// Behavior highlights:
//   - Rotate(g, 0) and Rotate(g, 360) return a copy, never g itself.
//
// Errors:
//   - ErrInvalidRotation (wrapped with the offending degree).
//
// Complexity:
//   - Time O(w*h) per composed primitive (at most two).
func Rotate[T any](g *Grid[T], deg int) (*Grid[T], error) {
	if deg%90 != 0 {
		return nil, fmt.Errorf("%s(%d): %w", ctxRotate, deg, ErrInvalidRotation)
	}
	switch ((deg % 360) + 360) % 360 {
	case 90:
		return rotate90(g), nil
	case 180:
		return MirrorX(MirrorY(g)), nil
	case 270:
		return MirrorY(Transpose(g)), nil
	default:
		return g.Clone(), nil
	}
}

// rotate90 is the infallible quarter turn used by Variants.
func rotate90[T any](g *Grid[T]) *Grid[T] {
	return MirrorX(Transpose(g))
}
