// SPDX-License-Identifier: MIT

// Package grid - sub-grid equality & search.

package grid

// Equality decides whether two cell values are equal.
type Equality[T any] func(a, b T) bool

// Comparable returns the == equality for comparable cell types.
func Comparable[T comparable]() Equality[T] {
	return func(a, b T) bool { return a == b }
}

// IsSubGrid returns a predicate reporting whether sub occurs in host with its
// top-left corner at (sx,sy) under eq.
//
// Behavior highlights:
//   - false immediately when sub is larger than host in either dimension.
//   - Walks sub with Sequential and fails fast on the first host cell that is
//     absent (out of range or a hole) or unequal.
//
// Complexity: O(w*h) of sub in the worst case.
func IsSubGrid[T any](eq Equality[T]) func(host, sub *Grid[T], sx, sy int) bool {
	return func(host, sub *Grid[T], sx, sy int) bool {
		if sub.w > host.w || sub.h > host.h {
			return false
		}

		return ForEach(Sequential, sub, func(v T, x, y int) Step {
			hv, ok := host.At(sx+x, sy+y)
			if !ok || !eq(hv, v) {
				return Stop
			}
			return Continue
		}) == Continue
	}
}

// Equal reports whether a and b have the same dimensions and equal contents.
func Equal[T any](a, b *Grid[T], eq Equality[T]) bool {
	if a.w != b.w || a.h != b.h {
		return false
	}

	return IsSubGrid(eq)(a, b, 0, 0)
}

// FindSubGrid returns the first anchor (row-major) at which sub occurs in host.
// ok=false when sub does not occur or does not fit in host.
// Complexity: O(W*H*w*h) worst case.
func FindSubGrid[T any](host, sub *Grid[T], eq Equality[T]) (x, y int, ok bool) {
	if sub.w > host.w || sub.h > host.h {
		return 0, 0, false
	}
	isSub := IsSubGrid(eq)
	hit, ok := Find(Sequential, host, func(_ T, ax, ay int) bool {
		return isSub(host, sub, ax, ay)
	})

	return hit.X, hit.Y, ok
}

// FindSubGrids returns the first anchor (row-major) at which ANY of subs occurs,
// together with the index of the candidate that matched there. At a single
// anchor, candidates are tried in slice order.
func FindSubGrids[T any](host *Grid[T], subs []*Grid[T], eq Equality[T]) (x, y, idx int, ok bool) {
	isSub := IsSubGrid(eq)
	idx = -1
	hit, ok := Find(Sequential, host, func(_ T, ax, ay int) bool {
		for i, sub := range subs {
			if isSub(host, sub, ax, ay) {
				idx = i
				return true
			}
		}
		return false
	})
	if !ok {
		return 0, 0, -1, false
	}

	return hit.X, hit.Y, idx, true
}
