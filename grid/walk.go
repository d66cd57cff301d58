// SPDX-License-Identifier: MIT

// Package grid - traversal strategies.
//
// A Walker enumerates every (x,y) of a w×h area exactly once and hands it to a
// callback. The callback's Step result is the early-termination signal: Stop
// aborts the whole walk and is propagated as the walk's own result.

package grid

// Step is the control-flow result of a traversal callback.
type Step uint8

const (
	// Continue asks the walker to visit the next cell.
	Continue Step = iota
	// Stop aborts the walk; the walker returns Stop to its caller.
	Stop
)

// String returns "continue" or "stop".
func (s Step) String() string {
	if s == Stop {
		return "stop"
	}

	return "continue"
}

// Walker enumerates the cells of a w×h area.
//
// Contract:
//   - fn is called once per (x,y) with 0 ≤ x < w, 0 ≤ y < h, no repeats, no omissions,
//     unless fn returns Stop, in which case the walk ends immediately.
//   - Walk returns Stop iff fn returned Stop; otherwise Continue.
//   - w <= 0 or h <= 0 means an empty area (fn is never called).
type Walker interface {
	Walk(w, h int, fn func(x, y int) Step) Step
}

// sequential walks offsets 0..w*h-1 in increasing (row-major) order.
type sequential struct{}

// Sequential is the deterministic row-major walker.
var Sequential Walker = sequential{}

// Walk implements Walker.
// Complexity: O(w*h) callback invocations at most.
func (sequential) Walk(w, h int, fn func(x, y int) Step) Step {
	if w <= 0 || h <= 0 {
		return Continue
	}
	n := w * h
	for i := 0; i < n; i++ {
		if fn(i%w, i/w) == Stop {
			return Stop
		}
	}

	return Continue
}
