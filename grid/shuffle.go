// SPDX-License-Identifier: MIT

// Package grid - shuffled traversal.
//
// Shuffler draws the row order and the column order from two independently
// permuted index sequences. The visiting order is therefore a permutation of
// the same w·h cells as Sequential, but without a fixed starting corner, which
// keeps rewrite passes from growing structures in one preferred direction.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe and the permutation buffers are
//     owned by the Shuffler. Use one Shuffler per goroutine.
//   - A walk must complete before the same Shuffler starts another one; a nested
//     Walk panics with ErrReentrantWalk instead of silently clobbering the buffers.

package grid

import "math/rand"

// defaultShuffleSeed is used when NewShuffler receives a nil RNG.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultShuffleSeed int64 = 1

// Shuffler is a caller-owned arena for randomized traversal.
// Its permutation buffers grow lazily to the largest dimensions seen and are
// reused across walks, so steady-state walks do not allocate.
type Shuffler struct {
	rng  *rand.Rand
	rows []int // permutation buffer for y
	cols []int // permutation buffer for x
	busy bool  // set for the duration of a walk
}

// Compile-time assertion: *Shuffler is a Walker.
var _ Walker = (*Shuffler)(nil)

// NewShuffler returns a Shuffler drawing from rng.
// A nil rng selects a deterministic default stream (seed 1).
func NewShuffler(rng *rand.Rand) *Shuffler {
	if rng == nil {
		rng = rand.New(rand.NewSource(defaultShuffleSeed))
	}

	return &Shuffler{rng: rng}
}

// NewSeededShuffler is shorthand for NewShuffler(rand.New(rand.NewSource(seed))).
func NewSeededShuffler(seed int64) *Shuffler {
	return NewShuffler(rand.New(rand.NewSource(seed)))
}

// Rand exposes the underlying RNG so callers can share one stream between the
// traversal order and their own draws (e.g. weighted picks inside rewrite rules).
func (s *Shuffler) Rand() *rand.Rand { return s.rng }

// Walk implements Walker with independently permuted row and column orders.
// MAIN DESCRIPTION:
//   - Visit every (x,y) exactly once in a randomized order.
//
// Implementation:
//   - Stage 1: mark busy (panic on nested use).
//   - Stage 2: permute 0..h-1 into rows and 0..w-1 into cols (Fisher–Yates).
//   - Stage 3: nested loops over rows then cols; stop on Stop.
//
// Complexity:
//   - Time O(w*h + w + h), Space O(1) amortized (buffers reused).
func (s *Shuffler) Walk(w, h int, fn func(x, y int) Step) Step {
	if w <= 0 || h <= 0 {
		return Continue
	}
	if s.busy {
		panic(ErrReentrantWalk)
	}
	s.busy = true
	defer func() { s.busy = false }()

	s.rows = permInto(s.rows, h, s.rng)
	s.cols = permInto(s.cols, w, s.rng)
	rows, cols := s.rows[:h], s.cols[:w]
	for _, y := range rows {
		for _, x := range cols {
			if fn(x, y) == Stop {
				return Stop
			}
		}
	}

	return Continue
}

// permInto writes a random permutation of 0..n-1 into buf[:n], growing buf if needed.
func permInto(buf []int, n int, rng *rand.Rand) []int {
	if cap(buf) < n {
		buf = make([]int, n)
	}
	buf = buf[:n]
	for i := range buf {
		buf[i] = i
	}
	// Fisher–Yates, in place.
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		buf[i], buf[j] = buf[j], buf[i]
	}

	return buf
}
