// SPDX-License-Identifier: MIT

// Package weighted turns a record of non-negative weights into a single
// sampled key. Rewrite rules use it to choose the next cell value
// probabilistically from a static table such as {Grass: 6, Rock: 1}.
//
// Sampling policy:
//   - Entries are sorted ASCENDING by weight (ties broken by key) before the
//     running sum is accumulated; small weights are summed first, which keeps
//     the floating-point error of the cumulative sums low.
//   - The first entry whose cumulative (normalized) sum is ≥ a uniform draw in
//     [0,1) wins. Zero-weight entries are never selected.
//   - A draw that exceeds the final sum through rounding selects the heaviest entry.
//
// Degenerate input:
//   - Normalize returns an all-zero record unchanged (no division by zero).
//   - Pick/NewTable reject it with ErrNoChoice instead of looping or guessing.
//
// Concurrency:
//   - Functions are pure apart from the caller's *rand.Rand, which is not
//     goroutine-safe.
package weighted

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"slices"
)

var (
	// ErrNoChoice indicates an empty record or one whose weights sum to zero.
	ErrNoChoice = errors.New("weighted: no selectable entry")

	// ErrInvalidWeight indicates a negative, NaN or infinite weight.
	ErrInvalidWeight = errors.New("weighted: weight must be finite and non-negative")

	// ErrNilRand indicates that a nil *rand.Rand was supplied to a sampler.
	ErrNilRand = errors.New("weighted: rng is required")
)

// Normalize returns a copy of w with every weight divided by the total.
// When the total is zero (including the empty record) w itself is returned
// unchanged; callers must treat that as "no valid choice".
//
// Complexity: O(n).
func Normalize[K comparable](w map[K]float64) map[K]float64 {
	var total float64
	for _, v := range w {
		total += v
	}
	if total == 0 {
		return w
	}
	out := make(map[K]float64, len(w))
	for k, v := range w {
		out[k] = v / total
	}

	return out
}

// entry is one key with its normalized weight and running sum.
type entry[K cmp.Ordered] struct {
	key K
	p   float64 // normalized weight
	cum float64 // cumulative normalized weight including this entry
}

// Table is a pre-sorted, normalized sampling table for repeated picks from
// the same record. It is immutable once built.
type Table[K cmp.Ordered] struct {
	entries []entry[K]
}

// NewTable validates w and builds the ascending cumulative table.
// MAIN DESCRIPTION:
//   - Validate weights, normalize, sort ascending, accumulate.
//
// Errors:
//   - ErrInvalidWeight for negative/NaN/Inf weights (wrapped with the key).
//   - ErrNoChoice when w is empty or sums to zero.
//
// Complexity:
//   - Time O(n log n), Space O(n).
func NewTable[K cmp.Ordered](w map[K]float64) (*Table[K], error) {
	for k, v := range w {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("weighted: key %v: %w", k, ErrInvalidWeight)
		}
	}
	norm := Normalize(w)
	entries := make([]entry[K], 0, len(norm))
	for k, p := range norm {
		if p > 0 {
			entries = append(entries, entry[K]{key: k, p: p})
		}
	}
	if len(entries) == 0 {
		return nil, ErrNoChoice
	}
	slices.SortFunc(entries, func(a, b entry[K]) int {
		if c := cmp.Compare(a.p, b.p); c != 0 {
			return c
		}
		return cmp.Compare(a.key, b.key)
	})
	var sum float64
	for i := range entries {
		sum += entries[i].p
		entries[i].cum = sum
	}

	return &Table[K]{entries: entries}, nil
}

// MustTable is NewTable for static records; it panics on invalid input.
func MustTable[K cmp.Ordered](w map[K]float64) *Table[K] {
	t, err := NewTable(w)
	if err != nil {
		panic(err)
	}

	return t
}

// Len returns the number of selectable (non-zero) entries.
func (t *Table[K]) Len() int { return len(t.entries) }

// Keys returns the selectable keys in ascending weight order.
func (t *Table[K]) Keys() []K {
	out := make([]K, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.key
	}

	return out
}

// Sample maps a draw r in [0,1) to a key.
func (t *Table[K]) Sample(r float64) K {
	for _, e := range t.entries {
		if e.cum >= r {
			return e.key
		}
	}

	return t.entries[len(t.entries)-1].key
}

// Pick draws one key using rng. A nil rng panics with ErrNilRand.
func (t *Table[K]) Pick(rng *rand.Rand) K {
	if rng == nil {
		panic(ErrNilRand)
	}

	return t.Sample(rng.Float64())
}

// Pick samples one key from w with a single draw from rng.
//
// Errors:
//   - ErrNilRand, ErrInvalidWeight, ErrNoChoice.
//
// Complexity: O(n log n); build a Table once for repeated picks.
func Pick[K cmp.Ordered](w map[K]float64, rng *rand.Rand) (K, error) {
	var zero K
	if rng == nil {
		return zero, ErrNilRand
	}
	t, err := NewTable(w)
	if err != nil {
		return zero, err
	}

	return t.Sample(rng.Float64()), nil
}
