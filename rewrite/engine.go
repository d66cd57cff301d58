// SPDX-License-Identifier: MIT

// Package rewrite - Engine construction and functional options.
//
// Contract (strict):
//   • Options are functional (type Option func(*engineConfig)).
//   • Option constructors PANIC on meaningless inputs (nil RNG / shuffler).
//   • Determinism is explicit: shuffled scans draw from WithSeed / WithRand.

package rewrite

import (
	"math/rand"

	"github.com/katalvlaran/tilegrid/grid"
)

// DefaultSeed is the shuffle seed used when no WithSeed/WithRand is given.
const DefaultSeed int64 = 1

// engineConfig aggregates Engine knobs.
type engineConfig struct {
	shuffler *grid.Shuffler
}

// Option customizes an Engine.
type Option func(*engineConfig)

// WithSeed makes shuffled scans reproducible from seed.
func WithSeed(seed int64) Option {
	return func(c *engineConfig) {
		c.shuffler = grid.NewSeededShuffler(seed)
	}
}

// WithRand makes shuffled scans draw from r. Panics on nil.
// Share r with weighted rules (Choose) to keep one reproducible stream.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("rewrite: WithRand(nil)")
	}
	return func(c *engineConfig) {
		c.shuffler = grid.NewShuffler(r)
	}
}

// WithShuffler hands the engine an existing shuffled walker. Panics on nil.
// The shuffler must not be walked by anyone else while the engine scans.
func WithShuffler(s *grid.Shuffler) Option {
	if s == nil {
		panic("rewrite: WithShuffler(nil)")
	}
	return func(c *engineConfig) {
		c.shuffler = s
	}
}

// Engine runs pattern scans over grids of T.
// It is single-threaded and not reentrant; see the package documentation.
type Engine[T any] struct {
	arena *Arena[T]
	busy  bool
}

// NewEngine returns an Engine with its own Arena.
func NewEngine[T any](opts ...Option) *Engine[T] {
	cfg := engineConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.shuffler == nil {
		cfg.shuffler = grid.NewSeededShuffler(DefaultSeed)
	}

	return &Engine[T]{arena: newArena[T](cfg.shuffler)}
}

// Arena exposes the engine's scratch state (diagnostics and tests).
func (e *Engine[T]) Arena() *Arena[T] { return e.arena }

// Rand returns the RNG behind shuffled scans.
func (e *Engine[T]) Rand() *rand.Rand { return e.arena.shuffler.Rand() }

// enter marks the engine busy; nested use is a programmer error.
func (e *Engine[T]) enter() {
	if e.busy {
		panic(ErrReentrant)
	}
	e.busy = true
}

// leave clears the busy flag.
func (e *Engine[T]) leave() { e.busy = false }

// walker selects the traversal for a scan.
func (e *Engine[T]) walker(shuffled bool) grid.Walker {
	if shuffled {
		return e.arena.shuffler
	}

	return grid.Sequential
}
