// SPDX-License-Identifier: MIT

// Package generator - functional options.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors PANIC on meaningless inputs (nil RNG / noise,
//     negative counts, densities outside [0,1]).
//   • Determinism is explicit: WithSeed or WithRand; the default is DefaultSeed.

package generator

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/tilegrid/grid"
	"github.com/katalvlaran/tilegrid/rewrite"
)

const (
	// DefaultSeed seeds the random stream when neither WithSeed nor WithRand is given.
	DefaultSeed int64 = 1
	// DefaultDensity is the default scatter / stub / door density.
	DefaultDensity = 0.1
	// DefaultGrowth is the default number of Rock growth passes.
	DefaultGrowth = 6
	// DefaultNoiseScale is the lattice spacing of the default TileMap noise.
	DefaultNoiseScale = 8.0
)

// config aggregates generator knobs.
type config struct {
	rng       *rand.Rand
	noise     Noise
	maxPasses int
	density   float64
	growth    int
}

// Option customizes a generator run.
type Option func(*config)

// WithSeed makes the run reproducible from seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand draws all randomness from r. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithNoise replaces TileMap's terrain source. Panics on nil.
func WithNoise(n Noise) Option {
	if n == nil {
		panic("generator: WithNoise(nil)")
	}
	return func(c *config) { c.noise = n }
}

// WithMaxPasses bounds every fixpoint loop; 0 selects W×H. Panics on negative n.
func WithMaxPasses(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("generator: WithMaxPasses(%d): must be >= 0", n))
	}
	return func(c *config) { c.maxPasses = n }
}

// WithDensity sets the scatter / stub / door density. Panics outside [0,1].
func WithDensity(d float64) Option {
	if !(d >= 0 && d <= 1) {
		panic(fmt.Sprintf("generator: WithDensity(%v): must be in [0,1]", d))
	}
	return func(c *config) { c.density = d }
}

// WithGrowth sets the number of Rock growth passes. Panics on negative n.
func WithGrowth(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("generator: WithGrowth(%d): must be >= 0", n))
	}
	return func(c *config) { c.growth = n }
}

// newConfig applies opts over the defaults.
// The default noise is seeded from the stream so one seed fixes the whole map.
func newConfig(opts []Option) *config {
	c := &config{density: DefaultDensity, growth: DefaultGrowth}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(DefaultSeed))
	}
	if c.noise == nil {
		c.noise = ValueNoise(c.rng.Int63(), DefaultNoiseScale)
	}

	return c
}

// passLimit returns the fixpoint bound for a w×h map.
func (c *config) passLimit(w, h int) int {
	if c.maxPasses > 0 {
		return c.maxPasses
	}
	return w * h
}

// engine returns a tile engine whose shuffled scans share c's stream.
func (c *config) engine() *rewrite.Engine[Tile] {
	return rewrite.NewEngine[Tile](rewrite.WithRand(c.rng))
}

// chance reports true with probability p.
func (c *config) chance(p float64) bool { return c.rng.Float64() < p }

// blank returns a w×h map of v, wrapping dimension errors with the caller's name.
func blank(name string, w, h int, v Tile) (*grid.Grid[Tile], error) {
	g, err := grid.NewFill(w, h, v)
	if err != nil {
		return nil, fmt.Errorf("generator: %s(%d,%d): %w", name, w, h, err)
	}
	return g, nil
}
