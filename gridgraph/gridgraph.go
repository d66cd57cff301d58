// SPDX-License-Identifier: MIT

package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/tilegrid/grid"
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "conn4"
	case Conn8:
		return "conn8"
	default:
		return fmt.Sprintf("Connectivity(%d)", int(c))
	}
}

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// options contains tunable parameters for grid analysis.
type options struct {
	conn Connectivity
}

// Option customizes a GridGraph.
type Option func(*options)

// WithConnectivity selects Conn4 or Conn8. Panics on any other value.
func WithConnectivity(c Connectivity) Option {
	if c != Conn4 && c != Conn8 {
		panic(fmt.Sprintf("gridgraph: WithConnectivity(%d): unknown connectivity", int(c)))
	}
	return func(o *options) { o.conn = c }
}

// GridGraph views a grid as an unweighted graph of open cells.
// Cell indices are row-major, as grid.Grid.Coordinate expects.
type GridGraph[T any] struct {
	g        *grid.Grid[T]
	passable func(T) bool
	conn     Connectivity
	offsets  [][2]int
}

// New wraps g with the open-cell predicate passable.
// Returns ErrNilGrid if g or passable is nil.
// Complexity: O(1); the grid is not copied.
func New[T any](g *grid.Grid[T], passable func(T) bool, opts ...Option) (*GridGraph[T], error) {
	if g == nil || passable == nil {
		return nil, ErrNilGrid
	}
	o := options{conn: Conn4}
	for _, opt := range opts {
		opt(&o)
	}
	offsets := offsets4
	if o.conn == Conn8 {
		offsets = offsets8
	}

	return &GridGraph[T]{g: g, passable: passable, conn: o.conn, offsets: offsets}, nil
}

// Grid returns the underlying grid.
func (gg *GridGraph[T]) Grid() *grid.Grid[T] { return gg.g }

// Connectivity returns the neighbor mode.
func (gg *GridGraph[T]) Connectivity() Connectivity { return gg.conn }

// InBounds reports whether (x,y) lies within the grid boundaries.
func (gg *GridGraph[T]) InBounds(x, y int) bool { return gg.g.InBounds(x, y) }

// Index maps (x,y) to a row-major index: y*Width + x.
func (gg *GridGraph[T]) Index(x, y int) int { return y*gg.g.Width() + x }

// Coordinate converts a row-major index back to (x,y).
func (gg *GridGraph[T]) Coordinate(idx int) (x, y int) { return gg.g.Coordinate(idx) }

// Open reports whether (x,y) is in bounds, present and passable.
func (gg *GridGraph[T]) Open(x, y int) bool {
	v, ok := gg.g.At(x, y)
	return ok && gg.passable(v)
}

// NeighborOffsets returns the (dx,dy) offsets used for adjacency.
// The returned slice must not be modified.
func (gg *GridGraph[T]) NeighborOffsets() [][2]int { return gg.offsets }
