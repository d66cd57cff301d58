package grid_test

import (
	"testing"

	"github.com/katalvlaran/tilegrid/grid"
	"github.com/stretchr/testify/require"
)

// walkers returns both traversal modes so every combinator is checked against each.
func walkers() map[string]grid.Walker {
	return map[string]grid.Walker{
		"sequential": grid.Sequential,
		"shuffled":   grid.NewSeededShuffler(11),
	}
}

// counting builds a 4×3 grid holding 0..11 in row-major order.
func counting(t *testing.T) *grid.Grid[int] {
	t.Helper()
	g, err := grid.NewFunc(4, 3, func(x, y int) int { return x + y*4 })
	require.NoError(t, err)
	return g
}

// TestCombinatorsAgreeAcrossWalkers checks order-independent results are identical.
func TestCombinatorsAgreeAcrossWalkers(t *testing.T) {
	for name, wk := range walkers() {
		t.Run(name, func(t *testing.T) {
			g := counting(t)

			sum := grid.Reduce(wk, g, 0, func(acc, v, _, _ int) int { return acc + v })
			require.Equal(t, 66, sum) // 0+1+...+11

			hit, ok := grid.Find(wk, g, func(v, _, _ int) bool { return v == 6 })
			require.True(t, ok)
			require.Equal(t, grid.Hit[int]{X: 2, Y: 1, Value: 6}, hit)

			_, ok = grid.Find(wk, g, func(v, _, _ int) bool { return v > 100 })
			require.False(t, ok) // no hit is not an error

			require.True(t, grid.Some(wk, g, func(v, _, _ int) bool { return v == 11 }))
			require.False(t, grid.Some(wk, g, func(v, _, _ int) bool { return v < 0 }))
			require.True(t, grid.Every(wk, g, func(v, _, _ int) bool { return v >= 0 }))
			require.False(t, grid.Every(wk, g, func(v, _, _ int) bool { return v != 5 }))

			require.Equal(t, 6, grid.Count(wk, g, func(v, _, _ int) bool { return v%2 == 0 }))

			doubled := grid.Map(wk, g, func(v, _, _ int) int { return v * 2 })
			v, _ := doubled.At(3, 2)
			require.Equal(t, 22, v)
		})
	}
}

// TestManyVisitsEveryCell ensures Many never stops early and ORs results.
func TestManyVisitsEveryCell(t *testing.T) {
	for name, wk := range walkers() {
		t.Run(name, func(t *testing.T) {
			g := counting(t)
			calls := 0
			res := grid.Many(wk, g, func(v, _, _ int) bool {
				calls++
				return v == 0 // true exactly once
			})
			require.True(t, res)
			require.Equal(t, 12, calls) // full pass despite an early true

			calls = 0
			res = grid.Many(wk, g, func(int, int, int) bool { calls++; return false })
			require.False(t, res)
			require.Equal(t, 12, calls)
		})
	}
}

// TestFillAndSeed covers the in-place writers.
func TestFillAndSeed(t *testing.T) {
	for name, wk := range walkers() {
		t.Run(name, func(t *testing.T) {
			g, err := grid.New[string](3, 3)
			require.NoError(t, err)

			grid.Fill(wk, g, "x")
			require.True(t, grid.Every(wk, g, func(v string, _, _ int) bool { return v == "x" }))

			grid.Seed(wk, g, func(x, y int) string {
				if x == y {
					return "d"
				}
				return "."
			})
			require.Equal(t, [][]string{{"d", ".", "."}, {".", "d", "."}, {".", ".", "d"}}, g.Rows())
		})
	}
}

// TestMapKeepsHoles verifies holes are carried through Map without calling fn.
func TestMapKeepsHoles(t *testing.T) {
	g := counting(t)
	s, err := grid.Slice(g, 3, 2, 2, 2) // only (0,0) is inside the source
	require.NoError(t, err)

	calls := 0
	m := grid.Map(grid.Sequential, s, func(v, _, _ int) string { calls++; return "ok" })
	require.Equal(t, 1, calls)
	require.True(t, m.Present(0, 0))
	require.False(t, m.Present(1, 0))
	require.False(t, m.Present(0, 1))
}
