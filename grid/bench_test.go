package grid_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/tilegrid/grid"
)

// randomGrid builds an n×n grid with values in [0,4] from a fixed seed.
func randomGrid(b *testing.B, n int) *grid.Grid[int] {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	g, err := grid.NewFunc(n, n, func(int, int) int { return rng.Intn(5) })
	if err != nil {
		b.Fatalf("setup NewFunc failed: %v", err)
	}
	return g
}

// BenchmarkSequentialReduce measures a full deterministic fold.
// Complexity: O(W×H)
func BenchmarkSequentialReduce(b *testing.B) {
	g := randomGrid(b, 256)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = grid.Reduce(grid.Sequential, g, 0, func(acc, v, _, _ int) int { return acc + v })
	}
}

// BenchmarkShuffledReduce measures the shuffled walk; buffers are reused so it should not allocate.
func BenchmarkShuffledReduce(b *testing.B) {
	g := randomGrid(b, 256)
	s := grid.NewSeededShuffler(1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = grid.Reduce(s, g, 0, func(acc, v, _, _ int) int { return acc + v })
	}
}

// BenchmarkRotate90 measures a quarter turn of a 200×200 grid.
func BenchmarkRotate90(b *testing.B) {
	g := randomGrid(b, 200)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = grid.Rotate(g, 90)
	}
}

// BenchmarkFindSubGrid searches a 3×3 block absent from the host (worst case).
func BenchmarkFindSubGrid(b *testing.B) {
	host := randomGrid(b, 128)
	sub, _ := grid.NewFill(3, 3, 9)
	eq := grid.Comparable[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = grid.FindSubGrid(host, sub, eq)
	}
}
