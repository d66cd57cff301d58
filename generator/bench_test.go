package generator_test

import (
	"testing"

	"github.com/katalvlaran/tilegrid/generator"
)

// BenchmarkTileMap measures a full 128×128 terrain run (noise, scatter, shores, roads).
func BenchmarkTileMap(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := generator.TileMap(128, 128, generator.WithSeed(int64(i))); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkWalls measures border-grown walls on a 96×64 map.
func BenchmarkWalls(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := generator.Walls(96, 64, generator.WithSeed(int64(i))); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRockFormation measures growth and smoothing of a 64×64 blob.
func BenchmarkRockFormation(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := generator.RockFormation(64, 64, generator.WithSeed(int64(i)), generator.WithGrowth(12)); err != nil {
			b.Fatal(err)
		}
	}
}
