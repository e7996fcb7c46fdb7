package search_test

import (
	"testing"

	"github.com/katalvlaran/pancake/pancake"
	"github.com/katalvlaran/pancake/search"
)

// BenchmarkAStar_Ten solves a fixed ten-pancake stack with A*.
func BenchmarkAStar_Ten(b *testing.B) {
	in, _ := pancake.Shuffled(10, pancake.NewRand(99))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = search.AStarSearch(in)
	}
}

// BenchmarkUniformCost_Seven solves a fixed seven-pancake stack with UCS.
func BenchmarkUniformCost_Seven(b *testing.B) {
	in, _ := pancake.Shuffled(7, pancake.NewRand(99))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = search.UniformCostSearch(in)
	}
}

// BenchmarkHeuristics compares A* under the two GAP variants.
func BenchmarkHeuristics(b *testing.B) {
	in, _ := pancake.Shuffled(12, pancake.NewRand(7))

	b.Run("Gap", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = search.AStarSearch(in)
		}
	})
	b.Run("GapWithPlate", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = search.AStarSearch(in, search.WithHeuristic(pancake.GapWithPlate))
		}
	})
}
