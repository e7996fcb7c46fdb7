package pancake_test

import (
	"testing"

	"github.com/katalvlaran/pancake/pancake"
)

// BenchmarkSuccessors measures expansion of a 16-pancake state.
func BenchmarkSuccessors(b *testing.B) {
	s, _ := pancake.Shuffled(16, pancake.NewRand(1))
	root := pancake.NewState(s, nil)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = root.Successors()
	}
}

// BenchmarkKey measures canonical key construction.
func BenchmarkKey(b *testing.B) {
	s, _ := pancake.Shuffled(16, pancake.NewRand(1))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pancake.Key(s)
	}
}
