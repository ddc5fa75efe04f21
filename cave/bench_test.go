package cave_test

import (
	"testing"

	"github.com/katalvlaran/lvcave/cave"
)

// BenchmarkStep measures one erosion pass over a Size×Size grid.
// Complexity: O(N²·8)
func BenchmarkStep(b *testing.B) {
	g := cave.Initialize(cave.DefaultWallProbability, cave.NewSource(42))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cave.Step(g)
	}
}

// BenchmarkGenerate measures a full default run.
func BenchmarkGenerate(b *testing.B) {
	src := cave.NewSource(42)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cave.Generate(cave.DefaultWallProbability, cave.DefaultIterations, src, nil)
	}
}
