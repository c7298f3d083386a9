package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridroute/gridgraph"
)

// randomGrid builds an n×n grid with roughly 25% blocked cells.
func randomGrid(b *testing.B, n int) *gridgraph.Grid {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	occ := make([]bool, n*n)
	for i := range occ {
		occ[i] = rng.Intn(4) == 0
	}
	g, err := gridgraph.NewGrid(n, n, occ)
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}

	return g
}

// BenchmarkBuild measures adjacency construction on a 1000×1000 grid.
// Complexity: O(rows×cols)
func BenchmarkBuild(b *testing.B) {
	g := randomGrid(b, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gridgraph.Build(g)
	}
}

// BenchmarkComponents measures region labelling on a 1000×1000 grid.
// Complexity: O(rows×cols)
func BenchmarkComponents(b *testing.B) {
	g := randomGrid(b, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Components()
	}
}
