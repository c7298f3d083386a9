package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/gridroute/dijkstra"
	"github.com/katalvlaran/gridroute/gridgraph"
)

// serpentine builds an n×n grid of horizontal walls with alternating gaps,
// forcing a long winding path from corner to corner.
func serpentine(b *testing.B, n int) *gridgraph.Adjacency {
	b.Helper()
	occ := make([]bool, n*n)
	for row := 1; row < n; row += 2 {
		gap := n - 1
		if (row/2)%2 == 1 {
			gap = 0
		}
		for col := 0; col < n; col++ {
			occ[row*n+col] = col != gap
		}
	}
	g, err := gridgraph.NewGrid(n, n, occ)
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}

	return gridgraph.Build(g)
}

func benchmarkStrategy(b *testing.B, n int, s dijkstra.Strategy) {
	a := serpentine(b, n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.ShortestPath(a, 0, n*n-1, dijkstra.WithStrategy(s)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkShortestPath_Scan64(b *testing.B) { benchmarkStrategy(b, 64, dijkstra.LinearScan) }
func BenchmarkShortestPath_Heap64(b *testing.B) { benchmarkStrategy(b, 64, dijkstra.BinaryHeap) }
func BenchmarkShortestPath_Heap512(b *testing.B) {
	benchmarkStrategy(b, 512, dijkstra.BinaryHeap)
}
