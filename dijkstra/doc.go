// Package dijkstra provides a label-setting shortest-path search over the
// 4-connected grid graphs built by package gridgraph.
//
// Overview:
//
//   - ShortestPath finds one minimum-step path between two cells. Every edge
//     costs 1, so the first time the end vertex is finalized its distance is optimal.
//   - The search stops as soon as the end vertex is finalized; the remaining
//     vertices are never examined.
//   - The path is rebuilt by walking an integer predecessor array from end
//     back to start and reversing it.
//
// Key features:
//
//   - Reproducible path choice: WithTieBreak fixes which of several equally
//     close vertices is finalized first, and therefore which shortest path is returned.
//   - Two selection strategies with identical results: LinearScan for small grids,
//     BinaryHeap for large ones.
//   - Blocked cells need no special casing: they have no edges. A blocked start
//     still gets distance 0, so start == end always yields [start].
//
// Performance and complexity:
//
//   - LinearScan: O(V²) time, O(V) space.
//   - BinaryHeap: O((V + E) log V) time, O(V + E) space with lazy deletion.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph, ErrEmptyGraph: no graph to search.
//   - ErrVertexOutOfRange: start or end outside [0, V).
//   - ErrBadTieBreak, ErrBadStrategy: unknown option values.
//
// An unreachable end is not an error; Result.Path is empty and Result.Distance is -1.
//
// API reference:
//
//	func ShortestPath(
//	    g *gridgraph.Adjacency,
//	    start, end int,
//	    opts ...Option,
//	) (Result, error)
//
// Thread safety:
//
//   - Each call allocates its own search state; concurrent calls on the same
//     *gridgraph.Adjacency are safe because the adjacency is only read.
package dijkstra
