// Package dijkstra implements label-setting shortest-path search on
// 4-connected grid adjacencies with unit edge weights.
//
// Complexity:
//
//   - LinearScan: O(V²) time, O(V) space.
//   - BinaryHeap: O((V + E) log V) time, O(V + E) space.
//
// Notes on implementation choices:
//
//   - Search state lives in flat slices indexed by vertex; predecessors are
//     plain integers, -1 meaning "none".
//   - Relaxation overwrites the label of every unvisited neighbor. On a grid
//     adjacent vertices are never at equal distance, so this never raises a
//     label and a finalized vertex's distance never changes.
//   - The search stops as soon as end is finalized.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/gridroute/gridgraph"
)

const (
	unreached     = math.MaxInt
	noPredecessor = -1
)

// ShortestPath returns one shortest path from start to end in g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must have at least one vertex (ErrEmptyGraph).
//  3. start and end must lie in [0, V) (ErrVertexOutOfRange).
//  4. options must be known values (ErrBadTieBreak, ErrBadStrategy).
//
// An unreachable end is not an error: the Result has an empty Path and
// Distance -1. If start == end the Path is [start], even for a blocked cell.
func ShortestPath(g *gridgraph.Adjacency, start, end int, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	V := g.Order()
	if V == 0 {
		return Result{}, ErrEmptyGraph
	}
	if start < 0 || start >= V {
		return Result{}, fmt.Errorf("%w: start=%d, V=%d", ErrVertexOutOfRange, start, V)
	}
	if end < 0 || end >= V {
		return Result{}, fmt.Errorf("%w: end=%d, V=%d", ErrVertexOutOfRange, end, V)
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return Result{}, err
	}

	r := newRunner(g, cfg)
	r.init(start)
	r.process(end)

	return r.result(end), nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g        *gridgraph.Adjacency // Read-only input.
	options  Options
	dist     []int  // Best-known distance from start; unreached if none.
	visited  []bool // Finalized set.
	prev     []int  // Predecessor on the best-known path; noPredecessor if none.
	pq       vertexPQ
	nbuf     []int // Reused neighbor buffer.
	expanded int
}

func newRunner(g *gridgraph.Adjacency, cfg Options) *runner {
	V := g.Order()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]int, V),
		visited: make([]bool, V),
		prev:    make([]int, V),
		nbuf:    make([]int, 0, 4),
	}
	if cfg.Strategy == BinaryHeap {
		r.pq = vertexPQ{highFirst: cfg.TieBreak == HighestIndex}
	}

	return r
}

// init labels every vertex unreached except start, which gets distance 0.
func (r *runner) init(start int) {
	for v := range r.dist {
		r.dist[v] = unreached
		r.prev[v] = noPredecessor
	}
	r.dist[start] = 0
	if r.options.Strategy == BinaryHeap {
		heap.Push(&r.pq, label{v: start, dist: 0})
	}
}

// process finalizes vertices in order of distance until end is finalized
// or no reachable vertex remains.
func (r *runner) process(end int) {
	for {
		u := r.next()
		if u < 0 {
			return
		}
		r.visited[u] = true
		r.expanded++
		if u == end {
			return
		}
		r.relax(u)
	}
}

// next returns the unvisited vertex with minimum finite distance, or -1.
func (r *runner) next() int {
	if r.options.Strategy == BinaryHeap {
		return r.popMin()
	}

	return r.scanMin()
}

// scanMin walks vertices in ascending index order. With LowestIndex only a
// strictly smaller distance replaces the candidate; with HighestIndex an
// equal one does too.
func (r *runner) scanMin() int {
	best, bestDist := -1, unreached
	highFirst := r.options.TieBreak == HighestIndex
	for v, d := range r.dist {
		if r.visited[v] || d == unreached {
			continue
		}
		if d < bestDist || (highFirst && d == bestDist) {
			best, bestDist = v, d
		}
	}

	return best
}

// popMin discards stale heap entries and returns the first live one, or -1.
func (r *runner) popMin() int {
	for r.pq.Len() > 0 {
		it := heap.Pop(&r.pq).(label)
		if r.visited[it.v] || r.dist[it.v] != it.dist {
			continue
		}

		return it.v
	}

	return -1
}

// relax labels every unvisited neighbor of the freshly finalized u with
// dist[u]+1 and records u as its predecessor.
func (r *runner) relax(u int) {
	d := r.dist[u] + 1
	r.nbuf = r.g.AppendNeighbors(r.nbuf[:0], u)
	for _, v := range r.nbuf {
		if r.visited[v] {
			continue
		}
		r.dist[v] = d
		r.prev[v] = u
		if r.options.Strategy == BinaryHeap {
			heap.Push(&r.pq, label{v: v, dist: d})
		}
	}
}

// result walks predecessor links back from end and reverses them.
func (r *runner) result(end int) Result {
	if !r.visited[end] {
		return Result{Path: []int{}, Distance: -1, Expanded: r.expanded}
	}
	path := make([]int, 0, r.dist[end]+1)
	for at := end; at != noPredecessor; at = r.prev[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return Result{Path: path, Distance: r.dist[end], Expanded: r.expanded}
}

// label is a heap entry: vertex v had distance dist when it was pushed.
type label struct {
	v    int
	dist int
}

// vertexPQ is a min-heap of labels ordered by distance, then by vertex
// index in the tie-break direction. Stale labels are skipped on pop.
type vertexPQ struct {
	items     []label
	highFirst bool
}

// Len returns the number of items in the heap.
func (pq vertexPQ) Len() int { return len(pq.items) }

// Less orders by dist ascending, then by index per tie-break.
func (pq vertexPQ) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if a.dist != b.dist {
		return a.dist < b.dist
	}
	if pq.highFirst {
		return a.v > b.v
	}

	return a.v < b.v
}

// Swap swaps two elements in the heap.
func (pq vertexPQ) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

// Push adds a new element x onto the heap.
func (pq *vertexPQ) Push(x any) { pq.items = append(pq.items, x.(label)) }

// Pop removes and returns the last element.
func (pq *vertexPQ) Pop() any {
	old := pq.items
	n := len(old)
	it := old[n-1]
	pq.items = old[:n-1]

	return it
}
