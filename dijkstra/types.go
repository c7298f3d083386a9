// Package dijkstra defines core types and configuration options
// for label-setting shortest-path search on grid adjacencies.
//
// Options:
//
//	– TieBreak: which vertex wins when several share the minimum distance.
//	– Strategy: how the next vertex is selected (linear scan or binary heap).
//
// Errors (sentinel):
//
//	– ErrNilGraph          if the adjacency pointer is nil.
//	– ErrEmptyGraph        if the adjacency has no vertices.
//	– ErrVertexOutOfRange  if start or end is not a vertex.
//	– ErrBadTieBreak       if an unknown TieBreak is configured.
//	– ErrBadStrategy       if an unknown Strategy is configured.
package dijkstra

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by ShortestPath.
var (
	// ErrNilGraph indicates that a nil *gridgraph.Adjacency was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrEmptyGraph indicates an adjacency with zero vertices.
	ErrEmptyGraph = errors.New("dijkstra: graph has no vertices")

	// ErrVertexOutOfRange indicates a start or end index outside [0, V).
	ErrVertexOutOfRange = errors.New("dijkstra: vertex out of range")

	// ErrBadTieBreak indicates an unknown TieBreak value.
	ErrBadTieBreak = errors.New("dijkstra: unknown tie-break policy")

	// ErrBadStrategy indicates an unknown Strategy value.
	ErrBadStrategy = errors.New("dijkstra: unknown selection strategy")
)

// TieBreak decides which vertex is finalized when several unvisited
// vertices share the minimum distance.
type TieBreak int

const (
	// LowestIndex picks the smallest vertex index among ties.
	LowestIndex TieBreak = iota

	// HighestIndex picks the largest vertex index among ties. This is the
	// policy of an ascending scan that keeps the last minimum it sees.
	HighestIndex
)

// String returns "lowest" or "highest".
func (t TieBreak) String() string {
	switch t {
	case LowestIndex:
		return "lowest"
	case HighestIndex:
		return "highest"
	default:
		return fmt.Sprintf("TieBreak(%d)", int(t))
	}
}

// ParseTieBreak converts "lowest" or "highest" (case-insensitive) to a TieBreak.
func ParseTieBreak(s string) (TieBreak, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lowest":
		return LowestIndex, nil
	case "highest":
		return HighestIndex, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadTieBreak, s)
	}
}

// Strategy selects how the minimum-distance vertex is found each round.
// Both strategies finalize vertices in the same order.
type Strategy int

const (
	// LinearScan scans all vertices each round: O(V²) overall, no extra memory.
	LinearScan Strategy = iota

	// BinaryHeap keeps a lazy min-heap of labels: O((V+E) log V) overall.
	BinaryHeap
)

// String returns "scan" or "heap".
func (s Strategy) String() string {
	switch s {
	case LinearScan:
		return "scan"
	case BinaryHeap:
		return "heap"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy converts "scan" or "heap" (case-insensitive) to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scan":
		return LinearScan, nil
	case "heap":
		return BinaryHeap, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadStrategy, s)
	}
}

// Options configures ShortestPath.
type Options struct {
	TieBreak TieBreak // Winner among equal minimum distances
	Strategy Strategy // Minimum-selection method
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// WithTieBreak sets the tie-break policy.
func WithTieBreak(t TieBreak) Option {
	return func(o *Options) {
		o.TieBreak = t
	}
}

// WithStrategy sets the selection strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// DefaultOptions returns the defaults: LowestIndex tie-break and LinearScan selection.
func DefaultOptions() Options {
	return Options{
		TieBreak: LowestIndex,
		Strategy: LinearScan,
	}
}

// validate reports unknown enum values.
func (o Options) validate() error {
	if o.TieBreak != LowestIndex && o.TieBreak != HighestIndex {
		return fmt.Errorf("%w: %d", ErrBadTieBreak, int(o.TieBreak))
	}
	if o.Strategy != LinearScan && o.Strategy != BinaryHeap {
		return fmt.Errorf("%w: %d", ErrBadStrategy, int(o.Strategy))
	}

	return nil
}

// Result is the outcome of one ShortestPath call.
type Result struct {
	// Path lists vertices from start to end inclusive; empty (not nil) if end is unreachable.
	Path []int
	// Distance is the number of steps, len(Path)-1, or -1 if end is unreachable.
	Distance int
	// Expanded counts vertices finalized before the search stopped.
	Expanded int
}

// Found reports whether a path to end exists.
func (r Result) Found() bool {
	return len(r.Path) > 0
}
