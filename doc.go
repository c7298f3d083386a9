// Package gridroute computes shortest paths on 2D occupancy grids.
//
// A grid is rows×cols cells stored row-major, each either free or blocked.
// A request names a start and an end cell; the answer is the list of cell
// indices along one shortest path through free, orthogonally adjacent
// cells, or an empty list when the end cannot be reached.
//
// Packages:
//
//	gridgraph/  — Grid validation, 4-connected Adjacency, regions, text format
//	dijkstra/   — label-setting search with reproducible tie-breaking
//	pathfinder/ — ComputePath: validate, build, search, log
//	internal/   — configuration and the HTTP service
//	cmd/        — gridroute (CLI) and gridrouted (HTTP server)
//
// Quick ASCII example (S start, E end, # blocked):
//
//	S . .
//	# # .
//	E . .
//
// yields [0 1 2 5 8 7 6].
package gridroute
