// Package pathfinder answers grid routing requests: given an occupancy grid
// and two cell indices, it returns one shortest 4-connected path between them.
//
// What:
//
//   - ComputePath validates the request, builds the grid adjacency with
//     package gridgraph and searches it with package dijkstra.
//   - Compute does the same and also reports the step count and the number
//     of finalized vertices.
//
// Behavior:
//
//   - Invalid shape or out-of-range indices fail fast with a gridgraph
//     sentinel error and no result.
//   - An unreachable end is not an error: the path is empty.
//   - Blocked endpoints are not rejected. start == end yields [start] even
//     when the cell is blocked; otherwise a blocked endpoint is unreachable.
//
// Every call owns its grid copy and search state, so concurrent calls need
// no coordination.
package pathfinder
