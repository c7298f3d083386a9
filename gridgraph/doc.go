// Package gridgraph treats a 2D occupancy grid as a graph, the input
// stage of grid shortest-path search.
//
// What:
//
//   - Grid wraps a rows×cols row-major []bool, where true marks an obstacle.
//   - Build turns a Grid into an Adjacency: one vertex per cell, an edge
//     between horizontally or vertically adjacent cells only if neither is blocked.
//   - Adjacency stores one Direction bitmask per vertex, so HasEdge is O(1)
//     and no per-vertex objects are allocated.
//   - Components groups free cells into connected regions.
//   - ParseText / Grid.String read and write a '.'/'#' text format.
//
// Why:
//
//   - Vertex identity is the cell index, so callers and solvers share
//     plain integers with no translation layer.
//   - Blocked cells remain vertices without edges; indices never shift.
//
// Complexity:
//
//   - Build:      O(rows×cols), Memory: O(rows×cols) bytes.
//   - Components: O(rows×cols), Memory: O(rows×cols).
//
// Errors:
//
//   - ErrEmptyGrid: rows or cols not positive, or no rows in input.
//   - ErrShapeMismatch: occupancy length differs from rows×cols.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrIndexOutOfRange: a cell index lies outside the grid.
//   - ErrBadCell: unknown character in a text grid.
package gridgraph
