// Package gridgraph provides utilities to treat a 2D occupancy grid
// as a graph. It supports:
//
//   - Validated construction from a flat row-major slice or a 2D slice
//   - Four-connectivity adjacency with O(1) edge lookup
//   - Identification of connected regions of free cells
//   - A plain-text grid format
//
// Cells with occupancy true are blocked; cells with occupancy false are free.
package gridgraph

import (
	"fmt"
	"math"
)

// NewGrid constructs a Grid from a row-major occupancy slice.
// It copies occupancy so later changes by the caller do not affect the Grid.
// Returns ErrEmptyGrid if rows or cols is not positive,
// ErrShapeMismatch if rows*cols overflows int or len(occupancy) != rows*cols.
// Complexity: O(rows×cols) time and memory.
func NewGrid(rows, cols int, occupancy []bool) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: rows=%d cols=%d", ErrEmptyGrid, rows, cols)
	}
	if cols > math.MaxInt/rows {
		return nil, fmt.Errorf("%w: rows=%d cols=%d overflows", ErrShapeMismatch, rows, cols)
	}
	if len(occupancy) != rows*cols {
		return nil, fmt.Errorf("%w: len=%d want %d", ErrShapeMismatch, len(occupancy), rows*cols)
	}
	cells := make([]bool, len(occupancy))
	copy(cells, occupancy)

	return &Grid{rows: rows, cols: cols, occupancy: cells}, nil
}

// FromRows constructs a Grid from a non-empty, rectangular 2D slice,
// where values[row][col] reports whether the cell is blocked.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
func FromRows(values [][]bool) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	cells := make([]bool, 0, rows*cols)
	for _, row := range values {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
		cells = append(cells, row...)
	}

	return &Grid{rows: rows, cols: cols, occupancy: cells}, nil
}

// Rows returns the number of grid rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of grid columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns the number of cells, rows×cols.
func (g *Grid) Size() int {
	return g.rows * g.cols
}

// Blocked reports whether cell idx is an obstacle.
// idx must satisfy Contains(idx).
func (g *Grid) Blocked(idx int) bool {
	return g.occupancy[idx]
}

// Occupancy returns a copy of the row-major occupancy slice.
func (g *Grid) Occupancy() []bool {
	out := make([]bool, len(g.occupancy))
	copy(out, g.occupancy)

	return out
}

// InBounds reports whether (row,col) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Contains reports whether idx is a valid cell index.
func (g *Grid) Contains(idx int) bool {
	return idx >= 0 && idx < g.Size()
}

// CheckIndex returns ErrIndexOutOfRange, wrapped with idx, unless Contains(idx).
func (g *Grid) CheckIndex(idx int) error {
	if !g.Contains(idx) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, idx, g.Size())
	}

	return nil
}

// Index maps (row,col) to a row-major index: row*Cols + col.
// Complexity: O(1).
func (g *Grid) Index(row, col int) int {
	return row*g.cols + col
}

// Coordinate converts a row-major index back to (row,col).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (row, col int) {
	return idx / g.cols, idx % g.cols
}
