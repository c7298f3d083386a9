package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrShapeMismatch indicates len(occupancy) != rows*cols.
	ErrShapeMismatch = errors.New("gridgraph: occupancy length does not match rows*cols")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrIndexOutOfRange indicates a cell index outside [0, rows*cols).
	ErrIndexOutOfRange = errors.New("gridgraph: cell index out of range")
	// ErrBadCell indicates an unrecognized character in a text grid.
	ErrBadCell = errors.New("gridgraph: unrecognized cell character")
)
