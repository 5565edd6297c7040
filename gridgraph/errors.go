package gridgraph

import "errors"

var (
	// ErrOutOfBounds indicates a position outside the grid's declared size.
	ErrOutOfBounds = errors.New("gridgraph: position out of bounds")
	// ErrNoPath indicates the target cannot be reached from the start.
	ErrNoPath = errors.New("gridgraph: no path between positions")
	// ErrEmptyGrid indicates the tile rows are empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates tile rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
)
