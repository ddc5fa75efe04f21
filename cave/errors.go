package cave

import "errors"

// Sentinel errors for grid construction and access.
var (
	// ErrEmptyGrid indicates input rows are empty or have no columns.
	ErrEmptyGrid = errors.New("cave: input grid must have at least one row and one column")
	// ErrNonSquare indicates ragged rows or a row length that differs from the row count.
	ErrNonSquare = errors.New("cave: grid must be square")
	// ErrOutOfRange indicates a coordinate outside [0,N)×[0,N).
	ErrOutOfRange = errors.New("cave: coordinate out of range")
)
