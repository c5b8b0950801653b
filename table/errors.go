package table

import "errors"

// Sentinel errors for table operations.
var (
	// ErrInvalidTable indicates an empty table, a ragged row, a column
	// index out of range, or data that is not sorted where sortedness is
	// required.
	ErrInvalidTable = errors.New("table: invalid table")
	// ErrOutOfRange indicates a query value outside the table or interval
	// bounds with no clamping requested.
	ErrOutOfRange = errors.New("table: value out of range")
	// ErrDegenerateInterval indicates an interpolation request across a
	// zero-width x-interval.
	ErrDegenerateInterval = errors.New("table: degenerate interpolation interval")
)
