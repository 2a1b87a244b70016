package values

import "errors"

var (
	// ErrShape is returned when two-dimensional input is not rectangular.
	ErrShape = errors.New("values: matrix rows must have equal length")

	// ErrValue is returned when a pointer input holds a nil element.
	ErrValue = errors.New("values: nil element")
)
