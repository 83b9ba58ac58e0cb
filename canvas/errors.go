package canvas

import "errors"

var (
	// ErrInvalidSize is returned when a canvas is created with a
	// non-positive width or height.
	ErrInvalidSize = errors.New("canvas: invalid size")

	// ErrOutOfBounds is returned when a pixel or rectangle lies outside
	// the canvas.
	ErrOutOfBounds = errors.New("canvas: coordinates out of bounds")
)
