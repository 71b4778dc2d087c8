package carve

import "errors"

var (
	// ErrNullInput is returned by New when no picture is supplied.
	ErrNullInput = errors.New("carve: null image")

	// ErrEmptyImage is returned by New for a picture with no pixels.
	ErrEmptyImage = errors.New("carve: empty image")

	// ErrOutOfBounds reports a coordinate outside the current picture.
	ErrOutOfBounds = errors.New("carve: out of bounds")

	// ErrInvalidSeam reports a seam that is nil, has the wrong length, leaves
	// the picture, or jumps by more than one between neighbouring entries.
	ErrInvalidSeam = errors.New("carve: invalid seam")

	// ErrCannotShrink is returned when removing a seam would leave the picture
	// with zero columns or rows.
	ErrCannotShrink = errors.New("carve: cannot shrink further")

	// ErrInvalidTarget reports a resize target outside [1, current size].
	ErrInvalidTarget = errors.New("carve: invalid target size")
)
