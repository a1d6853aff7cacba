package pngfill

import (
	"errors"

	"github.com/modernice/pngfill/raster"
)

var (
	// ErrArgument is returned for missing or malformed arguments. Fill returns
	// it synchronously for missing sources, options, rectangles or callbacks;
	// an unparseable color or a missing output destination is reported
	// through the callback.
	ErrArgument = errors.New("invalid argument")

	// ErrRect is returned when the rectangle coordinates cannot be resolved.
	ErrRect = errors.New("invalid rectangle")

	// ErrBounds is returned when the rectangle does not start inside the image.
	ErrBounds = raster.ErrOutOfBounds

	// ErrIO is returned when the source cannot be read or decoded, or when the
	// result cannot be encoded or written.
	ErrIO = errors.New("i/o failure")
)
