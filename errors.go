package bitmap

import "errors"

// Errors returned by bitmap operations. Returned errors wrap these
// sentinels, so callers should match them with errors.Is.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive
	// or too large for the 32-bit header fields.
	ErrInvalidDimensions = errors.New("bitmap: invalid dimensions")

	// ErrOutOfRange is returned when pixel or row coordinates are outside
	// the image bounds.
	ErrOutOfRange = errors.New("bitmap: coordinates out of range")

	// ErrOpenFailure is returned when the target file cannot be created.
	ErrOpenFailure = errors.New("bitmap: open failure")

	// ErrWriteFailure is returned when a header or the pixel data could not
	// be written completely.
	ErrWriteFailure = errors.New("bitmap: write failure")

	// ErrInvalidSignature is returned by ReadHeaders when the input does not
	// start with "BM".
	ErrInvalidSignature = errors.New("bitmap: invalid signature")

	// ErrInvalidColor is returned when a hex color string cannot be parsed.
	ErrInvalidColor = errors.New("bitmap: invalid color")
)
