package hdr2d

import (
	"errors"

	"github.com/gogpu/hdr2d/internal/blend"
	"github.com/gogpu/hdr2d/internal/csscolor"
)

// Errors returned by hdr2d. Returned errors wrap these sentinels with
// detail, so compare with errors.Is.
var (
	// ErrOutOfBounds is returned when pixel coordinates fall outside the buffer.
	ErrOutOfBounds = errors.New("hdr2d: coordinates out of bounds")

	// ErrUnknownBlendMode is returned when a blend mode is not in the table.
	ErrUnknownBlendMode = blend.ErrUnknownMode

	// ErrDegenerateRange is returned for a tone map range with High == Low.
	ErrDegenerateRange = errors.New("hdr2d: degenerate range")

	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("hdr2d: invalid dimensions")

	// ErrInvalidColor is returned when a fill style string cannot be parsed.
	ErrInvalidColor = csscolor.ErrSyntax

	// ErrNilImage is returned when DrawImage is given a nil source.
	ErrNilImage = errors.New("hdr2d: nil image")

	// ErrClosed is returned by operations on a closed Context.
	ErrClosed = errors.New("hdr2d: context closed")
)
