package style

import (
	"errors"

	"github.com/randalmurphal/truncatable/pad"
	"github.com/randalmurphal/truncatable/truncate"
)

// Sentinel errors for style operations.
var (
	// ErrInvalidDirection indicates an unknown truncation direction.
	ErrInvalidDirection = truncate.ErrInvalidDirection

	// ErrInvalidAlign indicates an unknown alignment.
	ErrInvalidAlign = pad.ErrInvalidAlign

	// ErrInvalidFill indicates a fill that is not exactly one character.
	ErrInvalidFill = errors.New("fill must be a single character")

	// ErrInvalidWidth indicates a negative width.
	ErrInvalidWidth = errors.New("width must be >= 0")

	// ErrUnsupportedFormat indicates a style file with an unknown extension.
	ErrUnsupportedFormat = errors.New("unsupported style format")
)
