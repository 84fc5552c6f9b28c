package truncate

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDirection is returned when a direction name cannot be parsed.
var ErrInvalidDirection = errors.New("invalid direction")

// Direction defines which end of the text survives truncation.
type Direction int

const (
	// LeftToRight keeps the leading runes and appends the marker (default).
	LeftToRight Direction = iota

	// RightToLeft keeps the trailing runes and prepends the marker.
	RightToLeft
)

// String returns the short configuration name of the direction.
func (d Direction) String() string {
	switch d {
	case LeftToRight:
		return "ltr"
	case RightToLeft:
		return "rtl"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Valid reports whether d is one of the declared directions.
func (d Direction) Valid() bool {
	return d == LeftToRight || d == RightToLeft
}

// ParseDirection parses a direction name. Both the short ("ltr", "rtl") and
// long ("left-to-right", "right-to-left") forms are accepted, ignoring case.
// The empty string yields LeftToRight.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ltr", "left-to-right", "lefttoright", "left_to_right":
		return LeftToRight, nil
	case "rtl", "right-to-left", "righttoleft", "right_to_left":
		return RightToLeft, nil
	}
	return LeftToRight, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDirection, int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
