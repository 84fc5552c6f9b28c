package pad

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// DefaultFill is the fill character used when Directives.Fill is unset.
const DefaultFill = ' '

// ErrInvalidAlign is returned when an alignment name cannot be parsed.
var ErrInvalidAlign = errors.New("invalid alignment")

// Align selects where text sits inside the padded width.
type Align int

const (
	// AlignNone leaves the choice to the default, which is left alignment.
	AlignNone Align = iota

	// AlignLeft places the text first and the fill after it.
	AlignLeft

	// AlignRight places the fill first and the text after it.
	AlignRight

	// AlignCenter splits the fill around the text. When the fill cannot be
	// split evenly the extra rune goes to the right.
	AlignCenter
)

var alignNames = map[Align]string{
	AlignNone:   "",
	AlignLeft:   "left",
	AlignRight:  "right",
	AlignCenter: "center",
}

// String returns the configuration name of the alignment.
func (a Align) String() string {
	if name, ok := alignNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Align(%d)", int(a))
}

// Valid reports whether a is one of the declared alignments.
func (a Align) Valid() bool {
	_, ok := alignNames[a]
	return ok
}

// ParseAlign parses an alignment name. Matching is case-insensitive and the
// empty string yields AlignNone.
func ParseAlign(s string) (Align, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return AlignNone, nil
	case "left", "<":
		return AlignLeft, nil
	case "right", ">":
		return AlignRight, nil
	case "center", "centre", "^":
		return AlignCenter, nil
	}
	return AlignNone, fmt.Errorf("%w: %q", ErrInvalidAlign, s)
}

// MarshalText implements encoding.TextMarshaler.
func (a Align) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAlign, int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Align) UnmarshalText(text []byte) error {
	parsed, err := ParseAlign(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Directives describes how a value is laid out inside a fixed width.
type Directives struct {
	// Width is the minimum rune count of the result. Values <= 0 disable padding.
	Width int

	// Align positions the text within Width.
	Align Align

	// Fill is the rune repeated to reach Width. Zero means DefaultFill.
	Fill rune
}

// Apply pads s according to d. It never truncates and never fails.
func Apply(s string, d Directives) string {
	gap := d.Width - utf8.RuneCountInString(s)
	if gap <= 0 {
		return s
	}

	fill := d.Fill
	if fill == 0 {
		fill = DefaultFill
	}

	var before, after int
	switch d.Align {
	case AlignRight:
		before = gap
	case AlignCenter:
		before = gap / 2
		after = gap - before
	default:
		after = gap
	}

	f := string(fill)
	var sb strings.Builder
	sb.Grow(len(s) + gap*len(f))
	sb.WriteString(strings.Repeat(f, before))
	sb.WriteString(s)
	sb.WriteString(strings.Repeat(f, after))
	return sb.String()
}
