package truncate

import (
	"fmt"
	"unicode/utf8"
)

// DefaultMarker is the continuation marker used by New.
const DefaultMarker = "..."

// Text is a string that knows how to shorten itself.
//
// Text is a value type: the configuration methods return a modified copy and
// leave the receiver untouched, so a single Text can be shared and truncated
// at different lengths concurrently.
type Text struct {
	value     string
	marker    string
	direction Direction
}

// New wraps value with the default marker and LeftToRight direction.
// Any string is accepted, including the empty string.
func New(value string) Text {
	return Text{
		value:     value,
		marker:    DefaultMarker,
		direction: LeftToRight,
	}
}

// FromBytes is New for a byte slice. The bytes are copied.
func FromBytes(b []byte) Text {
	return New(string(b))
}

// FromStringer is New for any fmt.Stringer. A nil Stringer yields empty text.
func FromStringer(s fmt.Stringer) Text {
	if s == nil {
		return New("")
	}
	return New(s.String())
}

// WithMarker returns a copy using marker as the continuation marker.
// An empty marker truncates silently.
func (t Text) WithMarker(marker string) Text {
	t.marker = marker
	return t
}

// WithDirection returns a copy truncating in direction d.
func (t Text) WithDirection(d Direction) Text {
	t.direction = d
	return t
}

// LeftToRight returns a copy that keeps the beginning of the text.
func (t Text) LeftToRight() Text {
	return t.WithDirection(LeftToRight)
}

// RightToLeft returns a copy that keeps the end of the text.
func (t Text) RightToLeft() Text {
	return t.WithDirection(RightToLeft)
}

// Value returns the original, untruncated text.
func (t Text) Value() string {
	return t.value
}

// Marker returns the continuation marker.
func (t Text) Marker() string {
	return t.marker
}

// Direction returns the truncation direction.
func (t Text) Direction() Direction {
	return t.direction
}

// Len returns the length of the value in runes.
func (t Text) Len() int {
	return utf8.RuneCountInString(t.value)
}

// String returns the untruncated value.
func (t Text) String() string {
	return t.value
}

// Truncate returns the value shortened to maxLength runes plus the marker.
// When the value already fits it is returned unchanged without a marker.
func (t Text) Truncate(maxLength uint) string {
	kept, truncated := t.Cut(maxLength)
	if !truncated {
		return kept
	}
	return t.attach(kept)
}

// Cut returns the runes that survive truncation to maxLength, without the
// marker, and whether anything was removed.
func (t Text) Cut(maxLength uint) (string, bool) {
	n := t.Len()
	if maxLength >= uint(n) {
		return t.value, false
	}

	if t.direction == RightToLeft {
		return t.value[byteOffset(t.value, n-int(maxLength)):], true
	}
	return t.value[:byteOffset(t.value, int(maxLength))], true
}

// attach places the marker on the side of s that lost content.
func (t Text) attach(s string) string {
	if t.direction == RightToLeft {
		return t.marker + s
	}
	return s + t.marker
}

// byteOffset returns the byte index at which rune number runes starts.
// Invalid UTF-8 bytes count as one rune each, matching utf8.RuneCountInString.
func byteOffset(s string, runes int) int {
	for i := range s {
		if runes == 0 {
			return i
		}
		runes--
	}
	return len(s)
}
