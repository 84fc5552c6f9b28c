// Package style describes reusable truncation styles.
//
// A Style bundles everything needed to render a value: the continuation
// marker, the truncation direction, the maximum length and the padding
// directives. Styles can be built in code, decoded from TOML, YAML or JSON,
// read from TRUNCATABLE_* environment variables, and hot-reloaded from a file
// with a Watcher.
package style

import (
	"fmt"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/randalmurphal/truncatable/pad"
	"github.com/randalmurphal/truncatable/truncate"
)

// Style holds the configuration for truncating and padding a value.
type Style struct {
	// Marker is the continuation marker. An empty marker truncates silently.
	Marker string `json:"marker" yaml:"marker" toml:"marker" mapstructure:"marker"`

	// Direction selects which end of the value is kept: "ltr" or "rtl".
	Direction truncate.Direction `json:"direction,omitempty" yaml:"direction,omitempty" toml:"direction,omitempty" mapstructure:"direction"`

	// MaxLength is the truncation limit in runes. Nil disables truncation.
	MaxLength *uint `json:"max_length,omitempty" yaml:"max_length,omitempty" toml:"max_length,omitempty" mapstructure:"max_length"`

	// Width is the minimum width of the kept text in runes. 0 disables padding.
	Width int `json:"width,omitempty" yaml:"width,omitempty" toml:"width,omitempty" mapstructure:"width"`

	// Align positions the kept text within Width: "left", "right" or "center".
	Align pad.Align `json:"align,omitempty" yaml:"align,omitempty" toml:"align,omitempty" mapstructure:"align"`

	// Fill is the single character used for padding. Empty means a space.
	Fill string `json:"fill,omitempty" yaml:"fill,omitempty" toml:"fill,omitempty" mapstructure:"fill"`
}

// DefaultStyle returns a Style with the default marker and no limits.
func DefaultStyle() Style {
	return Style{
		Marker:    truncate.DefaultMarker,
		Direction: truncate.LeftToRight,
	}
}

// LoadFromEnv populates style fields from environment variables.
// Environment variables use the TRUNCATABLE_ prefix and take precedence over
// existing values. Values that fail to parse are ignored.
//
// Supported variables:
//   - TRUNCATABLE_MARKER: Continuation marker (may be set to empty)
//   - TRUNCATABLE_DIRECTION: "ltr" or "rtl"
//   - TRUNCATABLE_MAX_LENGTH: Truncation limit in runes
//   - TRUNCATABLE_WIDTH: Padding width in runes
//   - TRUNCATABLE_ALIGN: "left", "right" or "center"
//   - TRUNCATABLE_FILL: Padding character
func (s *Style) LoadFromEnv() {
	if v, ok := os.LookupEnv("TRUNCATABLE_MARKER"); ok {
		s.Marker = v
	}
	if v := os.Getenv("TRUNCATABLE_DIRECTION"); v != "" {
		if d, err := truncate.ParseDirection(v); err == nil {
			s.Direction = d
		}
	}
	if v := os.Getenv("TRUNCATABLE_MAX_LENGTH"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 0); err == nil {
			s.MaxLength = truncate.Limit(uint(n))
		}
	}
	if v := os.Getenv("TRUNCATABLE_WIDTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			s.Width = n
		}
	}
	if v := os.Getenv("TRUNCATABLE_ALIGN"); v != "" {
		if a, err := pad.ParseAlign(v); err == nil {
			s.Align = a
		}
	}
	if v := os.Getenv("TRUNCATABLE_FILL"); v != "" {
		s.Fill = v
	}
}

// FromEnv creates a Style from environment variables with defaults.
func FromEnv() Style {
	s := DefaultStyle()
	s.LoadFromEnv()
	return s
}

// Validate checks that the style can be applied.
func (s Style) Validate() error {
	if !s.Direction.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidDirection, int(s.Direction))
	}
	if !s.Align.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidAlign, int(s.Align))
	}
	if s.Width < 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidWidth, s.Width)
	}
	if s.Fill != "" && utf8.RuneCountInString(s.Fill) != 1 {
		return fmt.Errorf("%w, got %q", ErrInvalidFill, s.Fill)
	}
	return nil
}

// Equal reports whether s and other render values identically.
func (s Style) Equal(other Style) bool {
	if (s.MaxLength == nil) != (other.MaxLength == nil) {
		return false
	}
	if s.MaxLength != nil && *s.MaxLength != *other.MaxLength {
		return false
	}
	return s.Marker == other.Marker &&
		s.Direction == other.Direction &&
		s.Width == other.Width &&
		s.Align == other.Align &&
		s.Fill == other.Fill
}

// WithMarker returns a copy of the style with the specified marker.
func (s Style) WithMarker(marker string) Style {
	s.Marker = marker
	return s
}

// WithDirection returns a copy of the style with the specified direction.
func (s Style) WithDirection(d truncate.Direction) Style {
	s.Direction = d
	return s
}

// WithMaxLength returns a copy of the style truncating at n runes.
func (s Style) WithMaxLength(n uint) Style {
	s.MaxLength = truncate.Limit(n)
	return s
}

// WithoutMaxLength returns a copy of the style that never truncates.
func (s Style) WithoutMaxLength() Style {
	s.MaxLength = nil
	return s
}

// WithWidth returns a copy of the style padding to width runes.
func (s Style) WithWidth(width int) Style {
	s.Width = width
	return s
}

// WithAlign returns a copy of the style with the specified alignment.
func (s Style) WithAlign(a pad.Align) Style {
	s.Align = a
	return s
}

// WithFill returns a copy of the style padding with r.
func (s Style) WithFill(r rune) Style {
	s.Fill = string(r)
	return s
}

// Text wraps value with the style's marker and direction.
func (s Style) Text(value string) truncate.Text {
	return truncate.New(value).WithMarker(s.Marker).WithDirection(s.Direction)
}

// Layout converts the style's limits into rendering directives.
func (s Style) Layout() truncate.Layout {
	var fill rune
	if s.Fill != "" {
		fill, _ = utf8.DecodeRuneInString(s.Fill)
	}
	return truncate.Layout{
		Precision: s.MaxLength,
		Directives: pad.Directives{
			Width: s.Width,
			Align: s.Align,
			Fill:  fill,
		},
	}
}

// Apply truncates and pads value according to the style.
func (s Style) Apply(value string) string {
	return s.Text(value).Render(s.Layout())
}
