package pad

import (
	"errors"
	"testing"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		d        Directives
		expected string
	}{
		{
			name:     "zero directives",
			text:     "abc",
			d:        Directives{},
			expected: "abc",
		},
		{
			name:     "default alignment is left",
			text:     "abc",
			d:        Directives{Width: 6},
			expected: "abc   ",
		},
		{
			name:     "explicit left",
			text:     "abc",
			d:        Directives{Width: 5, Align: AlignLeft, Fill: '.'},
			expected: "abc..",
		},
		{
			name:     "right",
			text:     "abc",
			d:        Directives{Width: 5, Align: AlignRight},
			expected: "  abc",
		},
		{
			name:     "center even",
			text:     "ab",
			d:        Directives{Width: 6, Align: AlignCenter, Fill: '*'},
			expected: "**ab**",
		},
		{
			name:     "center odd puts extra fill on the right",
			text:     "ab",
			d:        Directives{Width: 5, Align: AlignCenter, Fill: '*'},
			expected: "*ab**",
		},
		{
			name:     "width smaller than text",
			text:     "abcdef",
			d:        Directives{Width: 3, Align: AlignRight},
			expected: "abcdef",
		},
		{
			name:     "negative width",
			text:     "abc",
			d:        Directives{Width: -4},
			expected: "abc",
		},
		{
			name:     "empty text",
			text:     "",
			d:        Directives{Width: 3, Fill: '-'},
			expected: "---",
		},
		{
			name:     "width counts runes",
			text:     "héé",
			d:        Directives{Width: 5, Fill: '_'},
			expected: "héé__",
		},
		{
			name:     "multibyte fill",
			text:     "x",
			d:        Directives{Width: 3, Align: AlignRight, Fill: '·'},
			expected: "··x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Apply(tt.text, tt.d)
			if result != tt.expected {
				t.Errorf("Apply() = %q, expected %q", result, tt.expected)
			}
		})
	}
}

func TestParseAlign(t *testing.T) {
	tests := []struct {
		input    string
		expected Align
		wantErr  bool
	}{
		{input: "", expected: AlignNone},
		{input: "left", expected: AlignLeft},
		{input: "LEFT", expected: AlignLeft},
		{input: "<", expected: AlignLeft},
		{input: "right", expected: AlignRight},
		{input: ">", expected: AlignRight},
		{input: " center ", expected: AlignCenter},
		{input: "^", expected: AlignCenter},
		{input: "middle", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParseAlign(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAlign) {
					t.Errorf("expected ErrInvalidAlign, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("ParseAlign(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestAlign_Text(t *testing.T) {
	for _, a := range []Align{AlignNone, AlignLeft, AlignRight, AlignCenter} {
		text, err := a.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", a, err)
		}
		var back Align
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if back != a {
			t.Errorf("round trip of %v produced %v", a, back)
		}
	}

	if _, err := Align(42).MarshalText(); !errors.Is(err, ErrInvalidAlign) {
		t.Errorf("expected ErrInvalidAlign for unknown value, got %v", err)
	}
	if Align(42).String() != "Align(42)" {
		t.Errorf("String() = %q", Align(42).String())
	}
}
