package truncate

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/randalmurphal/truncatable/pad"
)

// Layout lists the formatting directives understood by Render.
//
// Precision is the truncation limit and is optional because a limit of zero
// is meaningful. The embedded Directives are passed to the padding step
// untouched.
type Layout struct {
	Precision *uint
	pad.Directives
}

// Limit returns a pointer to n for use as Layout.Precision.
func Limit(n uint) *uint {
	return &n
}

// Render truncates and pads the text.
//
// When l.Precision is set and shorter than the value, only the kept runes are
// padded and the marker is attached outside the padded block: after it for
// LeftToRight, before it for RightToLeft. Otherwise the whole value is padded
// and no marker is written.
func (t Text) Render(l Layout) string {
	kept, truncated := t.value, false
	if l.Precision != nil {
		kept, truncated = t.Cut(*l.Precision)
	}

	padded := pad.Apply(kept, l.Directives)
	if !truncated {
		return padded
	}
	return t.attach(padded)
}

// Format implements fmt.Formatter.
//
// For %s and %v the precision acts as the truncation limit and the width and
// flags are applied by fmt to the kept runes, with the marker written outside
// the padded block. Other verbs, and %#v, format the plain value.
func (t Text) Format(f fmt.State, verb rune) {
	if (verb != 's' && verb != 'v') || f.Flag('#') {
		fmt.Fprintf(f, fmt.FormatString(f, verb), t.value)
		return
	}

	kept, truncated := t.value, false
	if precision, ok := f.Precision(); ok && precision >= 0 {
		kept, truncated = t.Cut(uint(precision))
	}

	leading := truncated && t.direction == RightToLeft
	if leading {
		io.WriteString(f, t.marker)
	}
	fmt.Fprintf(f, paddingFormat(f), kept)
	if truncated && !leading {
		io.WriteString(f, t.marker)
	}
}

// paddingFormat rebuilds the caller's directive for a string without the
// precision, so fmt pads but never cuts.
func paddingFormat(f fmt.State) string {
	var sb strings.Builder
	sb.WriteByte('%')
	for _, flag := range "-+ 0" {
		if f.Flag(int(flag)) {
			sb.WriteRune(flag)
		}
	}
	if width, ok := f.Width(); ok {
		sb.WriteString(strconv.Itoa(width))
	}
	sb.WriteByte('s')
	return sb.String()
}
