// Package truncate shortens text to a maximum length and marks the cut with a
// continuation marker such as an ellipsis.
//
// The central type is Text, an immutable wrapper around a string that also
// carries the marker and the truncation direction. Lengths are measured in
// runes, not bytes and not terminal columns.
//
// # Directions
//
// Two directions are available:
//
//   - LeftToRight: keep the beginning of the text, marker after it (default)
//   - RightToLeft: keep the end of the text, marker before it
//
// RightToLeft suits values whose tail carries the meaning, such as file paths.
//
// # Basic Usage
//
//	t := truncate.New("Test_Truncatable")
//	t.Truncate(4)                      // "Test..."
//	t.WithMarker("-").Truncate(4)      // "Test-"
//	t.RightToLeft().Truncate(4)        // "...able"
//	t.Truncate(20)                     // "Test_Truncatable"
//
// The marker is added on top of the kept runes, so a truncated result is
// longer than the limit by the length of the marker.
//
// # Layout
//
// Render combines truncation with padding. The precision decides the cut,
// the width, alignment and fill apply to the kept runes only, and the marker
// is attached outside the padded block so it is never hidden by fill:
//
//	t.Render(truncate.Layout{
//	    Precision:  truncate.Limit(4),
//	    Directives: pad.Directives{Width: 8, Fill: '_'},
//	}) // "Test____..."
//
// Text also implements fmt.Formatter with the same rules, using the verb's
// precision as the limit:
//
//	fmt.Sprintf("%.4s", t)    // "Test..."
//	fmt.Sprintf("%-8.4s|", t) // "Test    ...|"
//
// # Convenience Functions
//
// For one-off truncation:
//
//	truncate.Left("hello world", 5)   // "hello..."
//	truncate.Right("hello world", 5)  // "...world"
package truncate
