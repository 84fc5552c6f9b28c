// Package pad provides generic padding and alignment of text to a fixed width.
//
// Widths are measured in runes (Unicode code points), not terminal columns.
// A value that is already at least as wide as the requested width is returned
// unchanged; pad never shortens text.
//
// # Basic Usage
//
//	pad.Apply("id", pad.Directives{Width: 6})                          // "id    "
//	pad.Apply("id", pad.Directives{Width: 6, Align: pad.AlignRight})   // "    id"
//	pad.Apply("id", pad.Directives{Width: 6, Align: pad.AlignCenter, Fill: '*'}) // "**id**"
//
// The zero Directives value performs no padding at all.
package pad
