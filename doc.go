// Package truncatable shortens text for fixed-width output while keeping a
// visible continuation marker.
//
// truncatable is a small toolkit designed to be imported à la carte. Each
// subpackage can be used independently:
//
//   - truncate: the Text type, left-to-right and right-to-left truncation,
//     and layout rendering (also through fmt verbs)
//   - pad: rune-counted padding and alignment with a custom fill character
//   - style: reusable truncation styles loaded from TOML, YAML, JSON or the
//     environment, with hot reload
//   - table: tables whose cells are truncated per column
//   - template: text/template helpers for truncation and padding
//
// # Quick Start
//
// Truncation:
//
//	import "github.com/randalmurphal/truncatable/truncate"
//	truncate.New("Test_Truncatable").Truncate(4)               // "Test..."
//	truncate.New("Test_Truncatable").RightToLeft().Truncate(4) // "...able"
//	fmt.Sprintf("%-10.4s|", truncate.New("Test_Truncatable"))  // "Test      ...|"
//
// Styles:
//
//	import "github.com/randalmurphal/truncatable/style"
//	s, _ := style.LoadFile("columns.toml")
//	s.Apply("/var/log/service/current.log")
//
// # Design Philosophy
//
// truncatable follows these principles:
//
//   - Lengths are rune counts, never bytes
//   - Truncation and padding never fail
//   - The marker is added on top of the kept text and is never padded over
//   - Values are immutable; configuration returns copies
package truncatable
