// Package template renders Go text templates with truncation and padding
// helpers, for building fixed-width reports and status lines.
//
// # Built-in Functions
//
//   - truncate(s string, n int) string - Keep the first n runes, then "..."
//   - truncateRTL(s string, n int) string - "..." then the last n runes
//   - truncateWith(s string, n int, marker string) string - truncate with a custom marker
//   - pad(s string, width int) string - Left-align s in width runes
//   - padLeft(s string, width int) string - Right-align s in width runes
//   - center(s string, width int) string - Center s in width runes
//   - upper(s string) string - Convert to uppercase
//   - lower(s string) string - Convert to lowercase
//   - trim(s string) string - Remove leading/trailing whitespace
//   - default(val, defaultVal any) any - Return default if val is nil/empty
//
// Negative lengths and widths are treated as zero.
//
// # Example
//
//	engine := template.NewEngine()
//	result, err := engine.Render(`{{truncate .name 4}}|{{truncateRTL .name 4}}`, map[string]any{"name": "Test_Truncatable"})
//	// result: "Test...|...able"
//
// # Custom Functions
//
//	engine.AddFunc("double", func(s string) string { return s + s })
package template
