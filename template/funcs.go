package template

import (
	"strings"
	"text/template"

	"github.com/randalmurphal/truncatable/pad"
	"github.com/randalmurphal/truncatable/truncate"
)

// defaultFuncs returns the built-in template functions.
func defaultFuncs() template.FuncMap {
	return template.FuncMap{
		"truncate":     truncateLTR,
		"truncateRTL":  truncateRTL,
		"truncateWith": truncateWith,
		"pad":          padAligned(pad.AlignLeft),
		"padLeft":      padAligned(pad.AlignRight),
		"center":       padAligned(pad.AlignCenter),
		"upper":        strings.ToUpper,
		"lower":        strings.ToLower,
		"trim":         strings.TrimSpace,
		"default":      defaultValue,
	}
}

// Funcs returns a fresh copy of the built-in functions for use with a
// text/template or html/template set.
func Funcs() template.FuncMap {
	return defaultFuncs()
}

func truncateLTR(s string, n int) string {
	return truncate.New(s).Truncate(clamp(n))
}

func truncateRTL(s string, n int) string {
	return truncate.New(s).RightToLeft().Truncate(clamp(n))
}

func truncateWith(s string, n int, marker string) string {
	return truncate.New(s).WithMarker(marker).Truncate(clamp(n))
}

func padAligned(align pad.Align) func(string, int) string {
	return func(s string, width int) string {
		return pad.Apply(s, pad.Directives{Width: width, Align: align})
	}
}

func clamp(n int) uint {
	if n < 0 {
		return 0
	}
	return uint(n)
}

// defaultValue returns the default if the value is nil or an empty string.
// For other types (including zero values like 0), the original value is returned.
func defaultValue(val, defaultVal any) any {
	if val == nil {
		return defaultVal
	}
	if s, ok := val.(string); ok && s == "" {
		return defaultVal
	}
	return val
}
