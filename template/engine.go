package template

import (
	"fmt"
	"strings"
	"text/template"
)

// Engine renders templates with the built-in truncation helpers.
type Engine struct {
	funcs template.FuncMap
}

// NewEngine creates a new template engine with default helper functions.
func NewEngine() *Engine {
	return &Engine{
		funcs: defaultFuncs(),
	}
}

// Render executes the template with the given data.
func (e *Engine) Render(templateStr string, data any) (string, error) {
	if templateStr == "" {
		return "", ErrEmpty
	}

	tmpl, parseErr := template.New("text").Funcs(e.funcs).Parse(templateStr)
	if parseErr != nil {
		return "", fmt.Errorf("%w: %w", ErrParse, parseErr)
	}

	var buf strings.Builder
	if execErr := tmpl.Execute(&buf, data); execErr != nil {
		return "", fmt.Errorf("%w: %w", ErrExecute, execErr)
	}

	return buf.String(), nil
}

// AddFunc adds a custom template function.
// The function will be available in templates using the given name.
func (e *Engine) AddFunc(name string, fn any) {
	e.funcs[name] = fn
}

// Render executes templateStr with a default engine.
func Render(templateStr string, data any) (string, error) {
	return NewEngine().Render(templateStr, data)
}
