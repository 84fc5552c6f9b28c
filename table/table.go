// Package table renders rows of text as an aligned table, truncating every
// cell according to its column's style.
package table

import (
	"errors"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/randalmurphal/truncatable/style"
)

// ErrColumnCount indicates a row whose cell count differs from the columns.
var ErrColumnCount = errors.New("row does not match column count")

// Column describes one table column.
type Column struct {
	Header string
	Style  style.Style
}

// NewColumn returns a column truncating its cells to maxLength runes with the
// default marker.
func NewColumn(header string, maxLength uint) Column {
	return Column{
		Header: header,
		Style:  style.DefaultStyle().WithMaxLength(maxLength),
	}
}

// Render writes rows to w. Every cell passes through its column's style
// before it reaches the table, so long values keep their marker visible.
func Render(w io.Writer, columns []Column, rows [][]string) error {
	for i, c := range columns {
		if err := c.Style.Validate(); err != nil {
			return fmt.Errorf("column %d (%s): %w", i, c.Header, err)
		}
	}

	table := tablewriter.NewWriter(w)

	header := make([]any, len(columns))
	for i, c := range columns {
		header[i] = c.Header
	}
	table.Header(header...)

	for i, row := range rows {
		if len(row) != len(columns) {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrColumnCount, i, len(row), len(columns))
		}
		cells := make([]any, len(row))
		for j, cell := range row {
			cells[j] = columns[j].Style.Apply(cell)
		}
		if err := table.Append(cells...); err != nil {
			return fmt.Errorf("append row %d: %w", i, err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	return nil
}
