package cli

import (
	"strings"
)

// Table is a simple column-aligned text table.
type Table struct {
	headers []string
	rows    [][]string
	padding int
}

// NewTable creates a table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers: headers,
		rows:    make([][]string, 0),
		padding: 2, // 2 spaces between columns
	}
}

// AddRow adds a row to the table. Short rows are padded to the header
// count; extra cells are dropped.
func (t *Table) AddRow(row []string) {
	cells := make([]string, len(t.headers))
	copy(cells, row)
	t.rows = append(t.rows, cells)
}

// Render formats the table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = visibleLen(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if l := visibleLen(cell); l > widths[i] {
				widths[i] = l
			}
		}
	}

	sep := strings.Repeat(" ", t.padding)
	var b strings.Builder

	headerParts := make([]string, len(t.headers))
	sepParts := make([]string, len(t.headers))
	for i, h := range t.headers {
		headerParts[i] = padRight(h, widths[i])
		sepParts[i] = strings.Repeat("-", widths[i])
	}
	b.WriteString(strings.TrimRight(strings.Join(headerParts, sep), " "))
	b.WriteString("\n")
	b.WriteString(strings.TrimRight(strings.Join(sepParts, sep), " "))
	b.WriteString("\n")

	for _, row := range t.rows {
		parts := make([]string, len(row))
		for i, cell := range row {
			parts[i] = padRight(cell, widths[i])
		}
		b.WriteString(strings.TrimRight(strings.Join(parts, sep), " "))
		b.WriteString("\n")
	}

	return b.String()
}

// padRight pads a string with spaces on the right to reach the desired
// display width, ignoring ANSI escape sequences.
func padRight(s string, width int) string {
	if l := visibleLen(s); l < width {
		return s + strings.Repeat(" ", width-l)
	}
	return s
}

// visibleLen returns the display length of s, skipping ANSI escape
// sequences (used by colour swatches).
func visibleLen(s string) int {
	length := 0
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			length++
		}
	}
	return length
}
