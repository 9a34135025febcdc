// Package render formats listings for terminal output.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.nivo.ch/panelctl/internal/ui/style"
)

const columnGap = 2

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(style.Teal)

	activeStyle = lipgloss.NewStyle().
			Foreground(style.Green)

	inactiveStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Faint(true)
)

// Active renders the status cell for a resource listing.
func Active(active bool) string {
	if active {
		return activeStyle.Render(style.Check)
	}
	return inactiveStyle.Render(style.Cross)
}

// Table is a borderless, column-aligned listing. Styled cells are measured
// with their escape sequences stripped, so status icons keep the columns
// straight.
type Table struct {
	headers []string
	rows    [][]string
}

// NewTable creates a table with the given column headers.
func NewTable(headers ...string) *Table {
	return &Table{headers: headers}
}

// Row appends one row. Missing cells render empty; extra cells are dropped.
func (t *Table) Row(cells ...string) *Table {
	t.rows = append(t.rows, cells)
	return t
}

// Empty reports whether the table has no rows.
func (t *Table) Empty() bool {
	return len(t.rows) == 0
}

// String renders the table.
func (t *Table) String() string {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	styledHeaders := make([]string, len(t.headers))
	for i, h := range t.headers {
		styledHeaders[i] = headerStyle.Render(h) + pad(h, widths[i])
	}
	writeRow(&b, styledHeaders)

	for _, row := range t.rows {
		cells := make([]string, len(t.headers))
		for i := range t.headers {
			var cell string
			if i < len(row) {
				cell = row[i]
			}
			cells[i] = cell + pad(cell, widths[i])
		}
		writeRow(&b, cells)
	}

	return b.String()
}

func writeRow(b *strings.Builder, cells []string) {
	line := strings.Join(cells, strings.Repeat(" ", columnGap))
	b.WriteString(strings.TrimRight(line, " ") + "\n")
}

func pad(cell string, width int) string {
	gap := width - lipgloss.Width(cell)
	if gap <= 0 {
		return ""
	}
	return strings.Repeat(" ", gap)
}
