package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Table is a bordered listing with a bold header row. Numeric columns can be
// right aligned and a column can be dimmed for secondary information.
type Table struct {
	headers []string
	rows    [][]string
	right   map[int]bool
	muted   map[int]bool
}

// NewTable creates a new table with the given headers.
func NewTable(headers ...string) *Table {
	return &Table{
		headers: headers,
		right:   make(map[int]bool),
		muted:   make(map[int]bool),
	}
}

// Row adds a row to the table.
func (t *Table) Row(cells ...string) *Table {
	t.rows = append(t.rows, cells)
	return t
}

// AlignRight right-aligns the given columns, header included.
func (t *Table) AlignRight(cols ...int) *Table {
	for _, c := range cols {
		t.right[c] = true
	}
	return t
}

// Mute renders the given body columns in the muted color.
func (t *Table) Mute(cols ...int) *Table {
	for _, c := range cols {
		t.muted[c] = true
	}
	return t
}

// String renders the table as a string.
func (t *Table) String() string {
	styles := GetStyles()

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.Muted).
		Headers(t.headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle()
			switch {
			case row == table.HeaderRow:
				style = styles.Bold
			case t.muted[col]:
				style = styles.Muted
			}
			style = style.Padding(0, 1)
			if t.right[col] {
				style = style.Align(lipgloss.Right)
			}
			return style
		})

	for _, row := range t.rows {
		tbl.Row(row...)
	}

	return tbl.String()
}
