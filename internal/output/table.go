package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// TableStyle defines the style for table output.
type TableStyle struct {
	Border      lipgloss.Border
	BorderColor lipgloss.Color
	HeaderStyle lipgloss.Style
	CellStyle   lipgloss.Style

	// Plain drops the outer frame and the header rule, leaving
	// space-separated columns.
	Plain bool
}

// DefaultTableStyle returns the default table style.
func DefaultTableStyle() TableStyle {
	return TableStyle{
		Border:      lipgloss.NormalBorder(),
		BorderColor: ColorDimGray,
		HeaderStyle: lipgloss.NewStyle().Bold(true).Foreground(ColorBlue),
		CellStyle:   lipgloss.NewStyle(),
	}
}

// PlainTableStyle returns the style used when output is not a terminal.
func PlainTableStyle() TableStyle {
	return TableStyle{
		Border:      lipgloss.HiddenBorder(),
		HeaderStyle: lipgloss.NewStyle().PaddingRight(1),
		CellStyle:   lipgloss.NewStyle().PaddingRight(1),
		Plain:       true,
	}
}

// Table is a styled table built row by row.
type Table struct {
	headers []string
	rows    [][]string
	style   TableStyle
}

// NewTable creates a table with the given headers.
func NewTable(headers ...string) *Table {
	return &Table{
		headers: headers,
		rows:    make([][]string, 0),
		style:   DefaultTableStyle(),
	}
}

// Row adds a row to the table.
func (t *Table) Row(cells ...string) *Table {
	t.rows = append(t.rows, cells)
	return t
}

// SetStyle sets the table style.
func (t *Table) SetStyle(style TableStyle) *Table {
	t.style = style
	return t
}

// String renders the table.
func (t *Table) String() string {
	tbl := table.New().
		Border(t.style.Border).
		BorderStyle(lipgloss.NewStyle().Foreground(t.style.BorderColor)).
		Headers(t.headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return t.style.HeaderStyle
			}
			return t.style.CellStyle
		})

	if t.style.Plain {
		tbl = tbl.BorderTop(false).
			BorderBottom(false).
			BorderLeft(false).
			BorderRight(false).
			BorderHeader(false).
			BorderColumn(false)
	}

	for _, row := range t.rows {
		tbl.Row(row...)
	}

	return tbl.String()
}

// StackRow is one line of the stacks listing.
type StackRow struct {
	Kind        string
	Stack       string
	Packaging   string
	Description string
}

// RenderStacksTable renders the available application stacks.
func RenderStacksTable(rows []StackRow, style TableStyle) string {
	t := NewTable("KIND", "STACK", "PACKAGING", "DESCRIPTION").SetStyle(style)
	for _, r := range rows {
		t.Row(r.Kind, r.Stack, r.Packaging, r.Description)
	}
	return t.String()
}
