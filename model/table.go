package model

import (
	"fmt"
	"strings"
)

// Table represents tabular data as an ordered sequence of named columns and
// an ordered sequence of rows. Column order is insertion order.
type Table struct {
	columns []string
	rows    [][]Cell
}

// NewTable creates an empty table with the given column names, in order.
func NewTable(columns ...string) *Table {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Table{columns: cols}
}

// Columns returns a copy of the column names in order.
func (t *Table) Columns() []string {
	cols := make([]string, len(t.columns))
	copy(cols, t.columns)
	return cols
}

// ColCount returns the number of columns.
func (t *Table) ColCount() int {
	return len(t.columns)
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	return len(t.rows)
}

// ColumnIndex returns the position of the named column, or -1 if absent.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.columns {
		if c == name {
			return i
		}
	}
	return -1
}

// AppendRow adds a row of cells. The row must hold exactly one cell per
// column.
func (t *Table) AppendRow(cells ...Cell) error {
	if len(cells) != len(t.columns) {
		return fmt.Errorf("model: row has %d cells, table has %d columns", len(cells), len(t.columns))
	}
	row := make([]Cell, len(cells))
	copy(row, cells)
	t.rows = append(t.rows, row)
	return nil
}

// Row returns a copy of the row at the given 0-indexed position, or nil if
// out of bounds.
func (t *Table) Row(i int) []Cell {
	if i < 0 || i >= len(t.rows) {
		return nil
	}
	row := make([]Cell, len(t.rows[i]))
	copy(row, t.rows[i])
	return row
}

// Cell returns the cell at the given 0-indexed row and column. Out-of-bounds
// positions return a missing cell.
func (t *Table) Cell(row, col int) Cell {
	if row < 0 || row >= len(t.rows) {
		return Missing()
	}
	if col < 0 || col >= len(t.rows[row]) {
		return Missing()
	}
	return t.rows[row][col]
}

// CellByName returns the cell at the given row in the named column. The
// second return is false when the column does not exist or the row is out
// of bounds.
func (t *Table) CellByName(row int, column string) (Cell, bool) {
	col := t.ColumnIndex(column)
	if col < 0 || row < 0 || row >= len(t.rows) {
		return Missing(), false
	}
	return t.rows[row][col], true
}

// Equal reports whether two tables have the same columns, in the same
// order, and the same cell values in the same positions.
func (t *Table) Equal(o *Table) bool {
	if t == nil || o == nil {
		return t == o
	}
	if len(t.columns) != len(o.columns) || len(t.rows) != len(o.rows) {
		return false
	}
	for i, c := range t.columns {
		if o.columns[i] != c {
			return false
		}
	}
	for i, row := range t.rows {
		for j, cell := range row {
			if !cell.Equal(o.rows[i][j]) {
				return false
			}
		}
	}
	return true
}

// GetText renders the table as tab-separated text, one line per row,
// header first. Intended for debugging and quick display.
func (t *Table) GetText() string {
	var sb strings.Builder
	for j, c := range t.columns {
		if j > 0 {
			sb.WriteString("\t")
		}
		sb.WriteString(c)
	}
	sb.WriteString("\n")
	for _, row := range t.rows {
		for j, cell := range row {
			if j > 0 {
				sb.WriteString("\t")
			}
			sb.WriteString(cell.String())
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
