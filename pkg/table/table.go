package table

import (
	"strings"
)

// Cell holds a single value read from a tabular source. A Cell that is not
// Present stands for an empty or unparseable cell.
type Cell struct {
	Text    string
	Present bool
}

// Absent is the sentinel for empty or "not a number" cells.
var Absent = Cell{}

// Text builds a present cell.
func Text(value string) Cell {
	return Cell{Text: value, Present: true}
}

// ParseCell normalises a raw textual cell. Empty strings and the literal
// "nan" (as emitted by spreadsheet exports) map to Absent.
func ParseCell(raw string) Cell {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.EqualFold(trimmed, "nan") {
		return Absent
	}
	return Text(raw)
}

// Table is an immutable, column-oriented view over one parsed source. Column
// order follows the source header; every column carries the same number of
// rows.
type Table struct {
	origin  string
	columns []string
	cells   map[string][]Cell
	rows    int
}

// New builds a Table from a header row and data rows. Short rows are padded
// with Absent, surplus cells beyond the header are dropped, and duplicate
// header names keep their first column.
func New(origin string, header []string, rows [][]string) *Table {
	t := &Table{
		origin: origin,
		cells:  make(map[string][]Cell, len(header)),
		rows:   len(rows),
	}

	positions := make([]int, 0, len(header))
	names := make([]string, 0, len(header))
	for idx, raw := range header {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		if _, exists := t.cells[name]; exists {
			continue
		}
		t.cells[name] = make([]Cell, len(rows))
		t.columns = append(t.columns, name)
		positions = append(positions, idx)
		names = append(names, name)
	}

	for rowIdx, row := range rows {
		for i, pos := range positions {
			if pos >= len(row) {
				continue
			}
			t.cells[names[i]][rowIdx] = ParseCell(row[pos])
		}
	}
	return t
}

// FromColumns builds a Table from an already parsed column mapping. Columns
// shorter than the longest one are padded with Absent.
func FromColumns(origin string, order []string, columns map[string][]Cell) *Table {
	t := &Table{
		origin: origin,
		cells:  make(map[string][]Cell, len(columns)),
	}
	for _, values := range columns {
		if len(values) > t.rows {
			t.rows = len(values)
		}
	}
	for _, name := range order {
		values, ok := columns[name]
		if !ok {
			continue
		}
		if _, exists := t.cells[name]; exists {
			continue
		}
		padded := make([]Cell, t.rows)
		copy(padded, values)
		t.cells[name] = padded
		t.columns = append(t.columns, name)
	}
	return t
}

// Origin returns the label used to identify the source in diagnostics.
func (t *Table) Origin() string {
	if t == nil {
		return ""
	}
	return t.origin
}

// Columns returns the column names in source order.
func (t *Table) Columns() []string {
	if t == nil {
		return nil
	}
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// Rows reports the number of data rows.
func (t *Table) Rows() int {
	if t == nil {
		return 0
	}
	return t.rows
}

// Has reports whether the table carries the named column.
func (t *Table) Has(column string) bool {
	if t == nil {
		return false
	}
	_, ok := t.cells[column]
	return ok
}

// Cell returns the cell at the given column and row. Missing columns and out
// of range rows yield Absent.
func (t *Table) Cell(column string, row int) Cell {
	if t == nil || row < 0 || row >= t.rows {
		return Absent
	}
	values, ok := t.cells[column]
	if !ok {
		return Absent
	}
	return values[row]
}
