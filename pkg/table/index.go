package table

import (
	"strings"
)

// Match locates one row belonging to an entity.
type Match struct {
	Table *Table
	Row   int
}

// Index wraps the loaded tables and answers which rows belong to an entity
// key. Tables are scanned in the order they were supplied.
type Index struct {
	tables     []*Table
	identifier string
}

// NewIndex builds an Index keyed on the identifier column. Nil tables are
// ignored.
func NewIndex(identifier string, tables ...*Table) *Index {
	idx := &Index{identifier: identifier}
	for _, t := range tables {
		if t == nil {
			continue
		}
		idx.tables = append(idx.tables, t)
	}
	return idx
}

// Identifier returns the column used to correlate rows.
func (i *Index) Identifier() string {
	return i.identifier
}

// Tables returns the indexed tables in scan order.
func (i *Index) Tables() []*Table {
	out := make([]*Table, len(i.tables))
	copy(out, i.tables)
	return out
}

// Keys returns every distinct non-empty identifier value in first-seen order.
// Tables without the identifier column are skipped.
func (i *Index) Keys() []string {
	var keys []string
	seen := make(map[string]struct{})
	for _, t := range i.tables {
		if !t.Has(i.identifier) {
			continue
		}
		for row := 0; row < t.Rows(); row++ {
			key, ok := normalizeKey(t.Cell(i.identifier, row))
			if !ok {
				continue
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			keys = append(keys, key)
		}
	}
	return keys
}

// Lookup returns every (table, row) pair whose identifier equals key, tables
// in scan order and rows in source order.
func (i *Index) Lookup(key string) []Match {
	var matches []Match
	for _, t := range i.tables {
		if !t.Has(i.identifier) {
			continue
		}
		for row := 0; row < t.Rows(); row++ {
			candidate, ok := normalizeKey(t.Cell(i.identifier, row))
			if !ok || candidate != key {
				continue
			}
			matches = append(matches, Match{Table: t, Row: row})
		}
	}
	return matches
}

func normalizeKey(cell Cell) (string, bool) {
	if !cell.Present {
		return "", false
	}
	key := strings.TrimSpace(cell.Text)
	if key == "" {
		return "", false
	}
	return key, true
}
