// Package table holds the in-memory season ratings table.
//
// A Table is built once at startup and never mutated afterwards: headers and the
// team-name column are normalized eagerly in New, so lookups can share it freely.
package table

import (
	"strings"
	"unicode"
)

// teamColumnMarker identifies the team-name column by substring
const teamColumnMarker = "team"

// Table is an immutable set of team rows addressed by normalized header
type Table struct {
	headers []string
	rows    [][]string
	columns map[string]int
	teamCol int
}

// Row is a single team row of a Table
type Row struct {
	table *Table
	index int
}

// New builds a Table from raw headers and rows. Headers are normalized with
// NormalizeHeader; the team column, when present, is normalized with NormalizeName.
// Input slices are copied.
func New(headers []string, rows [][]string) *Table {
	t := &Table{
		headers: make([]string, len(headers)),
		rows:    make([][]string, len(rows)),
		columns: make(map[string]int, len(headers)),
		teamCol: -1,
	}

	for i, h := range headers {
		norm := NormalizeHeader(h)
		t.headers[i] = norm
		// Duplicate headers resolve to the first occurrence
		if _, exists := t.columns[norm]; !exists {
			t.columns[norm] = i
		}
		if t.teamCol < 0 && strings.Contains(norm, teamColumnMarker) {
			t.teamCol = i
		}
	}

	for i, row := range rows {
		cells := make([]string, len(row))
		copy(cells, row)
		if t.teamCol >= 0 && t.teamCol < len(cells) {
			cells[t.teamCol] = NormalizeName(cells[t.teamCol])
		}
		t.rows[i] = cells
	}

	return t
}

// NormalizeHeader drops non-ASCII characters and all whitespace, then lower-cases.
// "Strength of Schedule" becomes "strengthofschedule".
func NormalizeHeader(h string) string {
	var b strings.Builder
	b.Grow(len(h))
	for _, r := range h {
		if r > unicode.MaxASCII || unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// NormalizeName trims and lower-cases a team name
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Headers returns the normalized headers
func (t *Table) Headers() []string {
	out := make([]string, len(t.headers))
	copy(out, t.headers)
	return out
}

// Len returns the number of rows
func (t *Table) Len() int {
	return len(t.rows)
}

// Row returns the i-th row in load order
func (t *Table) Row(i int) Row {
	return Row{table: t, index: i}
}

// TeamColumn returns the header of the team-name column
func (t *Table) TeamColumn() (string, bool) {
	if t.teamCol < 0 {
		return "", false
	}
	return t.headers[t.teamCol], true
}

// Names returns every normalized team name in load order.
// It returns nil when the table has no team column.
func (t *Table) Names() []string {
	if t.teamCol < 0 {
		return nil
	}
	names := make([]string, len(t.rows))
	for i := range t.rows {
		names[i] = t.Row(i).Name()
	}
	return names
}

// Index returns the row position in load order
func (r Row) Index() int {
	return r.index
}

// Name returns the normalized team name, or "" when the table has no team column
func (r Row) Name() string {
	name, _ := r.cell(r.table.teamCol)
	return name
}

// Value returns the raw cell for a normalized header.
// ok is false when the column does not exist or the row is short.
func (r Row) Value(header string) (string, bool) {
	col, exists := r.table.columns[header]
	if !exists {
		return "", false
	}
	return r.cell(col)
}

func (r Row) cell(col int) (string, bool) {
	if col < 0 {
		return "", false
	}
	cells := r.table.rows[r.index]
	if col >= len(cells) {
		return "", false
	}
	return cells[col], true
}
