package table

// Snapshot is the serializable form of a Table, used for caching
type Snapshot struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// Snapshot captures the table's normalized headers and rows
func (t *Table) Snapshot() Snapshot {
	rows := make([][]string, len(t.rows))
	for i, row := range t.rows {
		cells := make([]string, len(row))
		copy(cells, row)
		rows[i] = cells
	}
	return Snapshot{Headers: t.Headers(), Rows: rows}
}

// FromSnapshot rebuilds a Table. Normalization is idempotent, so a snapshot of a
// normalized table restores the same table.
func FromSnapshot(s Snapshot) *Table {
	return New(s.Headers, s.Rows)
}
