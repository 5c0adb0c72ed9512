package domain

import "time"

// SalesTable is the in-memory view of the loaded record set. Row order and
// column order match the source file.
type SalesTable struct {
	Columns    []string
	DateColumn string
	Rows       []SalesRecord
}

// SalesRecord is a single row. Date holds the parsed value of the configured
// date column; Cells keeps every original cell keyed by column name.
type SalesRecord struct {
	Date  time.Time
	Cells map[string]string
}

// HasColumn reports whether the table carries a column with the given name.
func (t *SalesTable) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// AddColumn registers a derived column. Adding an existing column is a no-op
// so re-deriving stays idempotent.
func (t *SalesTable) AddColumn(name string) {
	if !t.HasColumn(name) {
		t.Columns = append(t.Columns, name)
	}
}
