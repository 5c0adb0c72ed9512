package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

// Required numeric columns of the record set.
const (
	ColumnRevenue = "revenue"
	ColumnCost    = "cost"
	ColumnProfit  = "profit"
)

// ErrMissingColumn marks a required column absent from the loaded table.
var ErrMissingColumn = errors.New("missing required column")

// Accepted layouts for the date column, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// Load parses the delimited data file into a SalesTable, interpreting
// dateColumn as calendar dates. Row order and every original column are
// preserved.
func Load(path, dateColumn string) (*domain.SalesTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open data file %q: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("data file %q is empty", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse data file %q: %w", path, err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	dateIdx := -1
	for i, name := range header {
		if name == dateColumn {
			dateIdx = i
			break
		}
	}
	if dateIdx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, dateColumn)
	}

	table := &domain.SalesTable{Columns: header, DateColumn: dateColumn}
	for line := 2; ; line++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse data file %q: %w", path, err)
		}

		day, err := parseDate(record[dateIdx])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		cells := make(map[string]string, len(header))
		for i, name := range header {
			cells[name] = strings.TrimSpace(record[i])
		}
		table.Rows = append(table.Rows, domain.SalesRecord{Date: day, Cells: cells})
	}

	return table, nil
}

// ValidateSchema confirms the numeric columns the aggregation depends on are
// present. Types and value ranges are not checked here.
func ValidateSchema(table *domain.SalesTable) error {
	for _, name := range []string{ColumnRevenue, ColumnCost} {
		if !table.HasColumn(name) {
			return fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}
	return nil
}

// parseDate normalizes a raw cell to a day-precision UTC time.
func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, fmt.Errorf("unrecognized date value %q", raw)
}
