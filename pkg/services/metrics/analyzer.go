package metrics

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/services/dataset"
)

// ErrNotNumeric marks a cell that cannot be read as a number.
var ErrNotNumeric = errors.New("value is not numeric")

// Analyze derives the per-row profit column in place and computes the
// whole-dataset summary. The table must have passed schema validation.
func Analyze(table *domain.SalesTable) (domain.SummaryReport, error) {
	var totalRevenue, totalCost, totalProfit float64

	for i := range table.Rows {
		row := &table.Rows[i]
		revenue, err := CellFloat(*row, dataset.ColumnRevenue)
		if err != nil {
			return domain.SummaryReport{}, fmt.Errorf("row %d: %w", i+1, err)
		}
		cost, err := CellFloat(*row, dataset.ColumnCost)
		if err != nil {
			return domain.SummaryReport{}, fmt.Errorf("row %d: %w", i+1, err)
		}

		profit := revenue - cost
		row.Cells[dataset.ColumnProfit] = strconv.FormatFloat(profit, 'f', -1, 64)

		totalRevenue += revenue
		totalCost += cost
		totalProfit += profit
	}
	table.AddColumn(dataset.ColumnProfit)

	// Margin is defined as zero when there is no revenue.
	margin := 0.0
	if totalRevenue != 0 {
		margin = totalProfit / totalRevenue
	}

	return domain.SummaryReport{
		GeneratedAt: time.Now(),
		Metrics: []domain.SummaryMetric{
			{Name: domain.MetricTotalRevenue, Value: totalRevenue},
			{Name: domain.MetricTotalCost, Value: totalCost},
			{Name: domain.MetricTotalProfit, Value: totalProfit},
			{Name: domain.MetricProfitMargin, Value: PercentOf(margin)},
		},
	}, nil
}

// CellFloat reads one cell as a float64.
func CellFloat(row domain.SalesRecord, column string) (float64, error) {
	raw, ok := row.Cells[column]
	if !ok {
		return 0, fmt.Errorf("%w: %s", dataset.ErrMissingColumn, column)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: column %q holds %q", ErrNotNumeric, column, raw)
	}
	return v, nil
}

// PercentOf converts a ratio to a percentage rounded to two decimals.
func PercentOf(ratio float64) float64 {
	return math.Round(ratio*100*100) / 100
}
