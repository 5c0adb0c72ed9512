package metrics

import (
	"testing"
	"time"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func salesTable(rows ...map[string]string) *domain.SalesTable {
	t := &domain.SalesTable{
		Columns:    []string{"date", "revenue", "cost"},
		DateColumn: "date",
	}
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, cells := range rows {
		t.Rows = append(t.Rows, domain.SalesRecord{
			Date:  day.AddDate(0, 0, i),
			Cells: cells,
		})
	}
	return t
}

func metricValue(t *testing.T, report domain.SummaryReport, name string) float64 {
	t.Helper()
	for _, m := range report.Metrics {
		if m.Name == name {
			return m.Value
		}
	}
	t.Fatalf("metric %q not found in report", name)
	return 0
}

func TestAnalyze_Totals(t *testing.T) {
	table := salesTable(
		map[string]string{"revenue": "100", "cost": "40"},
		map[string]string{"revenue": "50", "cost": "10"},
		map[string]string{"revenue": "0", "cost": "0"},
	)

	report, err := Analyze(table)
	require.NoError(t, err)

	require.Len(t, report.Metrics, 4)
	assert.Equal(t, domain.MetricTotalRevenue, report.Metrics[0].Name)
	assert.Equal(t, domain.MetricTotalCost, report.Metrics[1].Name)
	assert.Equal(t, domain.MetricTotalProfit, report.Metrics[2].Name)
	assert.Equal(t, domain.MetricProfitMargin, report.Metrics[3].Name)

	assert.InDelta(t, 150, metricValue(t, report, domain.MetricTotalRevenue), 1e-9)
	assert.InDelta(t, 50, metricValue(t, report, domain.MetricTotalCost), 1e-9)
	assert.InDelta(t, 100, metricValue(t, report, domain.MetricTotalProfit), 1e-9)
	assert.InDelta(t, 66.67, metricValue(t, report, domain.MetricProfitMargin), 1e-9)
}

func TestAnalyze_ProfitEqualsRevenueMinusCost(t *testing.T) {
	table := salesTable(
		map[string]string{"revenue": "12.5", "cost": "3.25"},
		map[string]string{"revenue": "7.5", "cost": "1.75"},
	)

	report, err := Analyze(table)
	require.NoError(t, err)

	revenue := metricValue(t, report, domain.MetricTotalRevenue)
	cost := metricValue(t, report, domain.MetricTotalCost)
	profit := metricValue(t, report, domain.MetricTotalProfit)
	assert.InDelta(t, revenue-cost, profit, 1e-9)
}

func TestAnalyze_ZeroRevenue_MarginIsZero(t *testing.T) {
	table := salesTable(
		map[string]string{"revenue": "0", "cost": "25"},
		map[string]string{"revenue": "0", "cost": "10"},
	)

	report, err := Analyze(table)
	require.NoError(t, err)

	assert.Equal(t, 0.0, metricValue(t, report, domain.MetricProfitMargin))
	assert.InDelta(t, -35, metricValue(t, report, domain.MetricTotalProfit), 1e-9)
}

func TestAnalyze_AddsProfitColumnInPlace(t *testing.T) {
	table := salesTable(
		map[string]string{"revenue": "100", "cost": "40"},
	)

	_, err := Analyze(table)
	require.NoError(t, err)

	assert.True(t, table.HasColumn("profit"))
	assert.Equal(t, "60", table.Rows[0].Cells["profit"])
}

func TestAnalyze_EmptyTable(t *testing.T) {
	report, err := Analyze(salesTable())
	require.NoError(t, err)

	assert.Equal(t, 0.0, metricValue(t, report, domain.MetricTotalRevenue))
	assert.Equal(t, 0.0, metricValue(t, report, domain.MetricProfitMargin))
}

func TestAnalyze_NonNumericCell_ReturnsTypedError(t *testing.T) {
	table := salesTable(
		map[string]string{"revenue": "abc", "cost": "1"},
	)

	_, err := Analyze(table)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotNumeric)
	assert.Contains(t, err.Error(), "revenue")
}

func TestPercentOf(t *testing.T) {
	assert.Equal(t, 66.67, PercentOf(100.0/150.0))
	assert.Equal(t, 0.0, PercentOf(0))
	assert.Equal(t, 100.0, PercentOf(1))
	assert.Equal(t, -12.5, PercentOf(-0.125))
}
