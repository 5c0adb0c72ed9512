package domain

import "time"

// Canonical metric names, in report order.
const (
	MetricTotalRevenue = "Total Revenue"
	MetricTotalCost    = "Total Cost"
	MetricTotalProfit  = "Total Profit"
	MetricProfitMargin = "Profit Margin (%)"
)

// SummaryReport holds the whole-dataset aggregates for one run.
type SummaryReport struct {
	GeneratedAt time.Time
	Metrics     []SummaryMetric
}

// SummaryMetric is one (name, value) pair of the summary.
type SummaryMetric struct {
	Name  string
	Value float64
}

// DailyRevenuePoint is revenue summed over every row sharing Date.
type DailyRevenuePoint struct {
	Date    time.Time
	Revenue float64
}
