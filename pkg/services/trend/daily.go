package trend

import (
	"fmt"
	"sort"
	"time"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/services/dataset"
	"github.com/de-tools/sales-atlas/pkg/services/metrics"
	"golang.org/x/exp/maps"
)

// DailyRevenue groups the table by its date column and sums revenue within
// each group. Points come back ordered by date ascending; only dates present
// in the input appear.
func DailyRevenue(table *domain.SalesTable) ([]domain.DailyRevenuePoint, error) {
	byDate := make(map[time.Time]float64)
	for i, row := range table.Rows {
		revenue, err := metrics.CellFloat(row, dataset.ColumnRevenue)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		byDate[row.Date] += revenue
	}

	dates := maps.Keys(byDate)
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	points := make([]domain.DailyRevenuePoint, 0, len(dates))
	for _, day := range dates {
		points = append(points, domain.DailyRevenuePoint{Date: day, Revenue: byDate[day]})
	}
	return points, nil
}
