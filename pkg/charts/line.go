package charts

import (
	"errors"
	"fmt"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Options carry the configurable chart labels.
type Options struct {
	Title  string
	XLabel string
	YLabel string
}

// RenderLine draws the daily revenue series as a line chart with circular
// point markers and gridlines, and saves it to path. The image format follows
// the path extension.
func RenderLine(points []domain.DailyRevenuePoint, path string, opts Options) error {
	if len(points) == 0 {
		return errors.New("no data points to plot")
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01-02"}
	p.Add(plotter.NewGrid())

	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i].X = float64(pt.Date.Unix())
		xys[i].Y = pt.Revenue
	}

	line, markers, err := plotter.NewLinePoints(xys)
	if err != nil {
		return fmt.Errorf("failed to build line plot: %w", err)
	}
	markers.Shape = draw.CircleGlyph{}
	p.Add(line, markers)

	if err := p.Save(10*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save plot to %q: %w", path, err)
	}
	return nil
}
