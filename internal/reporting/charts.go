// Package reporting renders the summary views as chart images.
package reporting

import (
	"context"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"retailcli/internal/errors"
	"retailcli/pkg/contracts/domain"
)

// Renderer draws the two report figures. Charts are write-once artifacts;
// existing images are overwritten.
type Renderer struct {
	logger *slog.Logger
}

// NewRenderer creates a renderer. A nil logger falls back to slog.Default.
func NewRenderer(logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{logger: logger}
}

// RenderMonthlyTrend draws the monthly revenue line chart. Months appear on
// the x-axis in chronological order with rotated tick labels.
func (r *Renderer) RenderMonthlyTrend(ctx context.Context, monthly []domain.MonthlyRevenue, path string) error {
	r.logger.InfoContext(ctx, "rendering monthly revenue trend",
		slog.String("path", path),
		slog.Int("month_count", len(monthly)))

	p := plot.New()
	p.Title.Text = "Monthly Revenue Trend"
	p.X.Label.Text = "Year-Month"
	p.Y.Label.Text = "Revenue"

	// An input whose rows were all filtered still produces a figure, just an
	// empty one. NominalX cannot take zero labels.
	if len(monthly) == 0 {
		return r.save(p, 10*vg.Inch, 5*vg.Inch, path)
	}

	pts := make(plotter.XYs, len(monthly))
	labels := make([]string, len(monthly))
	for i, m := range monthly {
		pts[i].X = float64(i)
		pts[i].Y = m.Revenue
		labels[i] = m.YearMonth
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return errors.NewRenderError("failed to build revenue line", err)
	}
	p.Add(line)
	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	return r.save(p, 10*vg.Inch, 5*vg.Inch, path)
}

// RenderTopCountries draws the country ranking as a horizontal bar chart.
// The input is descending by revenue; rows are reversed before plotting so
// the largest bar lands nearest the top of the image.
func (r *Renderer) RenderTopCountries(ctx context.Context, countries []domain.RevenueGroup, path string) error {
	r.logger.InfoContext(ctx, "rendering top countries chart",
		slog.String("path", path),
		slog.Int("country_count", len(countries)))

	p := plot.New()
	p.Title.Text = "Top 10 Countries by Revenue"
	p.X.Label.Text = "Revenue"

	// Empty ranking: NewBarChart rejects zero values, so save the bare plot.
	if len(countries) == 0 {
		return r.save(p, 10*vg.Inch, 6*vg.Inch, path)
	}

	values := make(plotter.Values, len(countries))
	names := make([]string, len(countries))
	for i, c := range countries {
		j := len(countries) - 1 - i
		values[j] = c.Revenue
		names[j] = c.Key
	}

	bars, err := plotter.NewBarChart(values, vg.Points(14))
	if err != nil {
		return errors.NewRenderError("failed to build country bars", err)
	}
	bars.Horizontal = true
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalY(names...)

	return r.save(p, 10*vg.Inch, 6*vg.Inch, path)
}

// save ensures the figure directory exists and writes the image.
func (r *Renderer) save(p *plot.Plot, w, h vg.Length, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewStorageError("failed to create directory for figure output", err)
	}

	if err := p.Save(w, h, path); err != nil {
		return errors.NewRenderError("failed to save figure", err).
			WithContext("path", path)
	}

	return nil
}
