// Package charts renders the analysis results as PNG images: an overview
// sheet (content types, release trend, top genres, top countries), a
// duration and rating sheet, and a year-by-month heatmap of catalog
// additions.
//
// The individual panels are drawn with go-chart and composited into one
// image per sheet; the heatmap grid is drawn directly because go-chart has
// no matrix plot.
package charts

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/wcharczuk/go-chart/v2"

	"catalogeda/internal/config"
	"catalogeda/internal/dataprocessing"
	apperrors "catalogeda/internal/errors"
	"catalogeda/pkg/contracts/domain"
)

const (
	panelWidth  = 640
	panelHeight = 480
)

// Renderer renders analysis charts into the charts directory.
type Renderer struct {
	logger *slog.Logger
	paths  *config.Paths

	// heatmapYears limits the heatmap to the most recent N observed years.
	heatmapYears int
}

// NewRenderer creates a chart renderer. heatmapYears <= 0 means 10.
func NewRenderer(logger *slog.Logger, paths *config.Paths, heatmapYears int) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	if heatmapYears <= 0 {
		heatmapYears = 10
	}
	return &Renderer{logger: logger, paths: paths, heatmapYears: heatmapYears}
}

// RenderAll renders the three chart sheets.
func (r *Renderer) RenderAll(table *domain.Table, result *dataprocessing.AnalysisResult) error {
	if err := r.RenderOverview(r.paths.OverviewPNG, result); err != nil {
		return err
	}
	if err := r.RenderDurationRatings(r.paths.DurationRatingsPNG, table, result); err != nil {
		return err
	}
	if err := r.RenderHeatmap(r.paths.HeatmapPNG, result.Heatmap); err != nil {
		return err
	}

	r.logger.Info("charts rendered",
		slog.String("charts_dir", r.paths.ChartsDir))

	return nil
}

// RenderOverview renders the 2x2 overview sheet: content-type bars, the
// release trend for the last 20 years, and the top genre and country bars.
func (r *Renderer) RenderOverview(path string, result *dataprocessing.AnalysisResult) error {
	var panels []image.Image

	typeBars := make([]chart.Value, 0, len(result.Types))
	for _, t := range result.Types {
		typeBars = append(typeBars, chart.Value{Label: string(t.Type), Value: float64(t.Count)})
	}
	panel, err := renderBarChart("Movies vs TV Shows", typeBars)
	if err != nil {
		return apperrors.NewStorageError("failed to render content-type chart", err)
	}
	panels = append(panels, panel)

	trend := result.Trend
	if len(trend) > 20 {
		trend = trend[len(trend)-20:]
	}
	panel, err = renderTrendChart("Releases Over Years", trend)
	if err != nil {
		return apperrors.NewStorageError("failed to render release-trend chart", err)
	}
	panels = append(panels, panel)

	panel, err = renderBarChart("Top Genres", labelValues(result.Genres))
	if err != nil {
		return apperrors.NewStorageError("failed to render genre chart", err)
	}
	panels = append(panels, panel)

	panel, err = renderBarChart("Top Countries", labelValues(result.Countries))
	if err != nil {
		return apperrors.NewStorageError("failed to render country chart", err)
	}
	panels = append(panels, panel)

	return r.writeComposite(path, panels, 2)
}

// RenderDurationRatings renders the duration histograms per content type
// and the rating pie chart on one sheet.
func (r *Renderer) RenderDurationRatings(path string, table *domain.Table, result *dataprocessing.AnalysisResult) error {
	var panels []image.Image

	movieMinutes := durations(table, domain.ContentTypeMovie)
	panel, err := renderHistogram("Movie Duration (minutes)", movieMinutes, 30)
	if err != nil {
		return apperrors.NewStorageError("failed to render movie duration histogram", err)
	}
	panels = append(panels, panel)

	seasons := durations(table, domain.ContentTypeTVShow)
	panel, err = renderHistogram("TV Show Seasons", seasons, 20)
	if err != nil {
		return apperrors.NewStorageError("failed to render season histogram", err)
	}
	panels = append(panels, panel)

	pieValues := make([]chart.Value, 0, len(result.Ratings))
	for _, rating := range result.Ratings {
		pieValues = append(pieValues, chart.Value{Label: rating.Rating, Value: float64(rating.Count)})
	}
	panel, err = renderPieChart("Content Ratings", pieValues)
	if err != nil {
		return apperrors.NewStorageError("failed to render rating pie chart", err)
	}
	panels = append(panels, panel)

	return r.writeComposite(path, panels, 3)
}

// writeComposite lays the panels out on a grid with the given number of
// columns and writes the PNG.
func (r *Renderer) writeComposite(path string, panels []image.Image, columns int) error {
	if len(panels) == 0 {
		return apperrors.NewValidationError("no chart panels to compose")
	}

	rows := (len(panels) + columns - 1) / columns
	canvas := image.NewRGBA(image.Rect(0, 0, columns*panelWidth, rows*panelHeight))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)

	for i, panel := range panels {
		x := (i % columns) * panelWidth
		y := (i / columns) * panelHeight
		target := image.Rect(x, y, x+panelWidth, y+panelHeight)
		draw.Draw(canvas, target, panel, panel.Bounds().Min, draw.Over)
	}

	return writePNG(path, canvas)
}

// renderBarChart draws a labelled bar chart panel. Empty or all-zero data
// yields a blank panel: go-chart cannot draw a zero value range.
func renderBarChart(title string, bars []chart.Value) (image.Image, error) {
	maxValue := 0.0
	for _, bar := range bars {
		if bar.Value > maxValue {
			maxValue = bar.Value
		}
	}
	if len(bars) == 0 || maxValue == 0 {
		return blankPanel(), nil
	}

	graph := chart.BarChart{
		Title:  title,
		Width:  panelWidth,
		Height: panelHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 10, Bottom: 10},
		},
		BarWidth: barWidthFor(len(bars)),
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: maxValue * 1.1},
		},
		Bars: bars,
	}

	return renderToImage(func(buf *bytes.Buffer) error {
		return graph.Render(chart.PNG, buf)
	})
}

// renderTrendChart draws the release trend line panel. Fewer than two years
// cannot form a line and yield a blank panel.
func renderTrendChart(title string, trend []dataprocessing.YearCount) (image.Image, error) {
	if len(trend) < 2 {
		return blankPanel(), nil
	}

	xs := make([]float64, 0, len(trend))
	ys := make([]float64, 0, len(trend))
	maxCount := 0.0
	for _, y := range trend {
		xs = append(xs, float64(y.Year))
		ys = append(ys, float64(y.Count))
		if float64(y.Count) > maxCount {
			maxCount = float64(y.Count)
		}
	}

	graph := chart.Chart{
		Title:  title,
		Width:  panelWidth,
		Height: panelHeight,
		XAxis:  chart.XAxis{ValueFormatter: chart.IntValueFormatter},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: maxCount*1.1 + 1},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{XValues: xs, YValues: ys},
		},
	}

	return renderToImage(func(buf *bytes.Buffer) error {
		return graph.Render(chart.PNG, buf)
	})
}

// renderPieChart draws the rating share panel.
func renderPieChart(title string, values []chart.Value) (image.Image, error) {
	total := 0.0
	for _, value := range values {
		total += value.Value
	}
	if total == 0 {
		return blankPanel(), nil
	}

	graph := chart.PieChart{
		Title:  title,
		Width:  panelWidth,
		Height: panelHeight,
		Values: values,
	}

	return renderToImage(func(buf *bytes.Buffer) error {
		return graph.Render(chart.PNG, buf)
	})
}

// blankPanel returns an empty white panel.
func blankPanel() image.Image {
	panel := image.NewRGBA(image.Rect(0, 0, panelWidth, panelHeight))
	draw.Draw(panel, panel.Bounds(), image.White, image.Point{}, draw.Src)
	return panel
}

// renderHistogram bins the values and draws them as a bar chart panel.
func renderHistogram(title string, values []float64, bins int) (image.Image, error) {
	return renderBarChart(title, histogramBars(values, bins))
}

// histogramBars bins values into equal-width buckets labelled by their
// lower bound.
func histogramBars(values []float64, bins int) []chart.Value {
	if len(values) == 0 || bins <= 0 {
		return nil
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	width := (hi - lo) / float64(bins)
	if width == 0 {
		return []chart.Value{{Label: fmt.Sprintf("%.0f", lo), Value: float64(len(values))}}
	}

	counts := make([]int, bins)
	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}

	bars := make([]chart.Value, 0, bins)
	for i, count := range counts {
		bars = append(bars, chart.Value{
			Label: fmt.Sprintf("%.0f", lo+float64(i)*width),
			Value: float64(count),
		})
	}
	return bars
}

// durations collects the valid duration values for one content type.
func durations(table *domain.Table, contentType domain.ContentType) []float64 {
	var values []float64
	for i := range table.Rows {
		row := &table.Rows[i]
		if row.Type == contentType && row.DurationOK {
			values = append(values, float64(row.DurationValue))
		}
	}
	return values
}

// labelValues converts label counts to chart values.
func labelValues(counts []dataprocessing.LabelCount) []chart.Value {
	values := make([]chart.Value, 0, len(counts))
	for _, c := range counts {
		values = append(values, chart.Value{Label: c.Label, Value: float64(c.Count)})
	}
	return values
}

// barWidthFor sizes bars so the chart stays inside the panel.
func barWidthFor(n int) int {
	if n <= 0 {
		return 40
	}
	width := (panelWidth - 100) / n
	if width > 60 {
		width = 60
	}
	if width < 4 {
		width = 4
	}
	return width
}

// renderToImage runs a go-chart render into a decoded image.
func renderToImage(render func(*bytes.Buffer) error) (image.Image, error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return nil, err
	}
	return png.Decode(&buf)
}

// writePNG encodes the image to the given path, creating directories.
func writePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperrors.NewStorageError("failed to create charts directory", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to create chart file %s", path), err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return apperrors.NewStorageError("failed to encode chart PNG", err)
	}
	return nil
}
