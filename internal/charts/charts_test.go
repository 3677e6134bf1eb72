package charts

import (
	"image/png"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalogeda/internal/config"
	"catalogeda/internal/dataprocessing"
	"catalogeda/pkg/contracts/domain"
)

func testPaths(t *testing.T) *config.Paths {
	t.Helper()
	return config.NewPaths(t.TempDir(), config.Default().Paths)
}

func sampleTable() *domain.Table {
	return &domain.Table{
		Source:  "catalog.csv",
		Columns: append([]string(nil), domain.CanonicalColumns...),
		Rows: []domain.Record{
			{Type: domain.ContentTypeMovie, DurationValue: 90, DurationOK: true},
			{Type: domain.ContentTypeMovie, DurationValue: 120, DurationOK: true},
			{Type: domain.ContentTypeMovie, DurationValue: 150, DurationOK: true},
			{Type: domain.ContentTypeTVShow, DurationValue: 2, DurationOK: true},
			{Type: domain.ContentTypeTVShow, DurationValue: 5, DurationOK: true},
			{Type: domain.ContentTypeMovie, DurationValue: 0, DurationOK: false},
		},
	}
}

func sampleResult() *dataprocessing.AnalysisResult {
	return &dataprocessing.AnalysisResult{
		Types: []dataprocessing.TypeCount{
			{Type: domain.ContentTypeMovie, Count: 4, Percent: 66.7},
			{Type: domain.ContentTypeTVShow, Count: 2, Percent: 33.3},
		},
		Trend: []dataprocessing.YearCount{
			{Year: 2018, Count: 1},
			{Year: 2019, Count: 0},
			{Year: 2020, Count: 5},
		},
		Genres:    []dataprocessing.LabelCount{{Label: "Dramas", Count: 4}, {Label: "Comedies", Count: 2}},
		Countries: []dataprocessing.LabelCount{{Label: "India", Count: 3}},
		Ratings: []dataprocessing.RatingCount{
			{Rating: "TV-MA", Count: 4, Percent: 66.7},
			{Rating: "PG", Count: 2, Percent: 33.3},
		},
		Heatmap: []dataprocessing.HeatmapYear{
			{Year: 2019, Months: [12]int{0, 0, 1}},
			{Year: 2020, Months: [12]int{2, 0, 0, 4}},
		},
	}
}

func requireValidPNG(t *testing.T, path string) {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	img, err := png.Decode(file)
	require.NoError(t, err)
	assert.Positive(t, img.Bounds().Dx())
	assert.Positive(t, img.Bounds().Dy())
}

func TestRenderAll(t *testing.T) {
	paths := testPaths(t)
	renderer := NewRenderer(nil, paths, 10)

	require.NoError(t, renderer.RenderAll(sampleTable(), sampleResult()))

	requireValidPNG(t, paths.OverviewPNG)
	requireValidPNG(t, paths.DurationRatingsPNG)
	requireValidPNG(t, paths.HeatmapPNG)
}

func TestRenderAll_SparseResult(t *testing.T) {
	paths := testPaths(t)
	renderer := NewRenderer(nil, paths, 10)

	// A single usable row leaves most panels degenerate: no trend line, one
	// histogram bucket, an empty season partition.
	table := &domain.Table{
		Rows: []domain.Record{{Type: domain.ContentTypeMovie, DurationValue: 90, DurationOK: true}},
	}
	result := &dataprocessing.AnalysisResult{
		Types:   []dataprocessing.TypeCount{{Type: domain.ContentTypeMovie, Count: 1, Percent: 100}},
		Trend:   []dataprocessing.YearCount{{Year: 2020, Count: 1}},
		Ratings: []dataprocessing.RatingCount{{Rating: "PG", Count: 1, Percent: 100}},
	}

	require.NoError(t, renderer.RenderAll(table, result))

	requireValidPNG(t, paths.OverviewPNG)
	requireValidPNG(t, paths.DurationRatingsPNG)
	requireValidPNG(t, paths.HeatmapPNG)
}

func TestRenderHeatmap_LimitsYears(t *testing.T) {
	paths := testPaths(t)
	renderer := NewRenderer(nil, paths, 2)

	heatmap := []dataprocessing.HeatmapYear{
		{Year: 2017, Months: [12]int{9}},
		{Year: 2018, Months: [12]int{1}},
		{Year: 2019, Months: [12]int{2}},
	}
	require.NoError(t, renderer.RenderHeatmap(paths.HeatmapPNG, heatmap))

	file, err := os.Open(paths.HeatmapPNG)
	require.NoError(t, err)
	defer file.Close()

	img, err := png.Decode(file)
	require.NoError(t, err)
	// Two year rows survive the limit.
	assert.Equal(t, 2*heatmapCellH+2*heatmapPadding, img.Bounds().Dy())
}

func TestRenderHeatmap_Empty(t *testing.T) {
	paths := testPaths(t)
	renderer := NewRenderer(nil, paths, 10)

	require.NoError(t, renderer.RenderHeatmap(paths.HeatmapPNG, nil))
	requireValidPNG(t, paths.HeatmapPNG)
}

func TestHeatColor(t *testing.T) {
	pale := heatColor(0, 10)
	assert.Equal(t, uint8(255), pale.R)
	assert.Equal(t, uint8(204), pale.B)

	hot := heatColor(10, 10)
	assert.Equal(t, uint8(189), hot.R)
	assert.Equal(t, uint8(0), hot.G)
	assert.Equal(t, uint8(38), hot.B)

	// All-zero heatmaps fall back to the pale end.
	assert.Equal(t, pale, heatColor(0, 0))
}

func TestHistogramBars(t *testing.T) {
	bars := histogramBars([]float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 5)
	require.Len(t, bars, 5)

	total := 0.0
	for _, bar := range bars {
		total += bar.Value
	}
	assert.Equal(t, 10.0, total)

	// The maximum lands in the last bucket, not past it.
	assert.Equal(t, 2.0, bars[4].Value)
}

func TestHistogramBars_Degenerate(t *testing.T) {
	assert.Nil(t, histogramBars(nil, 10))
	assert.Nil(t, histogramBars([]float64{1, 2}, 0))

	flat := histogramBars([]float64{5, 5, 5}, 10)
	require.Len(t, flat, 1)
	assert.Equal(t, "5", flat[0].Label)
	assert.Equal(t, 3.0, flat[0].Value)
}

func TestBarWidthFor(t *testing.T) {
	assert.Equal(t, 40, barWidthFor(0))
	assert.Equal(t, 60, barWidthFor(2))
	assert.Equal(t, 4, barWidthFor(500))
}

func TestDurations(t *testing.T) {
	table := sampleTable()

	movies := durations(table, domain.ContentTypeMovie)
	assert.Equal(t, []float64{90, 120, 150}, movies)

	shows := durations(table, domain.ContentTypeTVShow)
	assert.Equal(t, []float64{2, 5}, shows)
}
