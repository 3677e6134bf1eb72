package reporter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalogeda/internal/dataprocessing"
	"catalogeda/pkg/contracts/domain"
)

func sampleResult() *dataprocessing.AnalysisResult {
	return &dataprocessing.AnalysisResult{
		Quality: &dataprocessing.QualityReport{
			RowsBefore:        10,
			RowsAfter:         8,
			DuplicatesRemoved: 2,
			UnrecognizedType:  1,
			MissingBefore:     map[string]int{"director": 3, "country": 1},
			Malformed:         map[string]int{"duration": 1},
		},
		Types: []dataprocessing.TypeCount{
			{Type: domain.ContentTypeMovie, Count: 6, Percent: 75},
			{Type: domain.ContentTypeTVShow, Count: 2, Percent: 25},
		},
		Trend: []dataprocessing.YearCount{
			{Year: 2018, Count: 3},
			{Year: 2019, Count: 0},
			{Year: 2020, Count: 5},
		},
		Genres:    []dataprocessing.LabelCount{{Label: "Dramas", Count: 5}, {Label: "Comedies", Count: 3}},
		Countries: []dataprocessing.LabelCount{{Label: "United States", Count: 4}},
		Durations: []dataprocessing.DurationStats{
			{Type: domain.ContentTypeMovie, Unit: "minutes", Count: 6, Min: 80, Max: 150, Mean: 104.5, Median: 99},
			{Type: domain.ContentTypeTVShow, Unit: "seasons", Count: 2, Min: 1, Max: 4, Mean: 2.5, Median: 2.5},
		},
		Ratings: []dataprocessing.RatingCount{
			{Rating: "TV-MA", Count: 5, Percent: 62.5},
			{Rating: "PG", Count: 3, Percent: 37.5},
		},
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf).Write("catalog.csv", sampleResult()))

	out := buf.String()

	assert.Contains(t, out, "DATA CLEANING")
	assert.Contains(t, out, "Source: catalog.csv")
	assert.Contains(t, out, "Rows before cleaning: 10")
	assert.Contains(t, out, "Duplicates removed:   2")
	assert.Contains(t, out, "Rows with unrecognized type: 1")

	assert.Contains(t, out, "CONTENT TYPE ANALYSIS")
	assert.Contains(t, out, "Movie: 6 (75.0%)")
	assert.Contains(t, out, "TV Show: 2 (25.0%)")

	assert.Contains(t, out, "RELEASE TREND ANALYSIS")
	assert.Contains(t, out, "Release year range: 2018 - 2020")
	assert.Contains(t, out, "2019: 0 releases")

	assert.Contains(t, out, "GENRE ANALYSIS")
	assert.Contains(t, out, " 1. Dramas: 5")
	assert.Contains(t, out, " 2. Comedies: 3")

	assert.Contains(t, out, "COUNTRY ANALYSIS")
	assert.Contains(t, out, " 1. United States: 4")

	assert.Contains(t, out, "DURATION ANALYSIS")
	assert.Contains(t, out, "Movie (minutes, 6 titles):")
	assert.Contains(t, out, "mean 104.5, median 99.0, range 80 - 150")
	assert.Contains(t, out, "TV Show (seasons, 2 titles):")

	assert.Contains(t, out, "RATING ANALYSIS")
	assert.Contains(t, out, "TV-MA: 5 (62.5%)")
}

func TestWrite_MissingValuesSortedByColumn(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf).Write("catalog.csv", sampleResult()))

	out := buf.String()
	assert.Less(t, indexOf(out, "country"), indexOf(out, "director"))
}

func TestWrite_EmptyTrend(t *testing.T) {
	result := sampleResult()
	result.Trend = nil

	var buf bytes.Buffer
	require.NoError(t, New(&buf).Write("catalog.csv", result))

	assert.Contains(t, buf.String(), "No rows with a valid release year.")
}

func indexOf(s, sub string) int {
	return bytes.Index([]byte(s), []byte(sub))
}
