// Package reporter renders the analysis result as a sectioned text report
// for the console or any writer.
package reporter

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"catalogeda/internal/dataprocessing"
)

const bannerWidth = 50

// Reporter writes a human-readable analysis summary.
type Reporter struct {
	w io.Writer
}

// New creates a reporter writing to w.
func New(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Write renders the complete report.
func (r *Reporter) Write(source string, result *dataprocessing.AnalysisResult) error {
	sections := []func(*dataprocessing.AnalysisResult) error{
		func(res *dataprocessing.AnalysisResult) error { return r.writeQuality(source, res.Quality) },
		r.writeTypes,
		r.writeTrend,
		r.writeGenres,
		r.writeCountries,
		r.writeDurations,
		r.writeRatings,
	}

	for _, section := range sections {
		if err := section(result); err != nil {
			return err
		}
	}
	return nil
}

func (r *Reporter) banner(title string) error {
	line := strings.Repeat("=", bannerWidth)
	_, err := fmt.Fprintf(r.w, "\n%s\n%s\n%s\n", line, title, line)
	return err
}

func (r *Reporter) writeQuality(source string, q *dataprocessing.QualityReport) error {
	if err := r.banner("DATA CLEANING"); err != nil {
		return err
	}
	fmt.Fprintf(r.w, "Source: %s\n", source)
	fmt.Fprintf(r.w, "Rows before cleaning: %d\n", q.RowsBefore)
	fmt.Fprintf(r.w, "Rows after cleaning:  %d\n", q.RowsAfter)
	fmt.Fprintf(r.w, "Duplicates removed:   %d\n", q.DuplicatesRemoved)
	if q.UnrecognizedType > 0 {
		fmt.Fprintf(r.w, "Rows with unrecognized type: %d\n", q.UnrecognizedType)
	}

	if len(q.MissingBefore) > 0 {
		fmt.Fprintln(r.w, "\nMissing values before cleaning:")
		for _, col := range sortedKeys(q.MissingBefore) {
			fmt.Fprintf(r.w, "  %-14s %d\n", col, q.MissingBefore[col])
		}
	}
	if len(q.Malformed) > 0 {
		fmt.Fprintln(r.w, "\nMalformed values:")
		for _, col := range sortedKeys(q.Malformed) {
			fmt.Fprintf(r.w, "  %-14s %d\n", col, q.Malformed[col])
		}
	}
	return nil
}

func (r *Reporter) writeTypes(result *dataprocessing.AnalysisResult) error {
	if err := r.banner("CONTENT TYPE ANALYSIS"); err != nil {
		return err
	}
	for _, t := range result.Types {
		fmt.Fprintf(r.w, "%s: %d (%.1f%%)\n", t.Type, t.Count, t.Percent)
	}
	return nil
}

func (r *Reporter) writeTrend(result *dataprocessing.AnalysisResult) error {
	if err := r.banner("RELEASE TREND ANALYSIS"); err != nil {
		return err
	}
	if len(result.Trend) == 0 {
		fmt.Fprintln(r.w, "No rows with a valid release year.")
		return nil
	}

	first := result.Trend[0].Year
	last := result.Trend[len(result.Trend)-1].Year
	fmt.Fprintf(r.w, "Release year range: %d - %d\n\n", first, last)

	fmt.Fprintln(r.w, "Most recent 10 years:")
	start := len(result.Trend) - 10
	if start < 0 {
		start = 0
	}
	for _, y := range result.Trend[start:] {
		fmt.Fprintf(r.w, "  %d: %d releases\n", y.Year, y.Count)
	}
	return nil
}

func (r *Reporter) writeGenres(result *dataprocessing.AnalysisResult) error {
	if err := r.banner("GENRE ANALYSIS"); err != nil {
		return err
	}
	for i, g := range result.Genres {
		fmt.Fprintf(r.w, "%2d. %s: %d\n", i+1, g.Label, g.Count)
	}
	return nil
}

func (r *Reporter) writeCountries(result *dataprocessing.AnalysisResult) error {
	if err := r.banner("COUNTRY ANALYSIS"); err != nil {
		return err
	}
	for i, c := range result.Countries {
		fmt.Fprintf(r.w, "%2d. %s: %d\n", i+1, c.Label, c.Count)
	}
	return nil
}

func (r *Reporter) writeDurations(result *dataprocessing.AnalysisResult) error {
	if err := r.banner("DURATION ANALYSIS"); err != nil {
		return err
	}
	for _, s := range result.Durations {
		fmt.Fprintf(r.w, "%s (%s, %d titles):\n", s.Type, s.Unit, s.Count)
		fmt.Fprintf(r.w, "  mean %.1f, median %.1f, range %.0f - %.0f\n",
			s.Mean, s.Median, s.Min, s.Max)
	}
	return nil
}

func (r *Reporter) writeRatings(result *dataprocessing.AnalysisResult) error {
	if err := r.banner("RATING ANALYSIS"); err != nil {
		return err
	}
	for _, rating := range result.Ratings {
		fmt.Fprintf(r.w, "%s: %d (%.1f%%)\n", rating.Rating, rating.Count, rating.Percent)
	}
	return nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
