package exporter

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"catalogeda/internal/config"
	"catalogeda/internal/dataprocessing"
	apperrors "catalogeda/internal/errors"
)

// SummaryExporter writes every aggregation output to the reports directory:
// one CSV per analysis topic plus a combined JSON summary that includes the
// quality report.
type SummaryExporter struct {
	logger *slog.Logger
	paths  *config.Paths
	csv    *CSVWriter
}

// NewSummaryExporter creates a summary exporter rooted at the given paths.
func NewSummaryExporter(logger *slog.Logger, paths *config.Paths) *SummaryExporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SummaryExporter{
		logger: logger,
		paths:  paths,
		csv:    NewCSVWriter(logger),
	}
}

// Export writes all result tables. The first failure aborts with a storage
// error naming the file.
func (e *SummaryExporter) Export(result *dataprocessing.AnalysisResult) error {
	writers := []struct {
		path  string
		write func(path string) error
	}{
		{e.paths.TypeDistCSV, func(p string) error { return e.writeTypeDistribution(p, result.Types) }},
		{e.paths.ReleaseTrendCSV, func(p string) error { return e.writeReleaseTrend(p, result.Trend) }},
		{e.paths.GenresCSV, func(p string) error { return e.writeLabelCounts(p, "Genre", result.Genres) }},
		{e.paths.CountriesCSV, func(p string) error { return e.writeLabelCounts(p, "Country", result.Countries) }},
		{e.paths.DurationStatsCSV, func(p string) error { return e.writeDurationStats(p, result.Durations) }},
		{e.paths.RatingsCSV, func(p string) error { return e.writeRatings(p, result.Ratings) }},
		{e.paths.HeatmapCSV, func(p string) error { return e.writeHeatmap(p, result.Heatmap) }},
	}

	for _, w := range writers {
		if err := w.write(w.path); err != nil {
			return apperrors.NewStorageError(fmt.Sprintf("failed to write %s", w.path), err)
		}
	}

	if err := e.WriteSummaryJSON(e.paths.SummaryJSON, result); err != nil {
		return err
	}

	e.logger.Info("analysis reports exported",
		slog.String("reports_dir", e.paths.ReportsDir))

	return nil
}

// WriteSummaryJSON writes the combined analysis summary with metadata.
func (e *SummaryExporter) WriteSummaryJSON(path string, result *dataprocessing.AnalysisResult) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperrors.NewStorageError("failed to create directory for JSON summary", err)
	}

	payload := map[string]interface{}{
		"analysis":     result,
		"generated_at": time.Now().Format(time.RFC3339),
		"format":       "catalog_analysis_v1",
	}

	file, err := os.Create(path)
	if err != nil {
		return apperrors.NewStorageError("failed to create JSON summary file", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(payload); err != nil {
		return apperrors.NewStorageError("failed to encode JSON summary", err)
	}

	e.logger.Info("wrote analysis summary", slog.String("path", path))

	return nil
}

func (e *SummaryExporter) writeTypeDistribution(path string, types []dataprocessing.TypeCount) error {
	records := make([][]string, 0, len(types))
	for _, t := range types {
		records = append(records, []string{
			string(t.Type),
			strconv.Itoa(t.Count),
			fmt.Sprintf("%.1f", t.Percent),
		})
	}
	return e.csv.WriteSimpleCSV(path, []string{"Type", "Count", "Percent"}, records)
}

func (e *SummaryExporter) writeReleaseTrend(path string, trend []dataprocessing.YearCount) error {
	records := make([][]string, 0, len(trend))
	for _, y := range trend {
		records = append(records, []string{strconv.Itoa(y.Year), strconv.Itoa(y.Count)})
	}
	return e.csv.WriteSimpleCSV(path, []string{"Year", "Count"}, records)
}

func (e *SummaryExporter) writeLabelCounts(path, label string, counts []dataprocessing.LabelCount) error {
	records := make([][]string, 0, len(counts))
	for _, c := range counts {
		records = append(records, []string{c.Label, strconv.Itoa(c.Count)})
	}
	return e.csv.WriteSimpleCSV(path, []string{label, "Count"}, records)
}

func (e *SummaryExporter) writeDurationStats(path string, stats []dataprocessing.DurationStats) error {
	records := make([][]string, 0, len(stats))
	for _, s := range stats {
		records = append(records, []string{
			string(s.Type),
			s.Unit,
			strconv.Itoa(s.Count),
			fmt.Sprintf("%.1f", s.Min),
			fmt.Sprintf("%.1f", s.Max),
			fmt.Sprintf("%.1f", s.Mean),
			fmt.Sprintf("%.1f", s.Median),
		})
	}
	return e.csv.WriteSimpleCSV(path, []string{"Type", "Unit", "Count", "Min", "Max", "Mean", "Median"}, records)
}

func (e *SummaryExporter) writeRatings(path string, ratings []dataprocessing.RatingCount) error {
	records := make([][]string, 0, len(ratings))
	for _, r := range ratings {
		records = append(records, []string{
			r.Rating,
			strconv.Itoa(r.Count),
			fmt.Sprintf("%.1f", r.Percent),
		})
	}
	return e.csv.WriteSimpleCSV(path, []string{"Rating", "Count", "Percent"}, records)
}

func (e *SummaryExporter) writeHeatmap(path string, heatmap []dataprocessing.HeatmapYear) error {
	headers := []string{"Year"}
	for month := time.January; month <= time.December; month++ {
		headers = append(headers, month.String()[:3])
	}

	records := make([][]string, 0, len(heatmap))
	for _, year := range heatmap {
		row := []string{strconv.Itoa(year.Year)}
		for _, count := range year.Months {
			row = append(row, strconv.Itoa(count))
		}
		records = append(records, row)
	}
	return e.csv.WriteSimpleCSV(path, headers, records)
}
