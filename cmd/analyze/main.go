// Command analyze runs the catalog analysis pipeline: it loads a content
// catalog (CSV or XLSX), cleans it, computes the descriptive statistics and
// writes the console report, the CSV/JSON exports and the PNG charts.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"catalogeda/internal/charts"
	"catalogeda/internal/config"
	"catalogeda/internal/dataprocessing"
	apperrors "catalogeda/internal/errors"
	"catalogeda/internal/exporter"
	"catalogeda/internal/infrastructure"
	"catalogeda/internal/reporter"
	"catalogeda/internal/validation"
)

func main() {
	input := flag.String("input", "catalog_titles.csv", "catalog source file (.csv or .xlsx)")
	outDir := flag.String("out", "", "reports output directory (defaults to data/reports relative to the executable)")
	chartsDir := flag.String("charts", "", "charts output directory (defaults to data/charts relative to the executable)")
	topGenres := flag.Int("top-genres", 0, "number of genres to report (defaults to config)")
	topCountries := flag.Int("top-countries", 0, "number of countries to report (defaults to config)")
	noCharts := flag.Bool("no-charts", false, "skip chart rendering")
	flag.Parse()

	// .env is optional; real environment always wins.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if *outDir != "" {
		cfg.Paths.ReportsDir = *outDir
	}
	if *chartsDir != "" {
		cfg.Paths.ChartsDir = *chartsDir
	}
	if *topGenres > 0 {
		cfg.Analysis.TopGenres = *topGenres
	}
	if *topCountries > 0 {
		cfg.Analysis.TopCountries = *topCountries
	}

	paths, err := config.GetPaths(cfg.Paths)
	if err != nil {
		slog.Error("failed to resolve paths", "error", err)
		os.Exit(1)
	}
	if err := paths.EnsureDirectories(); err != nil {
		slog.Error("failed to create required directories", "error", err)
		os.Exit(1)
	}

	cfg.Logging.FilePath = paths.GetLogPath("analyze.log")
	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.WithRunID(context.Background(), uuid.NewString())

	logger.InfoContext(ctx, "starting catalog analysis run",
		slog.String("input", *input),
		slog.String("reports_dir", paths.ReportsDir),
		slog.String("charts_dir", paths.ChartsDir))

	validator := validation.NewFileValidator(logger)
	if err := validator.ValidateInputFile(*input); err != nil {
		logger.ErrorContext(ctx, "input validation failed", "error", err)
		os.Exit(1)
	}
	if err := validator.ValidateOutputDirectory(paths.ReportsDir); err != nil {
		logger.ErrorContext(ctx, "output validation failed", "error", err)
		os.Exit(1)
	}

	processor := dataprocessing.NewProcessor(logger, dataprocessing.ProcessorConfig{
		TopGenres:      cfg.Analysis.TopGenres,
		TopCountries:   cfg.Analysis.TopCountries,
		MinReleaseYear: cfg.Analysis.MinReleaseYear,
	})

	table, result, err := processor.Run(ctx, *input)
	if err != nil {
		logger.ErrorContext(ctx, "analysis failed", "error", err)
		exitForError(err)
	}

	if err := reporter.New(os.Stdout).Write(*input, result); err != nil {
		logger.ErrorContext(ctx, "failed to write console report", "error", err)
		os.Exit(1)
	}

	if err := exporter.NewSummaryExporter(logger, paths).Export(result); err != nil {
		logger.ErrorContext(ctx, "failed to export reports", "error", err)
		os.Exit(1)
	}

	if !*noCharts {
		renderer := charts.NewRenderer(logger, paths, cfg.Analysis.HeatmapYears)
		if err := renderer.RenderAll(table, result); err != nil {
			logger.ErrorContext(ctx, "failed to render charts", "error", err)
			os.Exit(1)
		}
		fmt.Println("\nGenerated charts:")
		fmt.Printf("- %s\n", paths.OverviewPNG)
		fmt.Printf("- %s\n", paths.DurationRatingsPNG)
		fmt.Printf("- %s\n", paths.HeatmapPNG)
	}

	logger.InfoContext(ctx, "catalog analysis run completed")
}

// exitForError maps the fatal error taxonomy to distinct exit codes so
// scripts can tell an unreadable input from a schema problem.
func exitForError(err error) {
	switch {
	case apperrors.IsType(err, apperrors.ErrTypeSource):
		os.Exit(2)
	case apperrors.IsType(err, apperrors.ErrTypeSchema):
		os.Exit(3)
	case apperrors.IsType(err, apperrors.ErrTypeEmpty):
		os.Exit(4)
	default:
		os.Exit(1)
	}
}
