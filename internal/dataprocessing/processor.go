package dataprocessing

import (
	"context"
	"log/slog"

	"catalogeda/pkg/contracts/domain"
)

// Processor runs the full load, clean and aggregate pipeline over one
// catalog source. Stages run strictly in order; the table produced by the
// loader is owned by the cleaner until cleaning finishes and is read-only
// for every aggregation afterwards.
type Processor struct {
	logger  *slog.Logger
	cleaner *Cleaner

	topGenres    int
	topCountries int
}

// ProcessorConfig holds the pipeline options.
type ProcessorConfig struct {
	TopGenres      int
	TopCountries   int
	MinReleaseYear int
}

// NewProcessor creates a pipeline processor.
func NewProcessor(logger *slog.Logger, cfg ProcessorConfig) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.TopGenres <= 0 {
		cfg.TopGenres = 10
	}
	if cfg.TopCountries <= 0 {
		cfg.TopCountries = 15
	}

	return &Processor{
		logger:       logger,
		cleaner:      NewCleaner(logger, CleanerConfig{MinReleaseYear: cfg.MinReleaseYear}),
		topGenres:    cfg.TopGenres,
		topCountries: cfg.TopCountries,
	}
}

// Run loads the source, cleans it and computes every aggregation. On a fatal
// error (unreadable source, schema mismatch, empty result) it returns the
// typed error; row-level problems only appear in the quality report.
func (p *Processor) Run(ctx context.Context, source string) (*domain.Table, *AnalysisResult, error) {
	p.logger.InfoContext(ctx, "starting catalog analysis",
		slog.String("source", source))

	table, err := LoadFile(source)
	if err != nil {
		return nil, nil, err
	}

	quality, err := p.cleaner.Clean(ctx, table)
	if err != nil {
		return nil, nil, err
	}

	result := &AnalysisResult{
		Quality:   quality,
		Types:     TypeDistribution(table),
		Trend:     ReleaseTrend(table),
		Genres:    GenrePopularity(table, p.topGenres),
		Countries: CountryDistribution(table, p.topCountries),
		Durations: DurationStatistics(table),
		Ratings:   RatingDistribution(table),
		Heatmap:   AddedHeatmap(table),
	}

	p.logger.InfoContext(ctx, "catalog analysis completed",
		slog.String("source", source),
		slog.Int("rows", quality.RowsAfter),
		slog.Int("trend_years", len(result.Trend)),
		slog.Int("heatmap_years", len(result.Heatmap)))

	return table, result, nil
}
