package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the application paths.
// This is the single source of truth for file locations: everything is
// resolved relative to the executable directory, never the working
// directory, so the tool behaves the same wherever it is invoked from.
type Paths struct {
	ExecutableDir string
	DataDir       string
	ReportsDir    string
	ChartsDir     string
	LogsDir       string

	// Well-known output files.
	SummaryJSON        string
	TypeDistCSV        string
	ReleaseTrendCSV    string
	GenresCSV          string
	CountriesCSV       string
	DurationStatsCSV   string
	RatingsCSV         string
	HeatmapCSV         string
	OverviewPNG        string
	DurationRatingsPNG string
	HeatmapPNG         string
}

// GetPaths resolves the application paths from the configured directory
// names relative to the executable location.
//
// Directory structure:
//
//	<exe dir>/
//	  ├── data/
//	  │   ├── reports/   (CSV/JSON analysis outputs)
//	  │   └── charts/    (rendered PNG charts)
//	  └── logs/
func GetPaths(cfg PathsConfig) (*Paths, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %w", err)
	}

	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve executable symlinks: %w", err)
	}

	return NewPaths(filepath.Dir(exe), cfg), nil
}

// NewPaths builds the path set rooted at the given base directory. Split out
// from GetPaths so tests can root everything in a temp directory.
func NewPaths(baseDir string, cfg PathsConfig) *Paths {
	dataDir := join(baseDir, cfg.DataDir)
	reportsDir := join(dataDir, cfg.ReportsDir)
	chartsDir := join(dataDir, cfg.ChartsDir)

	return &Paths{
		ExecutableDir: baseDir,
		DataDir:       dataDir,
		ReportsDir:    reportsDir,
		ChartsDir:     chartsDir,
		LogsDir:       join(baseDir, cfg.LogsDir),

		SummaryJSON:        filepath.Join(reportsDir, "analysis_summary.json"),
		TypeDistCSV:        filepath.Join(reportsDir, "type_distribution.csv"),
		ReleaseTrendCSV:    filepath.Join(reportsDir, "release_trend.csv"),
		GenresCSV:          filepath.Join(reportsDir, "top_genres.csv"),
		CountriesCSV:       filepath.Join(reportsDir, "top_countries.csv"),
		DurationStatsCSV:   filepath.Join(reportsDir, "duration_stats.csv"),
		RatingsCSV:         filepath.Join(reportsDir, "rating_distribution.csv"),
		HeatmapCSV:         filepath.Join(reportsDir, "added_heatmap.csv"),
		OverviewPNG:        filepath.Join(chartsDir, "catalog_overview.png"),
		DurationRatingsPNG: filepath.Join(chartsDir, "catalog_duration_ratings.png"),
		HeatmapPNG:         filepath.Join(chartsDir, "catalog_heatmap.png"),
	}
}

// join resolves sub against base unless sub is already absolute.
func join(base, sub string) string {
	if filepath.IsAbs(sub) {
		return sub
	}
	return filepath.Join(base, sub)
}

// EnsureDirectories creates all required directories if they don't exist.
func (p *Paths) EnsureDirectories() error {
	directories := []string{
		p.DataDir,
		p.ReportsDir,
		p.ChartsDir,
		p.LogsDir,
	}

	for _, dir := range directories {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// GetReportPath returns the path of a file inside the reports directory.
func (p *Paths) GetReportPath(name string) string {
	return filepath.Join(p.ReportsDir, name)
}

// GetChartPath returns the path of a file inside the charts directory.
func (p *Paths) GetChartPath(name string) string {
	return filepath.Join(p.ChartsDir, name)
}

// GetLogPath returns the path of a file inside the logs directory.
func (p *Paths) GetLogPath(name string) string {
	return filepath.Join(p.LogsDir, name)
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
