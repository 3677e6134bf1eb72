package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Paths    PathsConfig    `yaml:"paths" envconfig:"PATHS"`
	Analysis AnalysisConfig `yaml:"analysis" envconfig:"ANALYSIS"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"json" validate:"oneof=json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"both" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/analyze.log" validate:"required"`
}

// PathsConfig contains the configurable directory names. They are resolved
// against the executable directory by the Paths type.
type PathsConfig struct {
	DataDir    string `yaml:"data_dir" envconfig:"DATA_DIR" default:"data" validate:"required"`
	ReportsDir string `yaml:"reports_dir" envconfig:"REPORTS_DIR" default:"reports" validate:"required"`
	ChartsDir  string `yaml:"charts_dir" envconfig:"CHARTS_DIR" default:"charts" validate:"required"`
	LogsDir    string `yaml:"logs_dir" envconfig:"LOGS_DIR" default:"logs" validate:"required"`
}

// AnalysisConfig tunes the aggregations.
type AnalysisConfig struct {
	TopGenres    int `yaml:"top_genres" envconfig:"TOP_GENRES" default:"10" validate:"gte=1"`
	TopCountries int `yaml:"top_countries" envconfig:"TOP_COUNTRIES" default:"15" validate:"gte=1"`
	// MinReleaseYear is the lower bound of the plausible release-year range.
	// The upper bound is always next calendar year.
	MinReleaseYear int `yaml:"min_release_year" envconfig:"MIN_RELEASE_YEAR" default:"1870" validate:"gte=1800"`
	// HeatmapYears limits the year-by-month heatmap to the most recent N
	// observed years.
	HeatmapYears int `yaml:"heatmap_years" envconfig:"HEATMAP_YEARS" default:"10" validate:"gte=1"`
}

// Load loads configuration from environment variables (prefix CATALOG) and
// an optional config.yaml. File settings override the built-in defaults.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("CATALOG", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if configFile := findConfigFile(); configFile != "" {
		fileCfg, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configFile, err)
		}
		cfg = mergeConfigs(*fileCfg, cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the configuration against the struct validation tags.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs overlays non-zero file settings on the env-derived config.
func mergeConfigs(fileCfg, envCfg Config) Config {
	merged := envCfg

	if fileCfg.Logging.Level != "" {
		merged.Logging.Level = fileCfg.Logging.Level
	}
	if fileCfg.Logging.Output != "" {
		merged.Logging.Output = fileCfg.Logging.Output
	}
	if fileCfg.Logging.FilePath != "" {
		merged.Logging.FilePath = fileCfg.Logging.FilePath
	}
	if fileCfg.Paths.DataDir != "" {
		merged.Paths.DataDir = fileCfg.Paths.DataDir
	}
	if fileCfg.Paths.ReportsDir != "" {
		merged.Paths.ReportsDir = fileCfg.Paths.ReportsDir
	}
	if fileCfg.Paths.ChartsDir != "" {
		merged.Paths.ChartsDir = fileCfg.Paths.ChartsDir
	}
	if fileCfg.Paths.LogsDir != "" {
		merged.Paths.LogsDir = fileCfg.Paths.LogsDir
	}
	if fileCfg.Analysis.TopGenres != 0 {
		merged.Analysis.TopGenres = fileCfg.Analysis.TopGenres
	}
	if fileCfg.Analysis.TopCountries != 0 {
		merged.Analysis.TopCountries = fileCfg.Analysis.TopCountries
	}
	if fileCfg.Analysis.MinReleaseYear != 0 {
		merged.Analysis.MinReleaseYear = fileCfg.Analysis.MinReleaseYear
	}
	if fileCfg.Analysis.HeatmapYears != 0 {
		merged.Analysis.HeatmapYears = fileCfg.Analysis.HeatmapYears
	}

	return merged
}

// findConfigFile returns the path of the first config file found in the
// common locations, or empty when only env vars should be used.
func findConfigFile() string {
	locations := []string{
		"config.yaml",
		"configs/config.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return ""
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "both",
			FilePath: "logs/analyze.log",
		},
		Paths: PathsConfig{
			DataDir:    "data",
			ReportsDir: "reports",
			ChartsDir:  "charts",
			LogsDir:    "logs",
		},
		Analysis: AnalysisConfig{
			TopGenres:      10,
			TopCountries:   15,
			MinReleaseYear: 1870,
			HeatmapYears:   10,
		},
	}
}
