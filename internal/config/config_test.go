package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "both", cfg.Logging.Output)
	assert.Equal(t, 10, cfg.Analysis.TopGenres)
	assert.Equal(t, 15, cfg.Analysis.TopCountries)
	assert.Equal(t, 1870, cfg.Analysis.MinReleaseYear)
	assert.Equal(t, 10, cfg.Analysis.HeatmapYears)

	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "invalid log level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: true,
		},
		{
			name:    "invalid log output",
			mutate:  func(c *Config) { c.Logging.Output = "syslog" },
			wantErr: true,
		},
		{
			name:    "zero top genres",
			mutate:  func(c *Config) { c.Analysis.TopGenres = 0 },
			wantErr: true,
		},
		{
			name:    "implausible min release year",
			mutate:  func(c *Config) { c.Analysis.MinReleaseYear = 1500 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("CATALOG_ANALYSIS_TOP_GENRES", "5")
	t.Setenv("CATALOG_LOGGING_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Analysis.TopGenres)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Untouched settings keep their defaults.
	assert.Equal(t, 15, cfg.Analysis.TopCountries)
}

func TestLoad_RejectsInvalidEnv(t *testing.T) {
	t.Setenv("CATALOG_LOGGING_LEVEL", "shouting")

	_, err := Load()
	assert.Error(t, err)
}

func TestMergeConfigs(t *testing.T) {
	env := *Default()
	file := Config{}
	file.Logging.Level = "warn"
	file.Analysis.TopCountries = 7

	merged := mergeConfigs(file, env)

	assert.Equal(t, "warn", merged.Logging.Level)
	assert.Equal(t, 7, merged.Analysis.TopCountries)
	// Settings absent from the file keep the env values.
	assert.Equal(t, "both", merged.Logging.Output)
	assert.Equal(t, 10, merged.Analysis.TopGenres)
}
