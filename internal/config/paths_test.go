package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaths(t *testing.T) {
	base := t.TempDir()
	paths := NewPaths(base, Default().Paths)

	assert.Equal(t, base, paths.ExecutableDir)
	assert.Equal(t, filepath.Join(base, "data"), paths.DataDir)
	assert.Equal(t, filepath.Join(base, "data", "reports"), paths.ReportsDir)
	assert.Equal(t, filepath.Join(base, "data", "charts"), paths.ChartsDir)
	assert.Equal(t, filepath.Join(base, "logs"), paths.LogsDir)

	assert.Equal(t, filepath.Join(paths.ReportsDir, "analysis_summary.json"), paths.SummaryJSON)
	assert.Equal(t, filepath.Join(paths.ChartsDir, "catalog_heatmap.png"), paths.HeatmapPNG)
}

func TestNewPaths_AbsoluteOverrides(t *testing.T) {
	base := t.TempDir()
	override := t.TempDir()

	cfg := Default().Paths
	cfg.ReportsDir = override

	paths := NewPaths(base, cfg)

	assert.Equal(t, override, paths.ReportsDir)
	// The other directories still resolve against the base.
	assert.Equal(t, filepath.Join(base, "data", "charts"), paths.ChartsDir)
}

func TestEnsureDirectories(t *testing.T) {
	base := t.TempDir()
	paths := NewPaths(base, Default().Paths)

	require.NoError(t, paths.EnsureDirectories())

	for _, dir := range []string{paths.DataDir, paths.ReportsDir, paths.ChartsDir, paths.LogsDir} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	// Idempotent on existing directories.
	require.NoError(t, paths.EnsureDirectories())
}

func TestPathHelpers(t *testing.T) {
	paths := NewPaths(t.TempDir(), Default().Paths)

	assert.Equal(t, filepath.Join(paths.ReportsDir, "extra.csv"), paths.GetReportPath("extra.csv"))
	assert.Equal(t, filepath.Join(paths.ChartsDir, "extra.png"), paths.GetChartPath("extra.png"))
	assert.Equal(t, filepath.Join(paths.LogsDir, "analyze.log"), paths.GetLogPath("analyze.log"))
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "probe.txt")

	assert.False(t, FileExists(path))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	assert.True(t, FileExists(path))
}
