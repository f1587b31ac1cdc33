package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathsAt(t *testing.T) {
	root := t.TempDir()
	paths := PathsAt(root)

	assert.Equal(t, root, paths.ExecutableDir)
	assert.Equal(t, filepath.Join(root, "data", "raw"), paths.RawDir)
	assert.Equal(t, filepath.Join(root, "data", "processed"), paths.ProcessedDir)
	assert.Equal(t, filepath.Join(root, "reports", "figures"), paths.FiguresDir)

	assert.Equal(t, filepath.Join(paths.RawDir, "online_retail_II.csv"), paths.RawCSV)
	assert.Equal(t, filepath.Join(paths.ProcessedDir, "online_retail_clean.csv"), paths.CleanCSV)
	assert.Equal(t, filepath.Join(paths.ProcessedDir, "monthly_revenue.csv"), paths.MonthlyRevenueCSV)
	assert.Equal(t, filepath.Join(paths.ProcessedDir, "country_revenue_top10.csv"), paths.CountryRevenueCSV)
	assert.Equal(t, filepath.Join(paths.ProcessedDir, "top_products.csv"), paths.TopProductsCSV)
	assert.Equal(t, filepath.Join(paths.FiguresDir, "monthly_revenue_trend.png"), paths.MonthlyTrendPNG)
	assert.Equal(t, filepath.Join(paths.FiguresDir, "top_countries_revenue.png"), paths.TopCountriesPNG)
}

func TestEnsureDirectories(t *testing.T) {
	paths := PathsAt(t.TempDir())

	require.NoError(t, paths.EnsureDirectories())

	for _, dir := range []string{paths.DataDir, paths.RawDir, paths.ProcessedDir, paths.ReportsDir, paths.FiguresDir, paths.LogsDir} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	// Idempotent
	require.NoError(t, paths.EnsureDirectories())
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.csv")

	assert.False(t, FileExists(path))

	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	assert.True(t, FileExists(path))
}

func TestGetLogPath(t *testing.T) {
	paths := PathsAt(t.TempDir())
	assert.Equal(t, filepath.Join(paths.LogsDir, "analyzer.log"), paths.GetLogPath("analyzer.log"))
}
