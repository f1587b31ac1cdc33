package main

import (
	"context"
	"encoding/csv"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retailcli/internal/config"
	"retailcli/internal/errors"
)

const fixtureCSV = `InvoiceNo,StockCode,Description,Quantity,InvoiceDate,UnitPrice,CustomerID,Country
536365,85123A,WHITE HANGING HEART,6,2011-01-05 08:26:00,2.55,17850,United Kingdom
536366,71053,WHITE METAL LANTERN,2,2011-01-20 08:28:00,10.00,17850,United Kingdom
C536367,22728,ALARM CLOCK BAKELIKE RED,5,2011-01-20 09:00:00,2.00,13047,France
536368,22728,ALARM CLOCK BAKELIKE RED,-3,2011-02-01 10:00:00,3.75,13047,France
536369,22727,ALARM CLOCK BAKELIKE GREEN,4,2011-02-03 11:00:00,3.75,,France
`

func readAllCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func setupRun(t *testing.T) *config.Paths {
	t.Helper()
	paths := config.PathsAt(t.TempDir())
	require.NoError(t, paths.EnsureDirectories())
	require.NoError(t, os.WriteFile(paths.RawCSV, []byte(fixtureCSV), 0644))
	return paths
}

func TestRun_EndToEnd(t *testing.T) {
	paths := setupRun(t)

	err := run(context.Background(), slog.Default(), paths)
	require.NoError(t, err)

	for _, p := range []string{
		paths.CleanCSV,
		paths.MonthlyRevenueCSV,
		paths.CountryRevenueCSV,
		paths.TopProductsCSV,
		paths.MonthlyTrendPNG,
		paths.TopCountriesPNG,
	} {
		assert.FileExists(t, p, filepath.Base(p))
	}

	rows := readAllCSV(t, paths.CleanCSV)

	// 5 raw rows: one cancellation and one negative quantity are dropped
	assert.Len(t, rows, 4, "header plus three clean rows")

	monthly := readAllCSV(t, paths.MonthlyRevenueCSV)
	require.Len(t, monthly, 3)
	assert.Equal(t, []string{"2011-01", "35.30"}, monthly[1])
	assert.Equal(t, []string{"2011-02", "15.00"}, monthly[2])
}

func TestRun_RepeatRunsAreByteIdentical(t *testing.T) {
	paths := setupRun(t)
	ctx := context.Background()

	require.NoError(t, run(ctx, slog.Default(), paths))
	want, err := os.ReadFile(paths.MonthlyRevenueCSV)
	require.NoError(t, err)

	require.NoError(t, run(ctx, slog.Default(), paths))
	got, err := os.ReadFile(paths.MonthlyRevenueCSV)
	require.NoError(t, err)

	assert.Equal(t, want, got)
}

func TestRun_AllRowsFiltered(t *testing.T) {
	paths := config.PathsAt(t.TempDir())
	require.NoError(t, paths.EnsureDirectories())

	// Every row is a cancellation: the pipeline must still write all outputs,
	// with empty tables and empty figures.
	content := "InvoiceNo,StockCode,Description,Quantity,InvoiceDate,UnitPrice,CustomerID,Country\n" +
		"C536365,85123A,WHITE HANGING HEART,6,2011-01-05 08:26:00,2.55,17850,United Kingdom\n" +
		"C536366,71053,WHITE METAL LANTERN,2,2011-01-20 08:28:00,10.00,17850,United Kingdom\n"
	require.NoError(t, os.WriteFile(paths.RawCSV, []byte(content), 0644))

	err := run(context.Background(), slog.Default(), paths)
	require.NoError(t, err)

	rows := readAllCSV(t, paths.MonthlyRevenueCSV)
	require.Len(t, rows, 1, "header only")
	assert.Equal(t, []string{"YearMonth", "Revenue"}, rows[0])

	assert.FileExists(t, paths.MonthlyTrendPNG)
	assert.FileExists(t, paths.TopCountriesPNG)
}

func TestRun_MissingInput(t *testing.T) {
	paths := config.PathsAt(t.TempDir())
	require.NoError(t, paths.EnsureDirectories())

	err := run(context.Background(), slog.Default(), paths)

	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeNotFound), "want NOT_FOUND, got %v", err)

	// MissingInput aborts before any output is produced
	assert.NoFileExists(t, paths.CleanCSV)
	assert.NoFileExists(t, paths.MonthlyTrendPNG)
}
