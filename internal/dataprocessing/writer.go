package dataprocessing

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"retailcli/internal/config"
	"retailcli/internal/errors"
	"retailcli/pkg/contracts/domain"
)

// invoiceDateOutputLayout is the timestamp format used in the clean CSV.
const invoiceDateOutputLayout = "2006-01-02 15:04:05"

// Result bundles everything one pipeline run produced, ready for the writer
// and the renderer.
type Result struct {
	RawCount     int
	Clean        []domain.Transaction
	Monthly      []domain.MonthlyRevenue
	TopCountries []domain.RevenueGroup
	TopProducts  []domain.RevenueGroup
}

// Writer serializes the clean table and the three summary views to CSV files.
// Existing files are overwritten unconditionally.
type Writer struct {
	logger *slog.Logger
}

// NewWriter creates a writer. A nil logger falls back to slog.Default.
func NewWriter(logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{logger: logger}
}

// WriteAll writes the four output tables to their fixed locations.
func (w *Writer) WriteAll(ctx context.Context, paths *config.Paths, result *Result) error {
	if err := w.WriteCleanCSV(ctx, paths.CleanCSV, result.Clean); err != nil {
		return err
	}
	if err := w.WriteMonthlyCSV(ctx, paths.MonthlyRevenueCSV, result.Monthly); err != nil {
		return err
	}
	if err := w.WriteRevenueCSV(ctx, paths.CountryRevenueCSV, "Country", result.TopCountries); err != nil {
		return err
	}
	return w.WriteRevenueCSV(ctx, paths.TopProductsCSV, "Description", result.TopProducts)
}

// WriteCleanCSV writes the cleaned transaction table.
func (w *Writer) WriteCleanCSV(ctx context.Context, path string, txs []domain.Transaction) error {
	w.logger.InfoContext(ctx, "writing clean transactions to CSV",
		slog.String("path", path),
		slog.Int("row_count", len(txs)))

	writer, closeFile, err := w.createCSV(path)
	if err != nil {
		return err
	}
	defer closeFile()
	defer writer.Flush()

	header := []string{
		"InvoiceNo", "StockCode", "Description", "Quantity", "InvoiceDate",
		"UnitPrice", "CustomerID", "Country", "TotalPrice", "YearMonth",
	}
	if err := writer.Write(header); err != nil {
		return errors.NewStorageError("failed to write CSV header row", err)
	}

	for _, tx := range txs {
		row := []string{
			tx.InvoiceNo,
			tx.StockCode,
			tx.Description,
			fmt.Sprintf("%d", tx.Quantity),
			tx.InvoiceDate.Format(invoiceDateOutputLayout),
			fmt.Sprintf("%.2f", tx.UnitPrice),
			tx.CustomerID,
			tx.Country,
			fmt.Sprintf("%.2f", tx.TotalPrice),
			tx.YearMonth,
		}
		if err := writer.Write(row); err != nil {
			return errors.NewStorageError("failed to write CSV data row", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.NewStorageError("failed to flush CSV output", err)
	}

	return nil
}

// WriteMonthlyCSV writes the monthly revenue time series.
func (w *Writer) WriteMonthlyCSV(ctx context.Context, path string, monthly []domain.MonthlyRevenue) error {
	w.logger.InfoContext(ctx, "writing monthly revenue to CSV",
		slog.String("path", path),
		slog.Int("row_count", len(monthly)))

	writer, closeFile, err := w.createCSV(path)
	if err != nil {
		return err
	}
	defer closeFile()
	defer writer.Flush()

	if err := writer.Write([]string{"YearMonth", "Revenue"}); err != nil {
		return errors.NewStorageError("failed to write CSV header row", err)
	}

	for _, m := range monthly {
		row := []string{m.YearMonth, fmt.Sprintf("%.2f", m.Revenue)}
		if err := writer.Write(row); err != nil {
			return errors.NewStorageError("failed to write CSV data row", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.NewStorageError("failed to flush CSV output", err)
	}

	return nil
}

// WriteRevenueCSV writes one of the top-N ranking tables. keyHeader names the
// grouping column ("Country" or "Description").
func (w *Writer) WriteRevenueCSV(ctx context.Context, path, keyHeader string, groups []domain.RevenueGroup) error {
	w.logger.InfoContext(ctx, "writing revenue ranking to CSV",
		slog.String("path", path),
		slog.String("grouped_by", keyHeader),
		slog.Int("row_count", len(groups)))

	writer, closeFile, err := w.createCSV(path)
	if err != nil {
		return err
	}
	defer closeFile()
	defer writer.Flush()

	if err := writer.Write([]string{keyHeader, "Revenue"}); err != nil {
		return errors.NewStorageError("failed to write CSV header row", err)
	}

	for _, g := range groups {
		row := []string{g.Key, fmt.Sprintf("%.2f", g.Revenue)}
		if err := writer.Write(row); err != nil {
			return errors.NewStorageError("failed to write CSV data row", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.NewStorageError("failed to flush CSV output", err)
	}

	return nil
}

// createCSV ensures the parent directory exists and opens the file for a
// full rewrite.
func (w *Writer) createCSV(path string) (*csv.Writer, func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, errors.NewStorageError("failed to create directory for CSV output", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, nil, errors.NewStorageError("failed to create CSV file", err)
	}

	return csv.NewWriter(file), func() { file.Close() }, nil
}
