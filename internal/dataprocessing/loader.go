package dataprocessing

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"retailcli/internal/config"
	"retailcli/internal/errors"
	"retailcli/pkg/contracts/domain"
)

// Columns the loader must find in the header row. CustomerID is not listed:
// the cleaner never checks it, so a log exported without that column still
// parses and the field stays empty.
var requiredColumns = []string{
	"InvoiceNo",
	"StockCode",
	"Description",
	"Quantity",
	"InvoiceDate",
	"UnitPrice",
	"Country",
}

// LoadTransactions reads a retail transaction log into raw records. The file
// format is chosen by extension: .xlsx goes through excelize, everything else
// is treated as comma-delimited text with a header row.
//
// The existence check runs before any read is attempted, so a missing path
// always surfaces as a NOT_FOUND error rather than a parse failure. Rows are
// never dropped here; unparseable or empty cells are recorded as nulls for
// the cleaner to deal with.
func LoadTransactions(path string) ([]domain.RawTransaction, error) {
	if !config.FileExists(path) {
		return nil, errors.NewNotFoundError(fmt.Sprintf("raw data file %s", path))
	}

	var (
		rows [][]string
		err  error
	)
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		rows, err = readXLSX(path)
	} else {
		rows, err = readCSV(path)
	}
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, errors.NewParsingError("transaction log has no header row", nil).
			WithContext("path", path)
	}

	columnMap, err := mapColumns(rows[0])
	if err != nil {
		return nil, err
	}

	raws := make([]domain.RawTransaction, 0, len(rows)-1)
	for _, row := range rows[1:] {
		raws = append(raws, rawFromRow(row, columnMap))
	}

	slog.Info("loaded transaction log",
		slog.String("path", path),
		slog.Int("row_count", len(raws)))

	return raws, nil
}

// readCSV reads all rows of a comma-delimited file. The csv reader enforces
// uniform field counts against the header, so a row with the wrong arity is
// a parse failure, not a partially loaded record.
func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.NewStorageError("failed to open transaction log", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.NewParsingError("transaction log is not valid delimited data", err).
				WithContext("path", path)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// readXLSX reads all rows of the first sheet of an Excel workbook.
func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.NewParsingError("failed to open Excel workbook", err).
			WithContext("path", path)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.NewParsingError("Excel workbook has no sheets", nil).
			WithContext("path", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.NewParsingError("failed to read Excel sheet", err).
			WithContext("sheet", sheets[0])
	}

	return rows, nil
}

// mapColumns maps header names to column positions and verifies every
// required column is present.
func mapColumns(header []string) (map[string]int, error) {
	columnMap := make(map[string]int, len(header))
	for i, name := range header {
		columnMap[strings.TrimSpace(name)] = i
	}

	for _, col := range requiredColumns {
		if _, exists := columnMap[col]; !exists {
			return nil, errors.NewParsingError(fmt.Sprintf("required column %q is missing", col), nil)
		}
	}

	return columnMap, nil
}

// rawFromRow extracts one raw record using the header column mapping.
func rawFromRow(row []string, columnMap map[string]int) domain.RawTransaction {
	getString := func(colName string) string {
		if idx, exists := columnMap[colName]; exists && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	return domain.RawTransaction{
		InvoiceNo:   getString("InvoiceNo"),
		StockCode:   getString("StockCode"),
		Description: descriptionCell(row, columnMap),
		Quantity:    parseQuantity(getString("Quantity")),
		InvoiceDate: parseInvoiceDate(getString("InvoiceDate")),
		UnitPrice:   parseUnitPrice(getString("UnitPrice")),
		CustomerID:  getString("CustomerID"),
		Country:     countryCell(row, columnMap),
	}
}

// descriptionCell preserves surrounding whitespace; trimming is a cleaning
// step, and the null-check must see the cell as it was.
func descriptionCell(row []string, columnMap map[string]int) string {
	if idx, exists := columnMap["Description"]; exists && idx < len(row) {
		return row[idx]
	}
	return ""
}

func countryCell(row []string, columnMap map[string]int) string {
	if idx, exists := columnMap["Country"]; exists && idx < len(row) {
		return row[idx]
	}
	return ""
}

// parseQuantity parses an integer quantity, tolerating thousands separators.
// Returns nil for empty or unparseable cells.
func parseQuantity(s string) *int64 {
	if s == "" {
		return nil
	}
	val, err := strconv.ParseInt(strings.ReplaceAll(s, ",", ""), 10, 64)
	if err != nil {
		return nil
	}
	return &val
}

// parseUnitPrice parses a decimal price. Returns nil for empty or
// unparseable cells.
func parseUnitPrice(s string) *float64 {
	if s == "" {
		return nil
	}
	val, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return nil
	}
	return &val
}

// parseInvoiceDate tries each accepted timestamp layout in order. Returns
// nil when none match, which the cleaner's null-check then drops.
func parseInvoiceDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range config.InvoiceDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
