package dataprocessing

import (
	"context"
	"log/slog"
	"strings"

	"retailcli/internal/config"
	"retailcli/pkg/contracts/domain"
)

// Cleaner applies the fixed sequence of validity filters to raw transactions
// and derives the TotalPrice and YearMonth fields. Rows either survive every
// rule or are excluded entirely; there is no per-row error reporting.
type Cleaner struct {
	logger *slog.Logger
}

// NewCleaner creates a cleaner. A nil logger falls back to slog.Default.
func NewCleaner(logger *slog.Logger) *Cleaner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cleaner{logger: logger}
}

// Clean filters the raw record set and returns the clean, feature-enriched
// transactions. Rule order is load-bearing: the null-check runs before the
// cancellation check, which runs before the non-positive check, so a row
// with an unparseable date is dropped as null even if its invoice starts
// with "C".
func (c *Cleaner) Clean(ctx context.Context, raws []domain.RawTransaction) []domain.Transaction {
	var droppedNull, droppedCancelled, droppedNonPositive int

	clean := make([]domain.Transaction, 0, len(raws))
	for _, raw := range raws {
		switch {
		case hasNullField(raw):
			droppedNull++
		case strings.HasPrefix(raw.InvoiceNo, "C"):
			droppedCancelled++
		case *raw.Quantity <= 0 || *raw.UnitPrice <= 0:
			droppedNonPositive++
		default:
			clean = append(clean, enrich(raw))
		}
	}

	c.logger.InfoContext(ctx, "cleaned transaction log",
		slog.Int("raw_count", len(raws)),
		slog.Int("clean_count", len(clean)),
		slog.Int("dropped_null", droppedNull),
		slog.Int("dropped_cancelled", droppedCancelled),
		slog.Int("dropped_non_positive", droppedNonPositive))

	return clean
}

// hasNullField reports whether any field the cleaner depends on is missing.
// CustomerID is deliberately not checked; it is carried through as-is.
func hasNullField(raw domain.RawTransaction) bool {
	return raw.InvoiceNo == "" ||
		raw.StockCode == "" ||
		raw.Description == "" ||
		raw.Quantity == nil ||
		raw.InvoiceDate == nil ||
		raw.UnitPrice == nil ||
		raw.Country == ""
}

// enrich builds the clean transaction: tidied text fields plus the two
// derived columns.
func enrich(raw domain.RawTransaction) domain.Transaction {
	tx := domain.Transaction{
		InvoiceNo:   raw.InvoiceNo,
		StockCode:   raw.StockCode,
		Description: strings.TrimSpace(raw.Description),
		Quantity:    *raw.Quantity,
		InvoiceDate: *raw.InvoiceDate,
		UnitPrice:   *raw.UnitPrice,
		CustomerID:  raw.CustomerID,
		Country:     strings.TrimSpace(raw.Country),
	}
	tx.TotalPrice = float64(tx.Quantity) * tx.UnitPrice
	tx.YearMonth = tx.InvoiceDate.Format(config.YearMonthLayout)
	return tx
}
