package dataprocessing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retailcli/internal/shared/testutil"
	"retailcli/pkg/contracts/domain"
)

func ptrInt(v int64) *int64       { return &v }
func ptrFloat(v float64) *float64 { return &v }
func ptrTime(v time.Time) *time.Time {
	return &v
}

// validRaw returns a raw transaction that survives every cleaning rule.
func validRaw() domain.RawTransaction {
	return domain.RawTransaction{
		InvoiceNo:   "536365",
		StockCode:   "85123A",
		Description: "WHITE HANGING HEART",
		Quantity:    ptrInt(6),
		InvoiceDate: ptrTime(time.Date(2010, 12, 1, 8, 26, 0, 0, time.UTC)),
		UnitPrice:   ptrFloat(2.55),
		CustomerID:  "17850",
		Country:     "United Kingdom",
	}
}

func TestCleaner_Filters(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.RawTransaction)
		kept   bool
	}{
		{"valid row survives", func(r *domain.RawTransaction) {}, true},
		{"cancellation invoice excluded", func(r *domain.RawTransaction) {
			r.InvoiceNo = "C100"
			r.Quantity = ptrInt(5)
			r.UnitPrice = ptrFloat(2.0)
		}, false},
		{"lowercase c is not a cancellation", func(r *domain.RawTransaction) {
			r.InvoiceNo = "c100"
		}, true},
		{"negative quantity excluded", func(r *domain.RawTransaction) {
			r.Quantity = ptrInt(-3)
		}, false},
		{"zero quantity excluded", func(r *domain.RawTransaction) {
			r.Quantity = ptrInt(0)
		}, false},
		{"zero unit price excluded", func(r *domain.RawTransaction) {
			r.UnitPrice = ptrFloat(0)
		}, false},
		{"negative unit price excluded", func(r *domain.RawTransaction) {
			r.UnitPrice = ptrFloat(-1.25)
		}, false},
		{"null invoice excluded", func(r *domain.RawTransaction) {
			r.InvoiceNo = ""
		}, false},
		{"null stock code excluded", func(r *domain.RawTransaction) {
			r.StockCode = ""
		}, false},
		{"null description excluded", func(r *domain.RawTransaction) {
			r.Description = ""
		}, false},
		{"null quantity excluded", func(r *domain.RawTransaction) {
			r.Quantity = nil
		}, false},
		{"null timestamp excluded", func(r *domain.RawTransaction) {
			r.InvoiceDate = nil
		}, false},
		{"null unit price excluded", func(r *domain.RawTransaction) {
			r.UnitPrice = nil
		}, false},
		{"null country excluded", func(r *domain.RawTransaction) {
			r.Country = ""
		}, false},
		{"null customer id survives", func(r *domain.RawTransaction) {
			r.CustomerID = ""
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validRaw()
			tt.mutate(&raw)

			clean := NewCleaner(nil).Clean(context.Background(), []domain.RawTransaction{raw})

			if tt.kept {
				assert.Len(t, clean, 1)
			} else {
				assert.Empty(t, clean)
			}
		})
	}
}

func TestCleaner_NullCheckRunsBeforeCancellationCheck(t *testing.T) {
	handler := testutil.NewCaptureHandler(t)

	// Invoice starts with "C" AND the timestamp is null: the row must be
	// accounted to the null-check, not the cancellation filter.
	raw := validRaw()
	raw.InvoiceNo = "C536367"
	raw.InvoiceDate = nil

	clean := NewCleaner(handler.Logger()).Clean(context.Background(), []domain.RawTransaction{raw})
	assert.Empty(t, clean)

	records := handler.Records()
	require.Len(t, records, 1)
	assert.Equal(t, int64(1), records[0].Attrs["dropped_null"])
	assert.Equal(t, int64(0), records[0].Attrs["dropped_cancelled"])
}

func TestCleaner_Derivations(t *testing.T) {
	raw := validRaw()
	raw.Quantity = ptrInt(2)
	raw.UnitPrice = ptrFloat(1.5)
	raw.InvoiceDate = ptrTime(time.Date(2011, 3, 20, 15, 45, 0, 0, time.UTC))

	clean := NewCleaner(nil).Clean(context.Background(), []domain.RawTransaction{raw})
	require.Len(t, clean, 1)

	tx := clean[0]
	assert.Equal(t, 3.0, tx.TotalPrice, "TotalPrice must equal quantity x unit price exactly")
	assert.Equal(t, "2011-03", tx.YearMonth)
}

func TestCleaner_TrimsTextFields(t *testing.T) {
	raw := validRaw()
	raw.Description = "  ALARM CLOCK BAKELIKE RED \t"
	raw.Country = " France\n"

	clean := NewCleaner(nil).Clean(context.Background(), []domain.RawTransaction{raw})
	require.Len(t, clean, 1)

	assert.Equal(t, "ALARM CLOCK BAKELIKE RED", clean[0].Description)
	assert.Equal(t, "France", clean[0].Country)
}

func TestCleaner_CleanInvariants(t *testing.T) {
	raws := []domain.RawTransaction{
		validRaw(),
		func() domain.RawTransaction { r := validRaw(); r.InvoiceNo = "C1"; return r }(),
		func() domain.RawTransaction { r := validRaw(); r.Quantity = ptrInt(-1); return r }(),
		func() domain.RawTransaction { r := validRaw(); r.UnitPrice = nil; return r }(),
		func() domain.RawTransaction {
			r := validRaw()
			r.InvoiceNo = "536400"
			r.Quantity = ptrInt(10)
			r.UnitPrice = ptrFloat(0.85)
			return r
		}(),
	}

	clean := NewCleaner(nil).Clean(context.Background(), raws)
	require.Len(t, clean, 2)

	for _, tx := range clean {
		assert.Positive(t, tx.Quantity)
		assert.Positive(t, tx.UnitPrice)
		assert.NotEmpty(t, tx.InvoiceNo)
		assert.NotEqual(t, byte('C'), tx.InvoiceNo[0])
		assert.Equal(t, float64(tx.Quantity)*tx.UnitPrice, tx.TotalPrice)
	}
}
