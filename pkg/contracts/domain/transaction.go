package domain

import (
	"time"
)

// RawTransaction is one line of the retail transaction log exactly as loaded,
// before any validation. Pointer fields are nil when the source cell was empty
// or could not be parsed; string fields are null when empty. No invariants
// hold on raw transactions.
type RawTransaction struct {
	InvoiceNo   string     `json:"invoice_no" csv:"InvoiceNo"`
	StockCode   string     `json:"stock_code" csv:"StockCode"`
	Description string     `json:"description" csv:"Description"`
	Quantity    *int64     `json:"quantity" csv:"Quantity"`
	InvoiceDate *time.Time `json:"invoice_date" csv:"InvoiceDate"`
	UnitPrice   *float64   `json:"unit_price" csv:"UnitPrice"`
	CustomerID  string     `json:"customer_id,omitempty" csv:"CustomerID"`
	Country     string     `json:"country" csv:"Country"`
}

// Transaction is a transaction that survived every cleaning rule, with the
// derived TotalPrice and YearMonth fields filled in. Quantity and UnitPrice
// are always positive, InvoiceNo never denotes a cancellation, and no field
// used by the null-check is missing. CustomerID may still be empty.
type Transaction struct {
	InvoiceNo   string    `json:"invoice_no" csv:"InvoiceNo"`
	StockCode   string    `json:"stock_code" csv:"StockCode"`
	Description string    `json:"description" csv:"Description"`
	Quantity    int64     `json:"quantity" csv:"Quantity"`
	InvoiceDate time.Time `json:"invoice_date" csv:"InvoiceDate"`
	UnitPrice   float64   `json:"unit_price" csv:"UnitPrice"`
	CustomerID  string    `json:"customer_id,omitempty" csv:"CustomerID"`
	Country     string    `json:"country" csv:"Country"`
	TotalPrice  float64   `json:"total_price" csv:"TotalPrice"`
	YearMonth   string    `json:"year_month" csv:"YearMonth"`
}

// MonthlyRevenue is one row of the monthly revenue time series: the sum of
// TotalPrice over every clean transaction in a calendar month.
type MonthlyRevenue struct {
	YearMonth string  `json:"year_month" csv:"YearMonth"`
	Revenue   float64 `json:"revenue" csv:"Revenue"`
}

// RevenueGroup is the summed revenue for one grouping key, either a country
// or a product description depending on the ranking it belongs to.
type RevenueGroup struct {
	Key     string  `json:"key"`
	Revenue float64 `json:"revenue" csv:"Revenue"`
}
