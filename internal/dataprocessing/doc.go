// Package dataprocessing implements the retail transaction pipeline from raw
// ingestion to summary tables.
//
// # Architecture
//
// The package is organized into four components, applied strictly in order:
//
// 1. Loader: reads the transaction log (CSV or XLSX) into raw records
// 2. Cleaner: filters invalid rows and derives TotalPrice and YearMonth
// 3. Aggregator: reduces clean records into the three summary views
// 4. Writer: serializes the clean table and summaries to CSV files
//
// # Usage
//
// Basic pipeline example:
//
//	raws, err := dataprocessing.LoadTransactions("data/raw/online_retail_II.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	clean := dataprocessing.NewCleaner(logger).Clean(ctx, raws)
//	agg := dataprocessing.NewAggregator(logger, dataprocessing.DefaultAggregatorConfig())
//	monthly := agg.MonthlyRevenue(clean)
//
// Row-level data issues (missing fields, cancellations, non-positive values)
// are filtered silently by the Cleaner; only file-level problems surface as
// errors.
package dataprocessing
