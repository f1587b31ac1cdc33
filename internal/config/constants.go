package config

// Pipeline constants. These are deliberately fixed: the analyzer takes no
// flags and reads no environment variables that change what it computes.
const (
	// DefaultTopN is the cutoff for the country and product revenue rankings.
	DefaultTopN = 10

	// Input file names under data/raw.
	RawDataCSVName  = "online_retail_II.csv"
	RawDataXLSXName = "online_retail_II.xlsx"

	// Output table names under data/processed.
	CleanCSVName          = "online_retail_clean.csv"
	MonthlyRevenueCSVName = "monthly_revenue.csv"
	CountryRevenueCSVName = "country_revenue_top10.csv"
	TopProductsCSVName    = "top_products.csv"

	// Figure names under reports/figures.
	MonthlyTrendPNGName = "monthly_revenue_trend.png"
	TopCountriesPNGName = "top_countries_revenue.png"
)

// Timestamp layouts for values in the InvoiceDate column. The Online Retail II
// dataset circulates with several of these depending on how it was exported.
var InvoiceDateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"2006-01-02",
}

// YearMonthLayout is the fixed-width month bucket key, e.g. "2011-03".
// Lexicographic order on this layout matches chronological order.
const YearMonthLayout = "2006-01"
