package dataprocessing

import (
	"log/slog"
	"sort"

	"retailcli/internal/config"
	"retailcli/pkg/contracts/domain"
)

// Aggregator derives the three summary views from the clean record set. Each
// reduction is pure: grouping is one pass over the rows, sorting is over the
// distinct groups only.
type Aggregator struct {
	logger *slog.Logger
	topN   int
}

// AggregatorConfig holds configuration options for the Aggregator.
type AggregatorConfig struct {
	TopN int // Ranking cutoff for the country and product views
}

// DefaultAggregatorConfig returns the standard configuration.
func DefaultAggregatorConfig() AggregatorConfig {
	return AggregatorConfig{TopN: config.DefaultTopN}
}

// NewAggregator creates an aggregator with the given configuration.
func NewAggregator(logger *slog.Logger, cfg AggregatorConfig) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.TopN <= 0 {
		cfg.TopN = config.DefaultTopN
	}
	return &Aggregator{logger: logger, topN: cfg.TopN}
}

// MonthlyRevenue groups clean transactions by YearMonth and sums TotalPrice,
// sorted ascending by month. The fixed-width YearMonth key makes
// lexicographic order chronological.
func (a *Aggregator) MonthlyRevenue(txs []domain.Transaction) []domain.MonthlyRevenue {
	groups := sumByKey(txs, func(tx domain.Transaction) string { return tx.YearMonth })

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Key < groups[j].Key
	})

	monthly := make([]domain.MonthlyRevenue, len(groups))
	for i, g := range groups {
		monthly[i] = domain.MonthlyRevenue{YearMonth: g.Key, Revenue: g.Revenue}
	}

	a.logger.Debug("computed monthly revenue", slog.Int("month_count", len(monthly)))

	return monthly
}

// TopCountries returns the countries with the highest summed revenue,
// descending.
func (a *Aggregator) TopCountries(txs []domain.Transaction) []domain.RevenueGroup {
	return a.topGroups(txs, func(tx domain.Transaction) string { return tx.Country })
}

// TopProducts returns the product descriptions with the highest summed
// revenue, descending.
func (a *Aggregator) TopProducts(txs []domain.Transaction) []domain.RevenueGroup {
	return a.topGroups(txs, func(tx domain.Transaction) string { return tx.Description })
}

// topGroups groups by key, sorts descending by summed revenue and truncates
// to the configured cutoff. The sort is stable over first-seen group order,
// so equal-revenue ties reproduce for a given input order.
func (a *Aggregator) topGroups(txs []domain.Transaction, key func(domain.Transaction) string) []domain.RevenueGroup {
	groups := sumByKey(txs, key)

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Revenue > groups[j].Revenue
	})

	if len(groups) > a.topN {
		groups = groups[:a.topN]
	}

	return groups
}

// sumByKey sums TotalPrice per distinct key, preserving first-seen insertion
// order of the groups.
func sumByKey(txs []domain.Transaction, key func(domain.Transaction) string) []domain.RevenueGroup {
	index := make(map[string]int)
	groups := make([]domain.RevenueGroup, 0)

	for _, tx := range txs {
		k := key(tx)
		if i, seen := index[k]; seen {
			groups[i].Revenue += tx.TotalPrice
		} else {
			index[k] = len(groups)
			groups = append(groups, domain.RevenueGroup{Key: k, Revenue: tx.TotalPrice})
		}
	}

	return groups
}
