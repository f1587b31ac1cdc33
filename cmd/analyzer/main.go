package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"retailcli/internal/config"
	"retailcli/internal/dataprocessing"
	"retailcli/internal/infrastructure"
	"retailcli/internal/reporting"
	"retailcli/pkg/contracts/domain"
)

// monthlyHead is how many monthly revenue rows the stdout summary shows.
const monthlyHead = 5

func main() {
	// Initialize paths first; everything is executable-relative
	paths, err := config.GetPaths()
	if err != nil {
		slog.Error("Failed to initialize paths", "error", err)
		os.Exit(1)
	}

	if err := paths.EnsureDirectories(); err != nil {
		slog.Error("Failed to create required directories", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}
	if cfg.Logging.FilePath == "" || cfg.Logging.FilePath == "logs/analyzer.log" {
		cfg.Logging.FilePath = paths.GetLogPath("analyzer.log")
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	// Tag every record of this run so overlapping runs stay distinguishable
	// in the shared log file.
	logger = logger.With(slog.String("run_id", uuid.NewString()))

	logger.Info("Starting retail revenue analysis",
		slog.String("raw_csv", paths.RawCSV),
		slog.String("processed_dir", paths.ProcessedDir),
		slog.String("figures_dir", paths.FiguresDir),
		slog.String("executable_dir", paths.ExecutableDir))

	ctx := context.Background()

	if err := run(ctx, logger, paths); err != nil {
		logger.Error("Analysis failed", slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run executes the pipeline: load, clean, aggregate, write, render, print.
// Control flow is strictly linear; a failure at any step aborts the run.
func run(ctx context.Context, logger *slog.Logger, paths *config.Paths) error {
	inputPath := paths.RawCSV
	if !config.FileExists(inputPath) && config.FileExists(paths.RawXLSX) {
		// The dataset is distributed as an Excel workbook; accept the twin
		// when no CSV export is present.
		logger.Info("CSV input absent, using Excel workbook",
			slog.String("path", paths.RawXLSX))
		inputPath = paths.RawXLSX
	}

	raws, err := dataprocessing.LoadTransactions(inputPath)
	if err != nil {
		return err
	}

	clean := dataprocessing.NewCleaner(logger).Clean(ctx, raws)

	aggregator := dataprocessing.NewAggregator(logger, dataprocessing.DefaultAggregatorConfig())
	result := &dataprocessing.Result{
		RawCount:     len(raws),
		Clean:        clean,
		Monthly:      aggregator.MonthlyRevenue(clean),
		TopCountries: aggregator.TopCountries(clean),
		TopProducts:  aggregator.TopProducts(clean),
	}

	if err := dataprocessing.NewWriter(logger).WriteAll(ctx, paths, result); err != nil {
		return err
	}

	renderer := reporting.NewRenderer(logger)
	if err := renderer.RenderMonthlyTrend(ctx, result.Monthly, paths.MonthlyTrendPNG); err != nil {
		return err
	}
	if err := renderer.RenderTopCountries(ctx, result.TopCountries, paths.TopCountriesPNG); err != nil {
		return err
	}

	logger.Info("Analysis complete",
		slog.Int("raw_rows", result.RawCount),
		slog.Int("clean_rows", len(result.Clean)),
		slog.Int("months", len(result.Monthly)))

	printSummary(result)

	return nil
}

// printSummary writes the human-readable run summary to stdout.
func printSummary(result *dataprocessing.Result) {
	fmt.Println("Analysis complete")
	fmt.Printf("Rows (raw):   %d\n", result.RawCount)
	fmt.Printf("Rows (clean): %d\n", len(result.Clean))

	fmt.Println("\nMonthly revenue (head):")
	for i, m := range result.Monthly {
		if i >= monthlyHead {
			break
		}
		fmt.Printf("  %s  %14.2f\n", m.YearMonth, m.Revenue)
	}

	fmt.Println("\nTop countries:")
	printRanking(result.TopCountries)

	fmt.Println("\nTop products:")
	printRanking(result.TopProducts)
}

func printRanking(groups []domain.RevenueGroup) {
	for _, g := range groups {
		fmt.Printf("  %-40s %14.2f\n", g.Key, g.Revenue)
	}
}
