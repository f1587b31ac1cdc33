package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the application paths.
// This is the single source of truth for ALL file paths in the application.
type Paths struct {
	ExecutableDir string
	DataDir       string
	RawDir        string
	ProcessedDir  string
	ReportsDir    string
	FiguresDir    string
	LogsDir       string

	// Input file (CSV preferred, XLSX twin accepted)
	RawCSV  string
	RawXLSX string

	// Output tables
	CleanCSV          string
	MonthlyRevenueCSV string
	CountryRevenueCSV string
	TopProductsCSV    string

	// Output figures
	MonthlyTrendPNG string
	TopCountriesPNG string
}

// GetPaths returns the application paths relative to the executable location.
// All paths are ALWAYS relative to the executable directory, never the
// current working directory.
func GetPaths() (*Paths, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %v", err)
	}

	// Resolve symlinks to get the actual executable location
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve executable symlinks: %v", err)
	}

	return pathsAt(filepath.Dir(exe)), nil
}

// pathsAt builds the path table rooted at the given directory.
// Directory structure:
//
//	<root>/
//	  ├── data/
//	  │   ├── raw/           (transaction log input)
//	  │   └── processed/     (cleaned table + summary tables)
//	  ├── reports/
//	  │   └── figures/       (chart images)
//	  └── logs/              (application logs)
func pathsAt(root string) *Paths {
	dataDir := filepath.Join(root, "data")
	rawDir := filepath.Join(dataDir, "raw")
	processedDir := filepath.Join(dataDir, "processed")
	reportsDir := filepath.Join(root, "reports")
	figuresDir := filepath.Join(reportsDir, "figures")

	return &Paths{
		ExecutableDir: root,
		DataDir:       dataDir,
		RawDir:        rawDir,
		ProcessedDir:  processedDir,
		ReportsDir:    reportsDir,
		FiguresDir:    figuresDir,
		LogsDir:       filepath.Join(root, "logs"),

		RawCSV:  filepath.Join(rawDir, RawDataCSVName),
		RawXLSX: filepath.Join(rawDir, RawDataXLSXName),

		CleanCSV:          filepath.Join(processedDir, CleanCSVName),
		MonthlyRevenueCSV: filepath.Join(processedDir, MonthlyRevenueCSVName),
		CountryRevenueCSV: filepath.Join(processedDir, CountryRevenueCSVName),
		TopProductsCSV:    filepath.Join(processedDir, TopProductsCSVName),

		MonthlyTrendPNG: filepath.Join(figuresDir, MonthlyTrendPNGName),
		TopCountriesPNG: filepath.Join(figuresDir, TopCountriesPNGName),
	}
}

// PathsAt returns the path table rooted at an explicit directory.
// Tests use this to run the pipeline inside a temporary directory.
func PathsAt(root string) *Paths {
	return pathsAt(root)
}

// EnsureDirectories creates all required directories if they don't exist
func (p *Paths) EnsureDirectories() error {
	directories := []string{
		p.DataDir,
		p.RawDir,
		p.ProcessedDir,
		p.ReportsDir,
		p.FiguresDir,
		p.LogsDir,
	}

	for _, dir := range directories {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %v", dir, err)
		}
	}

	return nil
}

// GetLogPath returns the path for a log file
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
