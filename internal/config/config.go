package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration. Only ambient
// concerns are configurable; pipeline paths and the top-N cutoff are fixed
// constants (see constants.go).
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
}

// LoggingConfig contains logging configuration. Defaults come from Default()
// and validate(), not from struct tags: a tag default would make the env layer
// non-empty even with no variables set, silently shadowing the config file.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL"`
	Format   string `yaml:"format" envconfig:"FORMAT"`
	Output   string `yaml:"output" envconfig:"OUTPUT"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// Load loads configuration in precedence order: defaults, then the config
// file if one exists, then environment variables.
func Load() (*Config, error) {
	cfg := Default()

	if configFile := getConfigFilePath(); configFile != "" {
		if err := loadFromFile(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	// Environment variables override the file; envconfig leaves fields
	// untouched when the variable is unset.
	if err := envconfig.Process("RETAIL", cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	cfg.validate()

	return cfg, nil
}

// loadFromFile overlays values from a YAML file onto cfg. Fields absent from
// the file keep their current values.
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

// validate normalizes the logging configuration. Output format is always
// JSON with dual stdout+file output so runs are greppable after the fact.
func (c *Config) validate() {
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	if c.Logging.Format != "json" {
		c.Logging.Format = "json"
	}

	if c.Logging.Output != "both" && c.Logging.Output != "file" && c.Logging.Output != "console" {
		c.Logging.Output = "both"
	}

	if c.Logging.FilePath == "" {
		c.Logging.FilePath = "logs/analyzer.log"
	}
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() string {
	locations := []string{
		"config.yaml",
		"configs/config.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return "" // No config file found, use env vars only
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "both",
			FilePath: "logs/analyzer.log",
		},
	}
}
