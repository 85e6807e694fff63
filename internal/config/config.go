package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the solver configuration
type Config struct {
	Solver  SolverConfig  `yaml:"solver"`
	Report  ReportConfig  `yaml:"report"`
	Logging LoggingConfig `yaml:"logging"`
}

// SolverConfig controls which target words are searched for
type SolverConfig struct {
	MinWordLength int      `yaml:"min_word_length"`
	ExcludedWords []string `yaml:"excluded_words"`
}

// ReportConfig controls how the solution is written
type ReportConfig struct {
	Format string `yaml:"format"` // text, json
}

// DefaultConfig returns the configuration used when no file is given
func DefaultConfig() *Config {
	return &Config{
		Solver: SolverConfig{
			MinWordLength: 1,
		},
		Report: ReportConfig{
			Format: "text",
		},
		Logging: DefaultLoggingConfig(),
	}
}

// LoadConfig loads configuration from path and environment variables.
// Order: defaults -> path -> ApplyEnvOverrides -> ApplyDefaults -> Validate.
// An empty path or a missing file leaves the defaults in place.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	cfg.ApplyEnvOverrides()
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func loadFile(filename string, cfg *Config) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", filename, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing %s: %w", filename, err)
	}
	return nil
}

// ApplyEnvOverrides applies environment variable overrides
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("WORDSEARCH_MIN_WORD_LENGTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Solver.MinWordLength = n
		}
	}
	if v := os.Getenv("WORDSEARCH_REPORT_FORMAT"); v != "" {
		c.Report.Format = v
	}
	c.Logging.ApplyEnvOverrides()
}

// ApplyDefaults fills in missing values with defaults
func (c *Config) ApplyDefaults() {
	if c.Solver.MinWordLength == 0 {
		c.Solver.MinWordLength = 1
	}
	if c.Report.Format == "" {
		c.Report.Format = "text"
	}
	c.Logging.ApplyDefaults()
}

// Validate checks the configuration for values that cannot work
func (c *Config) Validate() error {
	var errs []error
	if c.Solver.MinWordLength < 1 {
		errs = append(errs, fmt.Errorf("solver.min_word_length must be at least 1, got %d", c.Solver.MinWordLength))
	}
	switch c.Report.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("report.format must be text or json, got %q", c.Report.Format))
	}
	if err := c.Logging.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
