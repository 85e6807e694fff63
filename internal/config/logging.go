package config

import (
	"fmt"
	"os"
)

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level    string         `yaml:"level"`  // debug, info, warn, error
	Format   string         `yaml:"format"` // text, json
	File     string         `yaml:"file"`   // empty disables file logging
	Rotation RotationConfig `yaml:"rotation"`
}

// RotationConfig holds log rotation settings
type RotationConfig struct {
	MaxSize    int  `yaml:"max_size"`    // MB
	MaxBackups int  `yaml:"max_backups"` // number of files
	MaxAge     int  `yaml:"max_age"`     // days
	Compress   bool `yaml:"compress"`    // gzip old files
}

// DefaultLoggingConfig returns default logging configuration
func DefaultLoggingConfig() LoggingConfig {
	return LoggingConfig{
		Level:  "warn",
		Format: "text",
		Rotation: RotationConfig{
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     7,
			Compress:   true,
		},
	}
}

// ApplyDefaults fills in missing values with defaults
func (c *LoggingConfig) ApplyDefaults() {
	if c.Level == "" {
		c.Level = "warn"
	}
	if c.Format == "" {
		c.Format = "text"
	}
	if c.Rotation.MaxSize == 0 {
		c.Rotation.MaxSize = 10
	}
	if c.Rotation.MaxBackups == 0 {
		c.Rotation.MaxBackups = 3
	}
	if c.Rotation.MaxAge == 0 {
		c.Rotation.MaxAge = 7
	}
	// Compress stays as given: false cannot be told apart from unset.
}

// ApplyEnvOverrides applies environment variable overrides
func (c *LoggingConfig) ApplyEnvOverrides() {
	if v := os.Getenv("WORDSEARCH_LOG_LEVEL"); v != "" {
		c.Level = v
	}
	if v := os.Getenv("WORDSEARCH_LOG_FORMAT"); v != "" {
		c.Format = v
	}
	if v := os.Getenv("WORDSEARCH_LOG_FILE"); v != "" {
		c.File = v
	}
}

// Validate checks level and format names
func (c *LoggingConfig) Validate() error {
	switch c.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Level)
	}
	switch c.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json, got %q", c.Format)
	}
	return nil
}
