package config

import (
	"fmt"
)

// Output format names accepted by --format
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Config represents the run options for the netfacts CLI
type Config struct {
	// 运行选项 - 由命令行标志填充
	Verbose bool
	Quiet   bool
	Format  string
}

// NewConfig creates a new config with default values
func NewConfig() *Config {
	return &Config{
		Format: FormatTable,
	}
}

// Validate checks the config for unusable option combinations
func (c *Config) Validate() error {
	switch c.Format {
	case FormatTable, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unknown output format %q (expected table, json or yaml)", c.Format)
	}
	if c.Verbose && c.Quiet {
		return fmt.Errorf("verbose and quiet are mutually exclusive")
	}
	return nil
}

// LogLevel maps the verbosity flags onto a logger level
func (c *Config) LogLevel() string {
	switch {
	case c.Verbose:
		return "debug"
	case c.Quiet:
		return "warn"
	default:
		return "info"
	}
}
