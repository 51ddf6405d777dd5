package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gyeh/apptclean/internal/model"
)

// Config holds all runtime configuration for an apptclean run.
type Config struct {
	InputPath  string
	OutputPath string
	LogFormat  string // "text" or "json"

	// TimestampColumns is the subset of designated timestamp columns to
	// coerce. Empty means all of them.
	TimestampColumns []string `yaml:"timestamp_columns"`
}

// yamlConfig is the on-disk YAML structure.
type yamlConfig struct {
	TimestampColumns []string `yaml:"timestamp_columns"`
}

// LoadFromFile reads a YAML config file and merges its values into Config.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	c.TimestampColumns = yc.TimestampColumns
	return c.validateTimestampColumns()
}

// validateTimestampColumns checks that every entry names a designated
// timestamp column. An empty list defaults to all of them.
func (c *Config) validateTimestampColumns() error {
	if len(c.TimestampColumns) == 0 {
		c.TimestampColumns = append([]string(nil), model.TimestampColumns...)
		return nil
	}
	for _, name := range c.TimestampColumns {
		if !model.IsTimestampColumn(name) {
			return fmt.Errorf("unknown timestamp column %q in config", name)
		}
	}
	return nil
}

// Validate checks the fields every command needs and applies defaults.
// Input file existence is deliberately left to the loader, which reports it
// as a typed load error rather than a usage error.
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return fmt.Errorf("--in is required")
	}
	return c.validateTimestampColumns()
}

// ValidateWithOutput additionally checks the output path.
func (c *Config) ValidateWithOutput() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.OutputPath == "" {
		return fmt.Errorf("--out is required")
	}
	return nil
}
