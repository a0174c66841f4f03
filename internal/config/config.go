package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultDateFormats are the formats assumed when a config supplies date
// fields but no expected formats: canonical ISO 8601 at decreasing
// precision.
var DefaultDateFormats = []string{"%Y-%m-%d", "%Y-%m", "%Y"}

// Config holds all runtime configuration for a metacurate run.
type Config struct {
	Metadata   string // input NDJSON path, or "-" for stdin
	Output     string // output path, or "-" for stdout
	LogFormat  string // "text" or "json"
	ConfigFile string
	DSN        string
	SchemaPath string
	ExportFile string

	DateFields          []string `yaml:"date_fields"`
	ExpectedDateFormats []string `yaml:"expected_date_formats"`
	Fields              []string `yaml:"fields"`
	NormForm            string   `yaml:"normalization_form"`
}

// yamlConfig is the on-disk YAML structure.
type yamlConfig struct {
	DateFields          []string `yaml:"date_fields"`
	ExpectedDateFormats []string `yaml:"expected_date_formats"`
	Fields              []string `yaml:"fields"`
	NormForm            string   `yaml:"normalization_form"`
}

// LoadFromFile reads a YAML config file and merges its values into Config.
// Values already set (e.g. from flags) win over file values.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	if len(c.DateFields) == 0 {
		c.DateFields = yc.DateFields
	}
	if len(c.ExpectedDateFormats) == 0 {
		c.ExpectedDateFormats = yc.ExpectedDateFormats
	}
	if len(c.Fields) == 0 {
		c.Fields = yc.Fields
	}
	if c.NormForm == "" {
		c.NormForm = yc.NormForm
	}
	return nil
}

// Validate checks that the input metadata source is usable.
func (c *Config) Validate() error {
	if c.Metadata == "" {
		return fmt.Errorf("--metadata is required")
	}
	if c.Metadata != "-" {
		if _, err := os.Stat(c.Metadata); err != nil {
			return fmt.Errorf("metadata not accessible: %w", err)
		}
	}
	return nil
}

// ValidateFormatDates checks the fields a format-dates run needs. Empty
// expected formats default to the canonical ISO 8601 set.
func (c *Config) ValidateFormatDates() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if len(c.DateFields) == 0 {
		return fmt.Errorf("--date-fields is required")
	}
	if len(c.ExpectedDateFormats) == 0 {
		c.ExpectedDateFormats = append([]string(nil), DefaultDateFormats...)
	}
	return nil
}

// ValidateWithDSN checks both the metadata source and the DSN.
func (c *Config) ValidateWithDSN() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.DSN == "" {
		return fmt.Errorf("--dsn or METACURATE_DB_URL is required")
	}
	return nil
}
