package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hawkql/hawk"
)

// Config holds tool defaults loadable from a YAML file. Command-line
// flags override anything set here.
type Config struct {
	// Separator is the CSV field separator (single character).
	Separator string `yaml:"separator"`

	// Header indicates the first row of each input carries field names.
	Header bool `yaml:"header"`

	// OnError is the per-record error policy: "abort" stops at the
	// first failing record, "skip" excludes it and continues.
	OnError string `yaml:"on_error"`
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		Separator: ",",
		OnError:   "abort",
	}
}

// LoadConfig reads configuration from a YAML file, applied on top of
// the defaults. An empty path returns the defaults unchanged.
func LoadConfig(path string) (*Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if len([]rune(c.Separator)) != 1 {
		return fmt.Errorf("separator must be a single character, got %q", c.Separator)
	}
	if c.OnError != "abort" && c.OnError != "skip" {
		return fmt.Errorf("on_error must be \"abort\" or \"skip\", got %q", c.OnError)
	}
	return nil
}

// Policy returns the scanner error policy for the configuration.
func (c *Config) Policy() hawk.ErrorPolicy {
	if c.OnError == "skip" {
		return hawk.FailOpen
	}
	return hawk.FailClosed
}
