// Package config carries all pipeline settings explicitly. There is no
// module-level state: callers load a Config and pass it to the stages,
// which keeps the parser and metrics engine testable in isolation.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full pipeline configuration.
type Config struct {
	// DataDir holds the raw access CSV exports.
	DataDir string `yaml:"data_dir"`
	// ParsedDir receives the interchange file between batch stages.
	ParsedDir string `yaml:"parsed_dir"`
	// ResultsDir receives the metric CSV tables.
	ResultsDir string `yaml:"results_dir"`
	// StoreFile is the interchange file name; a ".gz" suffix enables
	// gzip compression.
	StoreFile string `yaml:"store_file"`
	// ScenarioStart is the reference epoch for detection latency, RFC 3339.
	ScenarioStart string `yaml:"scenario_start"`
	// PeriodSeconds is the coverage reference period.
	PeriodSeconds float64 `yaml:"period_seconds"`

	scenarioStart time.Time
}

// Load reads configuration from an optional YAML file, applies defaults,
// overrides from the environment and validates the result.
func Load(configPath string) (*Config, error) {
	cfg := &Config{}
	cfg.setDefaults()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg.loadFromEnv()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) setDefaults() {
	c.DataDir = "data/raw"
	c.ParsedDir = "data/parsed"
	c.ResultsDir = "results"
	c.StoreFile = "access_store.json"
	c.ScenarioStart = "2026-01-01T00:00:00Z"
	c.PeriodSeconds = 24 * 3600
}

func (c *Config) loadFromEnv() {
	if v := os.Getenv("ACCESS_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("ACCESS_PARSED_DIR"); v != "" {
		c.ParsedDir = v
	}
	if v := os.Getenv("ACCESS_RESULTS_DIR"); v != "" {
		c.ResultsDir = v
	}
	if v := os.Getenv("ACCESS_SCENARIO_START"); v != "" {
		c.ScenarioStart = v
	}
	if v := os.Getenv("ACCESS_PERIOD_SECONDS"); v != "" {
		if sec, err := strconv.ParseFloat(v, 64); err == nil {
			c.PeriodSeconds = sec
		}
	}
}

func (c *Config) validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data_dir cannot be empty")
	}
	if c.ParsedDir == "" {
		return fmt.Errorf("parsed_dir cannot be empty")
	}
	if c.ResultsDir == "" {
		return fmt.Errorf("results_dir cannot be empty")
	}
	if c.StoreFile == "" {
		return fmt.Errorf("store_file cannot be empty")
	}
	if c.PeriodSeconds <= 0 {
		return fmt.Errorf("period_seconds must be positive")
	}

	start, err := time.Parse(time.RFC3339, c.ScenarioStart)
	if err != nil {
		return fmt.Errorf("scenario_start must be RFC 3339: %w", err)
	}
	c.scenarioStart = start.UTC()
	return nil
}

// ScenarioStartTime returns the parsed scenario epoch. Valid only after a
// successful Load.
func (c *Config) ScenarioStartTime() time.Time {
	return c.scenarioStart
}
