// Package config loads the subsetsum CLI configuration from YAML with
// environment-variable overrides (SS_* prefix).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/subsetsum/solver"
)

// Search modes.
const (
	ModeOne = "one"
	ModeAll = "all"
)

// ErrInvalid wraps every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the top-level configuration.
type Config struct {
	Search  SearchConfig  `yaml:"search"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
	Output  OutputConfig  `yaml:"output"`
}

// SearchConfig controls how every target is searched.
type SearchConfig struct {
	Mode           string  `yaml:"mode"`
	MinCount       int     `yaml:"minCount"`
	MaxCount       int     `yaml:"maxCount"`
	MaxResults     int     `yaml:"maxResults"`
	NodeBudget     uint64  `yaml:"nodeBudget"`
	StepsPerSecond float64 `yaml:"stepsPerSecond"`
	Strategy       string  `yaml:"strategy"`
	Workers        int     `yaml:"workers"`
}

// LoggingConfig controls structured logging level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig controls the Prometheus metrics server.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// OutputConfig controls where results go. An empty Path means stdout;
// Compress wraps the stream in zstd.
type OutputConfig struct {
	Path     string `yaml:"path"`
	Compress bool   `yaml:"compress"`
}

// Load reads a YAML config file (if provided) and applies environment-variable
// overrides on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	applyEnvOverrides(cfg)

	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Search: SearchConfig{
			Mode:       ModeOne,
			MinCount:   1,
			MaxCount:   10,
			MaxResults: 1000,
			NodeBudget: 100_000,
			Strategy:   "auto",
			Workers:    4,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Addr:    ":9090",
		},
	}
}

// Validate reports the first inconsistent setting, wrapped in ErrInvalid.
func (c *Config) Validate() error {
	switch {
	case c.Search.Mode != ModeOne && c.Search.Mode != ModeAll:
		return fmt.Errorf("%w: search.mode %q (want %q or %q)", ErrInvalid, c.Search.Mode, ModeOne, ModeAll)
	case c.Search.MaxCount < 1:
		return fmt.Errorf("%w: search.maxCount %d < 1", ErrInvalid, c.Search.MaxCount)
	case c.Search.MinCount > c.Search.MaxCount:
		return fmt.Errorf("%w: search.minCount %d > maxCount %d", ErrInvalid, c.Search.MinCount, c.Search.MaxCount)
	case c.Search.MaxResults < 1:
		return fmt.Errorf("%w: search.maxResults %d < 1", ErrInvalid, c.Search.MaxResults)
	case c.Search.StepsPerSecond < 0:
		return fmt.Errorf("%w: search.stepsPerSecond %g < 0", ErrInvalid, c.Search.StepsPerSecond)
	case c.Search.Workers < 1:
		return fmt.Errorf("%w: search.workers %d < 1", ErrInvalid, c.Search.Workers)
	case c.Metrics.Enabled && c.Metrics.Addr == "":
		return fmt.Errorf("%w: metrics.addr is empty", ErrInvalid)
	}
	if _, err := solver.ParseStrategy(c.Search.Strategy); err != nil {
		return fmt.Errorf("%w: search.strategy: %w", ErrInvalid, err)
	}

	return nil
}

// applyEnvOverrides reads SS_* environment variables and overrides the
// corresponding config fields. Unparsable numbers are ignored.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SS_SEARCH_MODE"); v != "" {
		cfg.Search.Mode = v
	}
	if v := os.Getenv("SS_SEARCH_MIN_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Search.MinCount = n
		}
	}
	if v := os.Getenv("SS_SEARCH_MAX_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Search.MaxCount = n
		}
	}
	if v := os.Getenv("SS_SEARCH_MAX_RESULTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Search.MaxResults = n
		}
	}
	if v := os.Getenv("SS_SEARCH_NODE_BUDGET"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Search.NodeBudget = n
		}
	}
	if v := os.Getenv("SS_SEARCH_STEPS_PER_SECOND"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Search.StepsPerSecond = f
		}
	}
	if v := os.Getenv("SS_SEARCH_STRATEGY"); v != "" {
		cfg.Search.Strategy = v
	}
	if v := os.Getenv("SS_SEARCH_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Search.Workers = n
		}
	}
	if v := os.Getenv("SS_LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("SS_LOGGING_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("SS_METRICS_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Metrics.Enabled = b
		}
	}
	if v := os.Getenv("SS_METRICS_ADDR"); v != "" {
		cfg.Metrics.Addr = v
	}
	if v := os.Getenv("SS_OUTPUT_PATH"); v != "" {
		cfg.Output.Path = v
	}
	if v := os.Getenv("SS_OUTPUT_COMPRESS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Output.Compress = b
		}
	}
}
