// Package config loads textstat configuration from YAML with environment
// variable overrides. Missing files fall back to defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all textstat configuration.
type Config struct {
	Analysis AnalysisConfig `yaml:"analysis"`
	History  HistoryConfig  `yaml:"history"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// AnalysisConfig controls how texts are analyzed.
type AnalysisConfig struct {
	// TopWords is how many of the most frequent terms a report includes.
	TopWords int `yaml:"top_words"`

	// MaxFileSize is the largest file (bytes) the analyzer will read.
	MaxFileSize int64 `yaml:"max_file_size"`

	// MaxWorkers bounds concurrent file analysis.
	MaxWorkers int `yaml:"max_workers"`

	// DebounceMS is the watcher debounce window in milliseconds.
	DebounceMS int `yaml:"debounce_ms"`
}

// HistoryConfig controls the analysis history store.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
	Keep    int    `yaml:"keep"`
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	historyDir := ".textstat"
	if home, err := os.UserHomeDir(); err == nil {
		historyDir = filepath.Join(home, ".textstat")
	}

	return &Config{
		Analysis: AnalysisConfig{
			TopWords:    10,
			MaxFileSize: 10 << 20, // 10 MiB
			MaxWorkers:  4,
			DebounceMS:  500,
		},
		History: HistoryConfig{
			Enabled: true,
			Dir:     historyDir,
			Keep:    1000,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the config file at path, falling back to defaults when path is
// empty or the file does not exist, then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Defaults apply.
		case err != nil:
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides lets environment variables override file values.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("TEXTSTAT_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("TEXTSTAT_HISTORY_DIR"); v != "" {
		c.History.Dir = v
	}
	if v := os.Getenv("TEXTSTAT_TOP_WORDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Analysis.TopWords = n
		}
	}
	if v := os.Getenv("TEXTSTAT_MAX_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Analysis.MaxWorkers = n
		}
	}
}

// Validate rejects configurations the analyzer cannot run with.
func (c *Config) Validate() error {
	if c.Analysis.TopWords < 0 {
		return fmt.Errorf("analysis.top_words must be >= 0, got %d", c.Analysis.TopWords)
	}
	if c.Analysis.MaxWorkers < 1 {
		return fmt.Errorf("analysis.max_workers must be >= 1, got %d", c.Analysis.MaxWorkers)
	}
	if c.Analysis.MaxFileSize < 1 {
		return fmt.Errorf("analysis.max_file_size must be >= 1, got %d", c.Analysis.MaxFileSize)
	}
	if c.History.Enabled && c.History.Dir == "" {
		return fmt.Errorf("history.dir must be set when history is enabled")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug/info/warn/error, got %q", c.Logging.Level)
	}
	return nil
}
