// Package config loads CLI configuration from an optional YAML file, an
// optional .env file, and DOCMD_* environment overrides, in that order of
// precedence (env wins).
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/docmd/docmd/pkg/logger"
)

// StrategyRule is one replacement rule in a configured strategy override.
// Rules are a YAML list, not a map, so their order is preserved.
type StrategyRule struct {
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
}

// PDFConfig mirrors the PDF extraction options.
type PDFConfig struct {
	IgnoreGraphics bool `yaml:"ignoreGraphics"`
	IgnoreCode     bool `yaml:"ignoreCode"`
	IgnoreAlpha    bool `yaml:"ignoreAlpha"`
}

// Config is the full CLI configuration.
type Config struct {
	Log         logger.Config  `yaml:"log"`
	PDF         PDFConfig      `yaml:"pdf"`
	Strategy    []StrategyRule `yaml:"strategy"` // replaces the default entirely when set
	MaxFileSize int64          `yaml:"maxFileSize"`
	Concurrency int            `yaml:"concurrency"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Log: logger.Config{
			Level:       "info",
			Encoding:    "console",
			OutputPaths: []string{"stderr"},
		},
		PDF: PDFConfig{
			IgnoreGraphics: true,
			IgnoreCode:     true,
			IgnoreAlpha:    true,
		},
		MaxFileSize: 50 * 1024 * 1024, // 50MB
		Concurrency: 4,
	}
}

// Load reads the optional .env file, then the YAML config at path (empty
// path means defaults only), then applies environment overrides. A strategy
// override containing an empty pattern is rejected here rather than looping
// forever later.
func Load(path string) (*Config, error) {
	_ = godotenv.Load() // .env is optional

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}
	applyEnv(cfg)

	for i, r := range cfg.Strategy {
		if r.Pattern == "" {
			return nil, fmt.Errorf("config: strategy rule %d has an empty pattern", i)
		}
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 4
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("DOCMD_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("DOCMD_LOG_ENCODING"); v != "" {
		cfg.Log.Encoding = v
	}
	if v := os.Getenv("DOCMD_CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Concurrency = n
		}
	}
	if v := os.Getenv("DOCMD_MAX_FILE_SIZE"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			cfg.MaxFileSize = n
		}
	}
}
