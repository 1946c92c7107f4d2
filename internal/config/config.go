package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"ngram-go/pkg/ngram"
)

// Config is the top-level application configuration
type Config struct {
	App   AppConfig   `yaml:"app"`
	Mcp   McpConfig   `yaml:"mcp"`
	NGram NGramConfig `yaml:"ngram"`
}

// AppConfig holds HTTP server settings
type AppConfig struct {
	Port          int `yaml:"port"`
	NumRowWorkers int `yaml:"num_row_workers"`
}

// McpConfig holds the MCP server listen address
type McpConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

func (m McpConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", m.Host, m.Port)
}

// NGramConfig holds the default generation parameters applied to requests
// that do not override them.
type NGramConfig struct {
	NRange    []int  `yaml:"n_range"`
	Delimiter string `yaml:"delimiter"`
}

// LoadConfig reads and validates the application configuration. A missing or
// malformed n_range is a caller programming error and fails here, before any
// row is processed.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := ValidateNRange(cfg.NGram.NRange); err != nil {
		return nil, fmt.Errorf("invalid ngram configuration: %w", err)
	}

	return &cfg, nil
}

// ValidateNRange rejects an empty range or any non-positive length. Lengths
// larger than a given row's token count are not a configuration concern; the
// generator skips them per row.
func ValidateNRange(nRange []int) error {
	if len(nRange) == 0 {
		return fmt.Errorf("n_range is required and must not be empty")
	}
	for _, n := range nRange {
		if n < 1 {
			return fmt.Errorf("n_range values must be positive, got %d", n)
		}
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.App.Port == 0 {
		cfg.App.Port = 8080
	}
	if cfg.App.NumRowWorkers == 0 {
		cfg.App.NumRowWorkers = 2
	}
	if cfg.Mcp.Host == "" {
		cfg.Mcp.Host = "localhost"
	}
	if cfg.Mcp.Port == 0 {
		cfg.Mcp.Port = 8081
	}
	if cfg.NGram.Delimiter == "" {
		cfg.NGram.Delimiter = ngram.DefaultDelimiter
	}
}
