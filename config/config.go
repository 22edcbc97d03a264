package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all configuration for the brstemmer tool.
type Config struct {
	Rules    string         `yaml:"rules"` // Path to a YAML rule table; empty uses the built-in RSLP rules
	Tokenize TokenizeConfig `yaml:"tokenize"`
	Corpus   CorpusConfig   `yaml:"corpus"`
	Cache    CacheConfig    `yaml:"cache"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// TokenizeConfig controls how text is split into words before stemming.
type TokenizeConfig struct {
	MinLength int  `yaml:"min_length"`
	Stopwords bool `yaml:"stopwords"` // Drop Portuguese stopwords
}

// CorpusConfig holds corpus stemming configuration.
type CorpusConfig struct {
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
	Workers  int      `yaml:"workers"`
	TopN     int      `yaml:"top_n"`
	Store    bool     `yaml:"store"` // Persist word -> stem pairs in .brstemmer/stems.db
}

// CacheConfig holds the in-memory stem cache configuration.
type CacheConfig struct {
	Enabled bool `yaml:"enabled"`
	Size    int  `yaml:"size"`
}

// OutputConfig holds output formatting configuration.
type OutputConfig struct {
	Format string `yaml:"format"` // "text" or "json"
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text" or "json"
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Tokenize: TokenizeConfig{
			MinLength: 2,
			Stopwords: true,
		},
		Corpus: CorpusConfig{
			Includes: []string{"**/*.txt", "**/*.md"},
			Excludes: []string{"**/.git/**", "**/.brstemmer/**", "**/node_modules/**", "**/vendor/**"},
			Workers:  4,
			TopN:     20,
			Store:    true,
		},
		Cache: CacheConfig{
			Enabled: true,
			Size:    10000,
		},
		Output: OutputConfig{
			Format: "text",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for brstemmer.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "brstemmer.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".brstemmer", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// ApplyEnv loads dir/.env when present and applies BRSTEMMER_* overrides.
func (c *Config) ApplyEnv(dir string) error {
	// Best-effort: a missing .env is not an error
	_ = godotenv.Load(filepath.Join(dir, ".env"))

	if v := strings.TrimSpace(os.Getenv("BRSTEMMER_RULES")); v != "" {
		c.Rules = v
	}
	if v := strings.TrimSpace(os.Getenv("BRSTEMMER_LOG_LEVEL")); v != "" {
		c.Logging.Level = v
	}
	if v := strings.TrimSpace(os.Getenv("BRSTEMMER_LOG_FORMAT")); v != "" {
		c.Logging.Format = v
	}
	if v := strings.TrimSpace(os.Getenv("BRSTEMMER_WORKERS")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: BRSTEMMER_WORKERS=%q: %v", ErrInvalidConfig, v, err)
		}
		c.Corpus.Workers = n
	}
	return nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Tokenize.MinLength < 1 {
		return fmt.Errorf("%w: tokenize.min_length must be at least 1, got %d", ErrInvalidConfig, c.Tokenize.MinLength)
	}
	if c.Corpus.Workers < 1 {
		return fmt.Errorf("%w: corpus.workers must be at least 1, got %d", ErrInvalidConfig, c.Corpus.Workers)
	}
	if c.Corpus.TopN < 0 {
		return fmt.Errorf("%w: corpus.top_n must not be negative, got %d", ErrInvalidConfig, c.Corpus.TopN)
	}
	if c.Cache.Enabled && c.Cache.Size < 1 {
		return fmt.Errorf("%w: cache.size must be at least 1, got %d", ErrInvalidConfig, c.Cache.Size)
	}
	switch c.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: unknown output.format %q", ErrInvalidConfig, c.Output.Format)
	}
	return nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// StoreDBPath returns the path to the stem dictionary database.
func StoreDBPath(dir string) string {
	return filepath.Join(dir, ".brstemmer", "stems.db")
}

// EnsureDataDir ensures the .brstemmer directory exists.
func EnsureDataDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, ".brstemmer"), 0755)
}
