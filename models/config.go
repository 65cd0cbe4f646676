// Package models defines data structures for configuration and analysis reports.
package models

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// AnalysisConfig holds the call-time limits of the three analyzers.
type AnalysisConfig struct {
	MaxPhrases int `yaml:"max_phrases" json:"max_phrases"`
	MinWords   int `yaml:"min_words" json:"min_words"`
	MaxWords   int `yaml:"max_words" json:"max_words"`
	MaxLength  int `yaml:"max_length" json:"max_length"`

	// TopN is how many keywords the text report highlights.
	TopN int `yaml:"top_n" json:"top_n"`
}

// Config holds runtime configuration. Values come from an optional YAML
// file and are overridden by CLI flags.
type Config struct {
	Analysis       AnalysisConfig `yaml:"analysis"`
	DBPath         string         `yaml:"db_path"`
	LogLevel       string         `yaml:"log_level"`
	LogFormat      string         `yaml:"log_format"` // json | text
	LogFile        string         `yaml:"log_file"`
	Workers        int            `yaml:"workers"`
	CacheTTL       time.Duration  `yaml:"cache_ttl"`
	DetectLanguage bool           `yaml:"detect_language"`
}

func DefaultConfig() Config {
	return Config{
		Analysis: AnalysisConfig{
			MaxPhrases: 8,
			MinWords:   1,
			MaxWords:   3,
			MaxLength:  160,
			TopN:       5,
		},
		LogLevel:       "info",
		LogFormat:      "json",
		Workers:        4,
		CacheTTL:       10 * time.Minute,
		DetectLanguage: true,
	}
}

// LoadConfig reads a YAML config file over the defaults. A missing file is
// not an error; the defaults are returned.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

// normalize replaces out-of-range values with defaults.
func (c *Config) normalize() {
	def := DefaultConfig()
	if c.Analysis.MaxPhrases <= 0 {
		c.Analysis.MaxPhrases = def.Analysis.MaxPhrases
	}
	if c.Analysis.MinWords <= 0 {
		c.Analysis.MinWords = def.Analysis.MinWords
	}
	if c.Analysis.MaxWords < c.Analysis.MinWords {
		c.Analysis.MaxWords = max(def.Analysis.MaxWords, c.Analysis.MinWords)
	}
	if c.Analysis.MaxLength <= 0 {
		c.Analysis.MaxLength = def.Analysis.MaxLength
	}
	if c.Analysis.TopN <= 0 {
		c.Analysis.TopN = def.Analysis.TopN
	}
	if c.Workers <= 0 {
		c.Workers = def.Workers
	}
	if c.CacheTTL < 0 {
		c.CacheTTL = def.CacheTTL
	}
}
