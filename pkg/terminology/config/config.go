// Package config loads the engine configuration and stopword list from
// YAML files.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/syyyclover/ocean-terminology/pkg/terminology/internalerr"
)

// Config is the YAML pipeline configuration.
type Config struct {
	TermExtraction TermExtraction `yaml:"term_extraction"`
	Association    Association    `yaml:"association"`
	StoplistPath   string         `yaml:"stoplist_path"`
}

// TermExtraction configures definition matching and scoring.
type TermExtraction struct {
	SimilarityThreshold float64 `yaml:"similarity_threshold"`
	MinDefinitionLen    int     `yaml:"min_definition_len"`
	MaxDefinitionLen    int     `yaml:"max_definition_len"`
}

// Association configures pairwise relationship resolution.
type Association struct {
	MinConfidence float64 `yaml:"min_confidence"`
}

// Default returns the configuration the pipeline runs with when no file is
// given.
func Default() Config {
	return Config{
		TermExtraction: TermExtraction{
			SimilarityThreshold: 0.8,
			MinDefinitionLen:    10,
			MaxDefinitionLen:    500,
		},
		Association: Association{
			MinConfidence: 0.7,
		},
	}
}

// Load reads a YAML config file. Unset fields fall back to the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, internalerr.ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects thresholds outside [0, 1] and inverted length gates.
func (c Config) Validate() error {
	if c.TermExtraction.SimilarityThreshold < 0 || c.TermExtraction.SimilarityThreshold > 1 {
		return fmt.Errorf("similarity_threshold %v out of range: %w",
			c.TermExtraction.SimilarityThreshold, internalerr.ErrInvalidConfig)
	}
	if c.Association.MinConfidence < 0 || c.Association.MinConfidence > 1 {
		return fmt.Errorf("min_confidence %v out of range: %w",
			c.Association.MinConfidence, internalerr.ErrInvalidConfig)
	}
	if c.TermExtraction.MinDefinitionLen < 0 || c.TermExtraction.MaxDefinitionLen < 0 {
		return fmt.Errorf("negative definition length gate: %w", internalerr.ErrInvalidConfig)
	}
	if c.TermExtraction.MaxDefinitionLen > 0 &&
		c.TermExtraction.MinDefinitionLen > c.TermExtraction.MaxDefinitionLen {
		return fmt.Errorf("min_definition_len exceeds max_definition_len: %w", internalerr.ErrInvalidConfig)
	}
	return nil
}

// Stoplist is the YAML stopword list format.
type Stoplist struct {
	Terms []string `yaml:"terms"`
}

// LoadStoplist loads stopwords from a YAML file.
func LoadStoplist(path string) (*Stoplist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sl Stoplist
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, err
	}
	return &sl, nil
}
