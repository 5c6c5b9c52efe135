// Package config holds the lab configuration: everything here is a
// plain value (sizes, ratios, seeds, paths), never a runtime behavior.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Lab is the full configuration for a feature-build run.
type Lab struct {
	// Seed drives every random draw. It is mandatory: an unseeded run
	// would not be reproducible, so zero fails validation.
	Seed uint64 `yaml:"seed"`

	// Start and Count describe the synthetic dataset when generating.
	Start time.Time `yaml:"start"`
	Count int       `yaml:"count"`

	SplitRatio float64 `yaml:"split_ratio"`
	HistoryLen int     `yaml:"history_len"`
	Horizon    int     `yaml:"horizon"`
	Stride     int     `yaml:"stride"`

	// Workers bounds the parallel transform apply. Zero means NumCPU.
	Workers int `yaml:"workers"`

	OutputDir string `yaml:"output_dir"`
}

// Default returns the standard lab parameters. Seed must still be set
// explicitly before Validate passes.
func Default() Lab {
	return Lab{
		Start:      time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		Count:      10000,
		SplitRatio: 0.8,
		HistoryLen: 168,
		Horizon:    24,
		Stride:     24,
		OutputDir:  getEnv("ENERGY_LAB_DATA_DIR", "data"),
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (Lab, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Lab{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Lab{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Lab{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configurations that would produce a silent bad run.
func (c Lab) Validate() error {
	if c.Seed == 0 {
		return fmt.Errorf("seed must be set explicitly (got 0)")
	}
	if c.Count < 0 {
		return fmt.Errorf("count must be non-negative (got %d)", c.Count)
	}
	if c.SplitRatio <= 0 || c.SplitRatio >= 1 {
		return fmt.Errorf("split_ratio must be in (0,1) (got %g)", c.SplitRatio)
	}
	if c.HistoryLen <= 0 {
		return fmt.Errorf("history_len must be positive (got %d)", c.HistoryLen)
	}
	if c.Horizon <= 0 {
		return fmt.Errorf("horizon must be positive (got %d)", c.Horizon)
	}
	if c.Stride <= 0 {
		return fmt.Errorf("stride must be positive (got %d)", c.Stride)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be non-negative (got %d)", c.Workers)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir must not be empty")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
