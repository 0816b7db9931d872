package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fieldsim/fieldsim/sim/sweep"
)

// SweepConfig is the YAML sweep file. Grid fields sit at the top level;
// any key left out keeps its DefaultGrid value.
type SweepConfig struct {
	sweep.Grid   `yaml:",inline"`
	Seed         *int64 `yaml:"seed"`
	Replications int    `yaml:"replications"`
	Workers      int    `yaml:"workers"`
}

// DefaultSweepConfig returns the built-in sweep: the default grid, one
// replication, seed unset.
func DefaultSweepConfig() SweepConfig {
	return SweepConfig{Grid: sweep.DefaultGrid(), Replications: 1}
}

// loadSweepConfig parses a sweep YAML file on top of DefaultSweepConfig.
// Unknown keys are rejected so typos surface as errors.
func loadSweepConfig(path string) (SweepConfig, error) {
	cfg := DefaultSweepConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading sweep config: %w", err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing sweep config %s: %w", path, err)
	}
	if err := cfg.Grid.Validate(); err != nil {
		return cfg, fmt.Errorf("sweep config %s: %w", path, err)
	}
	if cfg.Replications < 0 {
		return cfg, fmt.Errorf("sweep config %s: replications must be >= 0, got %d", path, cfg.Replications)
	}
	return cfg, nil
}
