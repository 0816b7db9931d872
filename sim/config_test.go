package sim

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultRunConfig_FixedConstants(t *testing.T) {
	cfg := DefaultRunConfig(1.0/120.0, 200, 20)
	if cfg.Horizon != 28800 || cfg.EncoderCapacity != 15800 || cfg.StorageCapacity != 1600 || cfg.Alpha != 0.1 {
		t.Errorf("unexpected constants in %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid, got %v", err)
	}
}

func TestRunConfig_Validate_Rejects(t *testing.T) {
	base := DefaultRunConfig(1, 200, 20)
	tests := []struct {
		name   string
		mutate func(*RunConfig)
	}{
		{"zero inter-arrival", func(c *RunConfig) { c.MeanInterArrival = 0 }},
		{"NaN inter-arrival", func(c *RunConfig) { c.MeanInterArrival = math.NaN() }},
		{"negative complexity", func(c *RunConfig) { c.MeanComplexity = -1 }},
		{"zero buffer", func(c *RunConfig) { c.BufferCapacity = 0 }},
		{"negative horizon", func(c *RunConfig) { c.Horizon = -1 }},
		{"infinite horizon", func(c *RunConfig) { c.Horizon = math.Inf(1) }},
		{"zero encoder capacity", func(c *RunConfig) { c.EncoderCapacity = 0 }},
		{"zero storage capacity", func(c *RunConfig) { c.StorageCapacity = 0 }},
		{"negative alpha", func(c *RunConfig) { c.Alpha = -0.1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestRunConfig_Validate_AcceptsBoundaries(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RunConfig)
	}{
		{"no arrivals", func(c *RunConfig) { c.MeanInterArrival = math.Inf(1) }},
		{"zero horizon", func(c *RunConfig) { c.Horizon = 0 }},
		{"zero complexity", func(c *RunConfig) { c.MeanComplexity = 0 }},
		{"single slot buffer", func(c *RunConfig) { c.BufferCapacity = 1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultRunConfig(1, 200, 20)
			tt.mutate(&cfg)
			if err := cfg.Validate(); err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}
