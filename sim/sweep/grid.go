// Package sweep runs a simulation for every combination of arrival-rate
// scale, complexity scale and encoder buffer size.
package sweep

import (
	"errors"
	"fmt"

	"github.com/fieldsim/fieldsim/sim"
)

// Default grid values.
const (
	DefaultBaseInterArrival = 1.0 / 120.0 // 120 fields per second
	DefaultBaseComplexity   = 200.0
)

// Grid describes the parameter combinations of a sweep.
// Mean inter-arrival time is BaseInterArrival/rateScale and mean complexity
// is BaseComplexity*complexityScale.
type Grid struct {
	BaseInterArrival float64   `yaml:"base_inter_arrival"`
	BaseComplexity   float64   `yaml:"base_complexity"`
	RateScales       []float64 `yaml:"rate_scales"`
	ComplexityScales []float64 `yaml:"complexity_scales"`
	BufferCapacities []int     `yaml:"buffer_capacities"`
	Horizon          *float64  `yaml:"horizon"` // nil uses sim.DefaultHorizon; 0 is a valid horizon
}

// DefaultGrid returns the 2 x 2 x 5 grid: rate and complexity scales {1, 2},
// buffer sizes {20, 40, 60, 80, 100}.
func DefaultGrid() Grid {
	return Grid{
		BaseInterArrival: DefaultBaseInterArrival,
		BaseComplexity:   DefaultBaseComplexity,
		RateScales:       []float64{1, 2},
		ComplexityScales: []float64{1, 2},
		BufferCapacities: []int{20, 40, 60, 80, 100},
	}
}

// Size returns the number of configurations in the grid.
func (g Grid) Size() int {
	return len(g.RateScales) * len(g.ComplexityScales) * len(g.BufferCapacities)
}

// Validate checks that the grid is non-empty and every expanded config is valid.
func (g Grid) Validate() error {
	if g.Size() == 0 {
		return errors.New("sweep grid is empty: rate_scales, complexity_scales and buffer_capacities must all be non-empty")
	}
	for _, s := range g.RateScales {
		if s <= 0 {
			return fmt.Errorf("rate scale must be > 0, got %v", s)
		}
	}
	for i, cfg := range g.Expand() {
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("grid config %d (%s): %w", i, cfg, err)
		}
	}
	return nil
}

// Expand returns one RunConfig per combination in run order: rate scale
// outermost, then complexity scale, then buffer capacity.
func (g Grid) Expand() []sim.RunConfig {
	horizon := sim.DefaultHorizon
	if g.Horizon != nil {
		horizon = *g.Horizon
	}
	configs := make([]sim.RunConfig, 0, g.Size())
	for _, rate := range g.RateScales {
		for _, complexity := range g.ComplexityScales {
			for _, buffer := range g.BufferCapacities {
				cfg := sim.DefaultRunConfig(g.BaseInterArrival/rate, g.BaseComplexity*complexity, buffer)
				cfg.Horizon = horizon
				configs = append(configs, cfg)
			}
		}
	}
	return configs
}
