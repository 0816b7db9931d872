package sim

import (
	"errors"
	"fmt"
	"math"
)

// Fixed model constants.
const (
	DefaultHorizon         = 28800.0 // simulated seconds (8 hours)
	DefaultEncoderCapacity = 15800.0 // fobs per second
	DefaultStorageCapacity = 1600.0  // bytes per second
	DefaultAlpha           = 0.1     // bytes per fob
)

// ErrInvalidConfig is wrapped by every RunConfig validation failure.
var ErrInvalidConfig = errors.New("invalid run config")

// RunConfig holds the parameters of one simulation run.
// It is not modified while a run executes.
type RunConfig struct {
	MeanInterArrival float64 `json:"mean_inter_arrival" yaml:"mean_inter_arrival"` // seconds; +Inf means no arrivals
	MeanComplexity   float64 `json:"mean_complexity" yaml:"mean_complexity"`       // fobs
	BufferCapacity   int     `json:"buffer_capacity" yaml:"buffer_capacity"`       // encoder buffer size in fields
	Horizon          float64 `json:"horizon" yaml:"horizon"`
	EncoderCapacity  float64 `json:"encoder_capacity" yaml:"encoder_capacity"`
	StorageCapacity  float64 `json:"storage_capacity" yaml:"storage_capacity"`
	Alpha            float64 `json:"alpha" yaml:"alpha"`
}

// DefaultRunConfig returns a RunConfig using the fixed model constants.
func DefaultRunConfig(meanInterArrival, meanComplexity float64, bufferCapacity int) RunConfig {
	return RunConfig{
		MeanInterArrival: meanInterArrival,
		MeanComplexity:   meanComplexity,
		BufferCapacity:   bufferCapacity,
		Horizon:          DefaultHorizon,
		EncoderCapacity:  DefaultEncoderCapacity,
		StorageCapacity:  DefaultStorageCapacity,
		Alpha:            DefaultAlpha,
	}
}

func (c RunConfig) String() string {
	return fmt.Sprintf("inter=%g,complexity=%g,buffer=%d", c.MeanInterArrival, c.MeanComplexity, c.BufferCapacity)
}

// Validate reports the first invalid parameter.
func (c RunConfig) Validate() error {
	switch {
	case math.IsNaN(c.MeanInterArrival) || c.MeanInterArrival <= 0:
		return fmt.Errorf("%w: mean inter-arrival time must be > 0, got %v", ErrInvalidConfig, c.MeanInterArrival)
	case invalidNonNegative(c.MeanComplexity):
		return fmt.Errorf("%w: mean complexity must be finite and >= 0, got %v", ErrInvalidConfig, c.MeanComplexity)
	case c.BufferCapacity < 1:
		return fmt.Errorf("%w: buffer capacity must be >= 1, got %d", ErrInvalidConfig, c.BufferCapacity)
	case invalidNonNegative(c.Horizon):
		return fmt.Errorf("%w: horizon must be finite and >= 0, got %v", ErrInvalidConfig, c.Horizon)
	case invalidPositive(c.EncoderCapacity):
		return fmt.Errorf("%w: encoder capacity must be finite and > 0, got %v", ErrInvalidConfig, c.EncoderCapacity)
	case invalidPositive(c.StorageCapacity):
		return fmt.Errorf("%w: storage capacity must be finite and > 0, got %v", ErrInvalidConfig, c.StorageCapacity)
	case invalidNonNegative(c.Alpha):
		return fmt.Errorf("%w: alpha must be finite and >= 0, got %v", ErrInvalidConfig, c.Alpha)
	}
	return nil
}

func invalidNonNegative(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0) || v < 0
}

func invalidPositive(v float64) bool {
	return invalidNonNegative(v) || v == 0
}
