package sim

import (
	"hash/fnv"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// RandomSource supplies the random draws a run consumes.
// Implementations return non-negative values; +Inf is a valid inter-arrival
// time and means no further arrivals.
type RandomSource interface {
	// InterArrival draws the time until the next field arrives.
	InterArrival(mean float64) float64
	// Complexity draws the complexity of a newly created field.
	Complexity(mean float64) float64
}

// === SimulationKey ===

// SimulationKey uniquely identifies a reproducible simulation run.
// Two runs with the same SimulationKey and identical RunConfig
// MUST produce bit-for-bit identical results.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// === Subsystem Constants ===

const (
	// SubsystemInterArrival is the stream for inter-arrival times.
	SubsystemInterArrival = "inter_arrival"

	// SubsystemComplexity is the stream for field complexities.
	SubsystemComplexity = "complexity"
)

// === PartitionedRNG ===

// PartitionedRNG provides deterministic, isolated RNG streams per subsystem.
// Each stream is a PCG seeded with (key, fnv1a64(subsystemName)), so drawing
// from one subsystem never shifts the sequence of another.
//
// Thread-safety: NOT thread-safe. Must be called from single goroutine.
type PartitionedRNG struct {
	key        SimulationKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a SimulationKey.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named subsystem.
// The same subsystem name always returns the same *rand.Rand instance (cached).
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}
	rng := rand.New(rand.NewPCG(uint64(p.key), fnv1a64(name)))
	p.subsystems[name] = rng
	return rng
}

func fnv1a64(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}

// === ExponentialSource ===

// ExponentialSource draws inter-arrival times and complexities from
// independent exponential distributions.
type ExponentialSource struct {
	interArrival rand.Source
	complexity   rand.Source
}

// NewExponentialSource creates an ExponentialSource whose streams derive from seed.
func NewExponentialSource(seed int64) *ExponentialSource {
	rng := NewPartitionedRNG(NewSimulationKey(seed))
	return &ExponentialSource{
		interArrival: rng.ForSubsystem(SubsystemInterArrival),
		complexity:   rng.ForSubsystem(SubsystemComplexity),
	}
}

// InterArrival draws an exponential inter-arrival time with the given mean.
func (s *ExponentialSource) InterArrival(mean float64) float64 {
	return drawExponential(mean, s.interArrival)
}

// Complexity draws an exponential field complexity with the given mean.
func (s *ExponentialSource) Complexity(mean float64) float64 {
	return drawExponential(mean, s.complexity)
}

func drawExponential(mean float64, src rand.Source) float64 {
	switch {
	case math.IsInf(mean, 1):
		return math.Inf(1)
	case mean <= 0:
		return 0
	}
	return distuv.Exponential{Rate: 1 / mean, Src: src}.Rand()
}
