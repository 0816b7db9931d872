package testutil

import (
	"fmt"
	"math"
)

// ScriptedSource replays fixed draws so tests can hand-compute a run.
// Once InterArrivals is exhausted every further arrival is at +Inf, which
// stops the arrival stream. Running out of Complexities is a test bug.
type ScriptedSource struct {
	InterArrivals []float64
	Complexities  []float64

	interIdx, complexIdx int
	interDraws           int // includes draws past the end of InterArrivals
}

// InterArrival returns the next scripted inter-arrival time; mean is ignored.
func (s *ScriptedSource) InterArrival(mean float64) float64 {
	s.interDraws++
	if s.interIdx >= len(s.InterArrivals) {
		return math.Inf(1)
	}
	v := s.InterArrivals[s.interIdx]
	s.interIdx++
	return v
}

// Complexity returns the next scripted complexity; mean is ignored.
func (s *ScriptedSource) Complexity(mean float64) float64 {
	if s.complexIdx >= len(s.Complexities) {
		panic(fmt.Sprintf("ScriptedSource: complexity draw %d requested, only %d scripted", s.complexIdx+1, len(s.Complexities)))
	}
	v := s.Complexities[s.complexIdx]
	s.complexIdx++
	return v
}

// Draws returns how many inter-arrival and complexity values were requested.
func (s *ScriptedSource) Draws() (interArrivals, complexities int) {
	return s.interDraws, s.complexIdx
}

// ConstantSource returns the mean of each distribution on every draw.
type ConstantSource struct{}

func (ConstantSource) InterArrival(mean float64) float64 { return mean }
func (ConstantSource) Complexity(mean float64) float64   { return mean }
