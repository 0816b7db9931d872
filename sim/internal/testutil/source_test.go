package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScriptedSource_Draws_CountsExhaustedInterArrivals(t *testing.T) {
	// GIVEN a script with one inter-arrival time
	src := &ScriptedSource{InterArrivals: []float64{2}, Complexities: []float64{5}}

	// WHEN three inter-arrivals and one complexity are drawn
	assert.Equal(t, 2.0, src.InterArrival(1))
	assert.True(t, math.IsInf(src.InterArrival(1), 1))
	assert.True(t, math.IsInf(src.InterArrival(1), 1))
	assert.Equal(t, 5.0, src.Complexity(1))

	// THEN every request is counted, including those past the script
	inter, complexity := src.Draws()
	assert.Equal(t, 3, inter)
	assert.Equal(t, 1, complexity)
}

func TestScriptedSource_ComplexityExhausted_Panics(t *testing.T) {
	src := &ScriptedSource{}
	assert.Panics(t, func() { src.Complexity(1) })
}
