package sim

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetrics_DiscardRate_NoFields_Zero(t *testing.T) {
	// GIVEN a run that created no fields
	m := NewMetrics()

	// THEN the discard rate is a defined 0, not NaN
	assert.Equal(t, 0.0, m.DiscardRate())
}

func TestMetrics_Utilization_ZeroDuration_Zero(t *testing.T) {
	m := NewMetrics()
	m.SimEndedTime = 0
	assert.Equal(t, 0.0, m.Utilization(5))
}

func TestMetrics_Result_DerivesRates(t *testing.T) {
	// GIVEN counters and busy times from a finished run
	m := NewMetrics()
	m.CreatedFields = 8
	m.DiscardedFields = 2
	m.EncoderBusyTime = 3
	m.StorageBusyTime = 1
	m.SimEndedTime = 4
	cfg := DefaultRunConfig(0.5, 100, 40)

	// WHEN the result is derived
	r := m.Result(cfg)

	// THEN rates and echoed config match
	assert.Equal(t, 0.25, r.DiscardRate)
	assert.Equal(t, 0.75, r.EncoderUtilization)
	assert.Equal(t, 0.25, r.StorageUtilization)
	assert.Equal(t, 0.5, r.MeanInterArrival)
	assert.Equal(t, 100.0, r.MeanComplexity)
	assert.Equal(t, 40, r.BufferCapacity)
}

func TestResult_Print(t *testing.T) {
	var buf bytes.Buffer
	Result{BufferCapacity: 20, DiscardRate: 0.5}.Print(&buf)
	out := buf.String()
	assert.Contains(t, out, "Simulation Metrics")
	assert.Contains(t, out, "Field discard rate      : 0.5")
	assert.Contains(t, out, "Buffer size             : 20")
}

func TestOfferedLoad(t *testing.T) {
	enc, st := OfferedLoad(DefaultRunConfig(1.0/120.0, 200, 20))
	assert.InDelta(t, 200*120/15800.0, enc, 1e-9)
	assert.InDelta(t, 0.1*200*120/1600.0, st, 1e-9)
}
