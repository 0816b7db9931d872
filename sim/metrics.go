// Tracks per-run field counts and stage busy times, and derives the
// discard rate and stage utilizations reported at the end of a run.

package sim

import (
	"fmt"
	"io"
)

// Metrics aggregates statistics about a run for final reporting.
type Metrics struct {
	CreatedFields   int // fields generated at the encoder
	DiscardedFields int // fields removed by the discard policy
	EncodedFields   int // fields that left the encoder
	StoredFields    int // fields that left the storage server

	// Busy times are finalized at the end of the run.
	EncoderBusyTime float64
	StorageBusyTime float64
	SimEndedTime    float64
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

// DiscardRate returns discarded/created, or 0 if no field was created.
func (m *Metrics) DiscardRate() float64 {
	if m.CreatedFields == 0 {
		return 0
	}
	return float64(m.DiscardedFields) / float64(m.CreatedFields)
}

// Utilization returns busy/elapsed, or 0 for a zero-length run.
func (m *Metrics) Utilization(busy float64) float64 {
	if m.SimEndedTime <= 0 {
		return 0
	}
	return busy / m.SimEndedTime
}

// Result is the outcome of one completed run.
type Result struct {
	MeanInterArrival   float64 `json:"mean_inter_arrival"`
	MeanComplexity     float64 `json:"mean_complexity"`
	BufferCapacity     int     `json:"buffer_capacity"`
	DiscardRate        float64 `json:"discard_rate"`
	EncoderUtilization float64 `json:"encoder_utilization"`
	StorageUtilization float64 `json:"storage_utilization"`
	CreatedFields      int     `json:"created_fields"`
	DiscardedFields    int     `json:"discarded_fields"`
	StoredFields       int     `json:"stored_fields"`
	SimEndedTime       float64 `json:"sim_ended_time"`
}

// Result derives the reported metrics, echoing the configuration.
func (m *Metrics) Result(cfg RunConfig) Result {
	return Result{
		MeanInterArrival:   cfg.MeanInterArrival,
		MeanComplexity:     cfg.MeanComplexity,
		BufferCapacity:     cfg.BufferCapacity,
		DiscardRate:        m.DiscardRate(),
		EncoderUtilization: m.Utilization(m.EncoderBusyTime),
		StorageUtilization: m.Utilization(m.StorageBusyTime),
		CreatedFields:      m.CreatedFields,
		DiscardedFields:    m.DiscardedFields,
		StoredFields:       m.StoredFields,
		SimEndedTime:       m.SimEndedTime,
	}
}

// Print writes a human-readable summary of r to w.
func (r Result) Print(w io.Writer) {
	_, _ = fmt.Fprintln(w, "=== Simulation Metrics ===")
	_, _ = fmt.Fprintf(w, "Mean inter-arrival time : %g\n", r.MeanInterArrival)
	_, _ = fmt.Fprintf(w, "Mean complexity         : %g\n", r.MeanComplexity)
	_, _ = fmt.Fprintf(w, "Buffer size             : %d\n", r.BufferCapacity)
	_, _ = fmt.Fprintf(w, "Fields created          : %d\n", r.CreatedFields)
	_, _ = fmt.Fprintf(w, "Fields discarded        : %d\n", r.DiscardedFields)
	_, _ = fmt.Fprintf(w, "Field discard rate      : %g\n", r.DiscardRate)
	_, _ = fmt.Fprintf(w, "Utilization of encoder  : %g\n", r.EncoderUtilization)
	_, _ = fmt.Fprintf(w, "Utilization of storage  : %g\n", r.StorageUtilization)
}

// OfferedLoad returns the utilization each stage would see if no field were
// discarded: arrival rate times mean service time per field.
func OfferedLoad(cfg RunConfig) (encoder, storage float64) {
	encoder = cfg.MeanComplexity / (cfg.EncoderCapacity * cfg.MeanInterArrival)
	storage = cfg.Alpha * cfg.MeanComplexity / (cfg.StorageCapacity * cfg.MeanInterArrival)
	return encoder, storage
}
