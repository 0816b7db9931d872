package trace

// TraceLevel controls the verbosity of run tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelEvents captures every arrival, discard and served pair.
	TraceLevelEvents TraceLevel = "events"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:   true,
	TraceLevelEvents: true,
	"":               true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// Enabled reports whether level records anything.
func (l TraceLevel) Enabled() bool {
	return l == TraceLevelEvents
}

// RunTrace collects records during a single simulation run.
type RunTrace struct {
	Level    TraceLevel
	Arrivals []ArrivalRecord
	Discards []DiscardRecord
	Pairs    []PairRecord
}

// NewRunTrace creates a RunTrace ready for recording.
func NewRunTrace(level TraceLevel) *RunTrace {
	return &RunTrace{
		Level:    level,
		Arrivals: make([]ArrivalRecord, 0),
		Discards: make([]DiscardRecord, 0),
		Pairs:    make([]PairRecord, 0),
	}
}

// RecordArrival appends an arrival record.
func (rt *RunTrace) RecordArrival(record ArrivalRecord) {
	rt.Arrivals = append(rt.Arrivals, record)
}

// RecordDiscard appends a discard record.
func (rt *RunTrace) RecordDiscard(record DiscardRecord) {
	rt.Discards = append(rt.Discards, record)
}

// RecordPair appends a record of a pair entering storage.
func (rt *RunTrace) RecordPair(record PairRecord) {
	rt.Pairs = append(rt.Pairs, record)
}
