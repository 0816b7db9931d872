// Package trace provides per-run event recording for pipeline analysis.
// It stores plain data types and does not import sim.
package trace

// Parity labels as written by sim.Parity.String().
const (
	ParityTop    = "T"
	ParityBottom = "B"
)

// Discard reasons.
const (
	// ReasonOverflow: the arriving field found the encoder buffer full.
	ReasonOverflow = "overflow"
	// ReasonPairedOverflow: a buffered TOP field removed because its BOTTOM overflowed.
	ReasonPairedOverflow = "paired-overflow"
	// ReasonOrphan: a BOTTOM field whose TOP was already discarded.
	ReasonOrphan = "orphan"
)

// ArrivalRecord captures a field creation at the encoder.
type ArrivalRecord struct {
	Clock    float64
	FieldID  int
	Parity   string
	Admitted bool // false if the arriving field itself was discarded
}

// DiscardRecord captures a single field removed from the pipeline.
type DiscardRecord struct {
	Clock   float64
	FieldID int
	Parity  string
	Reason  string
}

// PairRecord captures two fields entering the storage server together.
type PairRecord struct {
	Clock        float64
	FirstID      int
	FirstParity  string
	SecondID     int
	SecondParity string
}

// Matched reports whether the pair is a TOP field followed by a BOTTOM field.
func (p PairRecord) Matched() bool {
	return p.FirstParity == ParityTop && p.SecondParity == ParityBottom
}
