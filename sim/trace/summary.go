package trace

// TraceSummary aggregates statistics from a RunTrace.
type TraceSummary struct {
	Arrivals         int
	Admitted         int
	Discards         int
	DiscardsByReason map[string]int
	PairedDiscards   int // BOTTOM overflows that also removed their buffered TOP
	PairsServed      int
	MismatchedPairs  int
	ParityViolations int // consecutive arrivals with equal parity
}

// Summarize computes aggregate statistics from a RunTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(rt *RunTrace) *TraceSummary {
	summary := &TraceSummary{
		DiscardsByReason: make(map[string]int),
	}
	if rt == nil {
		return summary
	}

	summary.Arrivals = len(rt.Arrivals)
	for i, a := range rt.Arrivals {
		if a.Admitted {
			summary.Admitted++
		}
		if i > 0 && rt.Arrivals[i-1].Parity == a.Parity {
			summary.ParityViolations++
		}
	}

	summary.Discards = len(rt.Discards)
	for _, d := range rt.Discards {
		summary.DiscardsByReason[d.Reason]++
	}
	summary.PairedDiscards = summary.DiscardsByReason[ReasonPairedOverflow]

	summary.PairsServed = len(rt.Pairs)
	for _, p := range rt.Pairs {
		if !p.Matched() {
			summary.MismatchedPairs++
		}
	}

	return summary
}
