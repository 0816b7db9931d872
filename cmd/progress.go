package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/fieldsim/fieldsim/sim/sweep"
)

const progressBarWidth = 20

// progressBar renders done/total as a fixed-width bar.
func progressBar(done, total int) string {
	if total <= 0 {
		return strings.Repeat(" ", progressBarWidth)
	}
	filled := done * progressBarWidth / total
	return strings.Repeat("#", filled) + strings.Repeat(".", progressBarWidth-filled)
}

// printProgress writes one status block per finished run.
func printProgress(w io.Writer, done, total int, run sweep.Run) {
	pct := 0
	if total > 0 {
		pct = done * 100 / total
	}
	r := run.Result
	_, _ = fmt.Fprintf(w, "Simulation %d | Progress: [%s] %3d%%\n", done, progressBar(done, total), pct)
	_, _ = fmt.Fprintf(w, "  inter=%g complexity=%g buffer=%d seed=%d\n",
		r.MeanInterArrival, r.MeanComplexity, r.BufferCapacity, run.Seed)
	_, _ = fmt.Fprintf(w, "  discard rate=%.6f util encoder=%.6f util storage=%.6f\n",
		r.DiscardRate, r.EncoderUtilization, r.StorageUtilization)
}
