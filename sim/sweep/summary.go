package sweep

import (
	"gonum.org/v1/gonum/stat"

	"github.com/fieldsim/fieldsim/sim"
)

// Summary aggregates the replications of one configuration.
type Summary struct {
	Config       sim.RunConfig `json:"config"`
	Replications int           `json:"replications"`

	DiscardRateMean   float64 `json:"discard_rate_mean"`
	DiscardRateStdDev float64 `json:"discard_rate_stddev"`
	EncoderUtilMean   float64 `json:"encoder_utilization_mean"`
	EncoderUtilStdDev float64 `json:"encoder_utilization_stddev"`
	StorageUtilMean   float64 `json:"storage_utilization_mean"`
	StorageUtilStdDev float64 `json:"storage_utilization_stddev"`
}

// Summarize groups runs by configuration, in first-seen order, and computes
// the mean and sample standard deviation of each metric. The standard
// deviation is 0 for a single replication.
func Summarize(runs []Run) []Summary {
	type group struct {
		discard []float64
		encoder []float64
		storage []float64
	}
	var order []sim.RunConfig
	groups := make(map[sim.RunConfig]*group)
	for _, r := range runs {
		g, ok := groups[r.Config]
		if !ok {
			g = &group{}
			groups[r.Config] = g
			order = append(order, r.Config)
		}
		g.discard = append(g.discard, r.Result.DiscardRate)
		g.encoder = append(g.encoder, r.Result.EncoderUtilization)
		g.storage = append(g.storage, r.Result.StorageUtilization)
	}

	summaries := make([]Summary, 0, len(order))
	for _, cfg := range order {
		g := groups[cfg]
		s := Summary{Config: cfg, Replications: len(g.discard)}
		s.DiscardRateMean, s.DiscardRateStdDev = stat.MeanStdDev(g.discard, nil)
		s.EncoderUtilMean, s.EncoderUtilStdDev = stat.MeanStdDev(g.encoder, nil)
		s.StorageUtilMean, s.StorageUtilStdDev = stat.MeanStdDev(g.storage, nil)
		if s.Replications < 2 {
			s.DiscardRateStdDev, s.EncoderUtilStdDev, s.StorageUtilStdDev = 0, 0, 0
		}
		summaries = append(summaries, s)
	}
	return summaries
}
