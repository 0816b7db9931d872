package sweep

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/fieldsim/fieldsim/sim"
)

// Options controls how a sweep executes.
type Options struct {
	Seed         int64 // base seed; replication r of every config uses Seed+r
	Workers      int   // concurrent runs; <= 0 uses GOMAXPROCS
	Replications int   // runs per config; <= 0 means 1

	// OnResult, if set, is called once per finished run in run order,
	// from a single goroutine at a time.
	OnResult func(done, total int, run Run)
}

// Run is one completed simulation within a sweep.
type Run struct {
	Index       int           `json:"index"`
	Replication int           `json:"replication"`
	Seed        int64         `json:"seed"`
	Config      sim.RunConfig `json:"config"`
	Result      sim.Result    `json:"result"`
}

// job is one pending simulation.
type job struct {
	index       int
	replication int
	seed        int64
	cfg         sim.RunConfig
}

func (o Options) jobs(g Grid) []job {
	reps := max(o.Replications, 1)
	configs := g.Expand()
	jobs := make([]job, 0, len(configs)*reps)
	for _, cfg := range configs {
		for r := 0; r < reps; r++ {
			jobs = append(jobs, job{
				index:       len(jobs),
				replication: r,
				seed:        o.Seed + int64(r),
				cfg:         cfg,
			})
		}
	}
	return jobs
}

// Execute runs every configuration of g and returns the runs in run order.
// Each run owns its Simulator, so runs execute concurrently on up to
// opts.Workers goroutines. Replication r of every configuration uses the
// same seed, so configurations are compared on common random numbers.
func Execute(ctx context.Context, g Grid, opts Options) ([]Run, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	jobs := opts.jobs(g)
	runs := make([]Run, len(jobs))
	emitter := newOrderedEmitter(len(jobs), opts.OnResult)

	logrus.Infof("Starting sweep: %d runs on %d workers, seed=%d", len(jobs), workers, opts.Seed)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for _, j := range jobs {
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			s, err := sim.NewSimulator(j.cfg, sim.NewExponentialSource(j.seed))
			if err != nil {
				return fmt.Errorf("run %d (%s): %w", j.index, j.cfg, err)
			}
			run := Run{
				Index:       j.index,
				Replication: j.replication,
				Seed:        j.seed,
				Config:      j.cfg,
				Result:      s.Run(),
			}
			runs[j.index] = run
			emitter.done(run)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logrus.Infof("Sweep complete: %d runs", len(runs))
	return runs, nil
}

// orderedEmitter forwards finished runs to a callback in run order.
type orderedEmitter struct {
	mu      sync.Mutex
	fn      func(done, total int, run Run)
	pending map[int]Run
	next    int
	total   int
}

func newOrderedEmitter(total int, fn func(done, total int, run Run)) *orderedEmitter {
	return &orderedEmitter{fn: fn, pending: make(map[int]Run), total: total}
}

func (e *orderedEmitter) done(run Run) {
	if e.fn == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pending[run.Index] = run
	for {
		r, ok := e.pending[e.next]
		if !ok {
			return
		}
		delete(e.pending, e.next)
		e.next++
		e.fn(e.next, e.total, r)
	}
}
