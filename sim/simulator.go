// sim/simulator.go
package sim

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/fieldsim/fieldsim/sim/trace"
)

// Simulator owns all mutable state of one run: clock, event calendar, both
// stages and the statistics. Simulators share nothing, so independent runs
// may execute on separate goroutines.
type Simulator struct {
	Config   RunConfig
	Clock    float64
	Calendar EventCalendar
	Encoder  *EncoderStage
	Storage  *StorageStage
	Metrics  *Metrics
	// Trace records arrivals, discards and served pairs; nil disables tracing.
	Trace *trace.RunTrace
	// StepCount is the number of events executed so far.
	StepCount int

	src         RandomSource
	nextFieldID int
	nextParity  Parity
	transit     []*Field // encoded fields not yet in the storage buffer
	result      *Result
}

// NewSimulator validates cfg and returns a Simulator ready to Run.
// The first inter-arrival time is drawn here.
func NewSimulator(cfg RunConfig, src RandomSource) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, errors.New("NewSimulator: random source must not be nil")
	}

	s := &Simulator{
		Config:     cfg,
		Clock:      0,
		Encoder:    NewEncoderStage(cfg.BufferCapacity, cfg.EncoderCapacity),
		Storage:    NewStorageStage(cfg.StorageCapacity, cfg.Alpha),
		Metrics:    NewMetrics(),
		src:        src,
		nextParity: Top,
	}
	s.Calendar.Schedule(EndOfSimulation, cfg.Horizon)
	s.Calendar.Schedule(ArriveEncoder, src.InterArrival(cfg.MeanInterArrival))
	return s, nil
}

// EnableTrace attaches a fresh RunTrace when level records anything.
func (sim *Simulator) EnableTrace(level trace.TraceLevel) {
	if level.Enabled() {
		sim.Trace = trace.NewRunTrace(level)
	}
}

// Done reports whether the end-of-simulation event has fired.
func (sim *Simulator) Done() bool {
	return sim.result != nil
}

// Step selects and applies exactly one event, returning its kind.
// ok is false if the run had already ended.
func (sim *Simulator) Step() (kind EventKind, ok bool) {
	if sim.Done() {
		return EndOfSimulation, false
	}
	kind, at, ok := sim.Calendar.Next()
	if !ok {
		panic("Step: event calendar is empty before end of simulation")
	}
	if at < sim.Clock {
		panic(fmt.Sprintf("Step: %s scheduled at %g, before clock %g", kind, at, sim.Clock))
	}
	sim.Clock = at
	logrus.Tracef("[t=%.6f] Executing %s", sim.Clock, kind)
	sim.execute(kind)
	sim.StepCount++
	return kind, true
}

// Run executes events until the end of simulation and returns the result.
// Calling Run on a finished Simulator returns the same result.
func (sim *Simulator) Run() Result {
	logrus.Infof("Starting run: mean inter-arrival=%g, mean complexity=%g, buffer=%d, horizon=%g",
		sim.Config.MeanInterArrival, sim.Config.MeanComplexity, sim.Config.BufferCapacity, sim.Config.Horizon)
	for !sim.Done() {
		sim.Step()
	}
	logrus.Infof("[t=%.6f] Run ended after %d events", sim.Clock, sim.StepCount)
	return *sim.result
}

// Result returns the final metrics and whether the run has ended.
func (sim *Simulator) Result() (Result, bool) {
	if sim.result == nil {
		return Result{}, false
	}
	return *sim.result, true
}

// report closes any open busy interval at the terminal time and freezes the result.
func (sim *Simulator) report() {
	m := sim.Metrics
	m.EncoderBusyTime = sim.Encoder.State.BusyTime(sim.Clock)
	m.StorageBusyTime = sim.Storage.State.BusyTime(sim.Clock)
	m.SimEndedTime = sim.Clock
	r := m.Result(sim.Config)
	sim.result = &r
}
