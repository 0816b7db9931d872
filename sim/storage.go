package sim

import (
	"fmt"

	"github.com/fieldsim/fieldsim/sim/trace"
)

// StorageStage is the storage server and its unbounded input buffer.
// It always serves two fields at once.
type StorageStage struct {
	Buffer    *FieldBuffer
	State     StageState
	Capacity  float64 // bytes per second
	Alpha     float64 // bytes per fob
	InService []*Field
}

// NewStorageStage creates an idle storage server with an empty buffer.
func NewStorageStage(capacity, alpha float64) *StorageStage {
	return &StorageStage{
		Buffer:   NewFieldBuffer(Unbounded),
		Capacity: capacity,
		Alpha:    alpha,
	}
}

// ServiceTime returns how long the server takes to store a pair.
func (s *StorageStage) ServiceTime(first, second *Field) float64 {
	return s.Alpha * (first.Complexity + second.Complexity) / s.Capacity
}

// arriveStorage buffers the next field handed over by the encoder.
func (sim *Simulator) arriveStorage() {
	if len(sim.transit) == 0 {
		panic("arriveStorage: no field in transit")
	}
	f := sim.transit[0]
	sim.transit[0] = nil
	sim.transit = sim.transit[1:]
	if len(sim.transit) == 0 {
		sim.Calendar.Unschedule(ArriveStorage)
	} else {
		sim.Calendar.Schedule(ArriveStorage, sim.Clock)
	}

	st := sim.Storage
	if err := st.Buffer.Push(f); err != nil {
		panic(fmt.Sprintf("arriveStorage: %v", err))
	}
	if st.Buffer.Len() >= 2 && st.State.Status == Idle {
		sim.Calendar.Schedule(EnterStorage, sim.Clock)
	}
}

// enterStorage moves the front two fields into the storage server.
func (sim *Simulator) enterStorage() {
	sim.Calendar.Unschedule(EnterStorage)

	st := sim.Storage
	if st.InService != nil {
		panic(fmt.Sprintf("enterStorage: storage already serving %v", st.InService))
	}
	if st.Buffer.Len() < 2 {
		panic(fmt.Sprintf("enterStorage: need 2 buffered fields, have %d", st.Buffer.Len()))
	}
	first := st.Buffer.PopFront()
	second := st.Buffer.PopFront()
	st.InService = []*Field{first, second}
	st.State.Begin(sim.Clock)

	if sim.Trace != nil {
		sim.Trace.RecordPair(trace.PairRecord{
			Clock:        sim.Clock,
			FirstID:      first.ID,
			FirstParity:  first.Parity.String(),
			SecondID:     second.ID,
			SecondParity: second.Parity.String(),
		})
	}

	sim.Calendar.Schedule(DepartStorage, sim.Clock+st.ServiceTime(first, second))
}

// departStorage releases the stored pair and either starts the next pair or
// idles the server.
func (sim *Simulator) departStorage() {
	sim.Calendar.Unschedule(DepartStorage)

	st := sim.Storage
	if len(st.InService) != 2 {
		panic(fmt.Sprintf("departStorage: expected a pair in service, have %d fields", len(st.InService)))
	}
	st.InService = nil
	sim.Metrics.StoredFields += 2

	if st.Buffer.Len() >= 2 {
		sim.Calendar.Schedule(EnterStorage, sim.Clock)
	} else {
		st.State.End(sim.Clock)
	}
}
