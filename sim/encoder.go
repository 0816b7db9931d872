package sim

import (
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/fieldsim/fieldsim/sim/trace"
)

// DiscardReason explains why a field left the pipeline unprocessed.
type DiscardReason string

const (
	DiscardOverflow       DiscardReason = trace.ReasonOverflow
	DiscardPairedOverflow DiscardReason = trace.ReasonPairedOverflow
	DiscardOrphan         DiscardReason = trace.ReasonOrphan
)

// Discard is a field removed by the encoder discard policy.
type Discard struct {
	Field  *Field
	Reason DiscardReason
}

// EncoderStage is the encoding resource and its bounded input buffer.
type EncoderStage struct {
	Buffer    *FieldBuffer
	State     StageState
	Capacity  float64 // fobs per second
	InService *Field

	// LastDiscard is true iff the most recently arrived field was discarded.
	LastDiscard bool
}

// NewEncoderStage creates an idle encoder with an empty buffer.
func NewEncoderStage(bufferCapacity int, capacity float64) *EncoderStage {
	return &EncoderStage{
		Buffer:   NewFieldBuffer(bufferCapacity),
		Capacity: capacity,
	}
}

// Admit applies the discard policy to an arriving field and either buffers it
// or returns it among the discarded fields, in discard order.
//
// Fields leave in TOP/BOTTOM pairs:
//   - buffer full: the arriving field is dropped. If it is a BOTTOM whose TOP
//     was buffered, that TOP (the back of the buffer) is dropped first.
//   - buffer not full, BOTTOM whose TOP was dropped: the BOTTOM is dropped.
//   - otherwise the field is buffered.
//
// A TOP arriving at a full buffer is dropped alone; its BOTTOM follows as an
// orphan on the next arrival.
func (e *EncoderStage) Admit(f *Field) []Discard {
	if e.Buffer.Full() {
		var discards []Discard
		if f.Parity == Bottom && !e.LastDiscard {
			top := e.Buffer.PopBack()
			if top == nil || top.Parity != Top {
				panic(fmt.Sprintf("Admit: expected buffered TOP partner of %s, found %v", f, top))
			}
			discards = append(discards, Discard{Field: top, Reason: DiscardPairedOverflow})
		}
		e.LastDiscard = true
		return append(discards, Discard{Field: f, Reason: DiscardOverflow})
	}

	if f.Parity == Bottom && e.LastDiscard {
		return []Discard{{Field: f, Reason: DiscardOrphan}}
	}

	if err := e.Buffer.Push(f); err != nil {
		panic(fmt.Sprintf("Admit: %v", err))
	}
	e.LastDiscard = false
	return nil
}

// ServiceTime returns how long the encoder takes to encode f.
func (e *EncoderStage) ServiceTime(f *Field) float64 {
	return f.Complexity / e.Capacity
}

// newField creates the next field in arrival order with a fresh complexity draw.
func (sim *Simulator) newField() *Field {
	f := &Field{
		ID:         sim.nextFieldID,
		Parity:     sim.nextParity,
		Complexity: sim.src.Complexity(sim.Config.MeanComplexity),
	}
	sim.nextFieldID++
	sim.nextParity = sim.nextParity.Flip()
	sim.Metrics.CreatedFields++
	return f
}

// arriveEncoder creates a field, applies the discard policy and schedules the
// next arrival.
func (sim *Simulator) arriveEncoder() {
	f := sim.newField()
	discards := sim.Encoder.Admit(f)
	admitted := !slices.ContainsFunc(discards, func(d Discard) bool { return d.Field == f })

	if sim.Trace != nil {
		sim.Trace.RecordArrival(trace.ArrivalRecord{
			Clock:    sim.Clock,
			FieldID:  f.ID,
			Parity:   f.Parity.String(),
			Admitted: admitted,
		})
	}
	for _, d := range discards {
		sim.discard(d)
	}

	sim.Calendar.Schedule(ArriveEncoder, sim.Clock+sim.src.InterArrival(sim.Config.MeanInterArrival))

	if sim.Encoder.State.Status == Idle {
		if sim.Encoder.Buffer.Len() > 0 {
			sim.Calendar.Schedule(EnterEncoder, sim.Clock)
		} else {
			// A paired overflow at the same instant can empty the buffer
			// after an entry was scheduled.
			sim.Calendar.Unschedule(EnterEncoder)
		}
	}
}

func (sim *Simulator) discard(d Discard) {
	sim.Metrics.DiscardedFields++
	logrus.Debugf("%s is discarded at simulation time %g (%s)", d.Field, sim.Clock, d.Reason)
	if sim.Trace != nil {
		sim.Trace.RecordDiscard(trace.DiscardRecord{
			Clock:   sim.Clock,
			FieldID: d.Field.ID,
			Parity:  d.Field.Parity.String(),
			Reason:  string(d.Reason),
		})
	}
}

// enterEncoder moves the front field of the buffer into the encoder.
func (sim *Simulator) enterEncoder() {
	sim.Calendar.Unschedule(EnterEncoder)

	enc := sim.Encoder
	if enc.InService != nil {
		panic(fmt.Sprintf("enterEncoder: encoder already serving %s", enc.InService))
	}
	f := enc.Buffer.PopFront()
	if f == nil {
		panic("enterEncoder: encoder buffer is empty")
	}
	enc.InService = f
	enc.State.Begin(sim.Clock)

	sim.Calendar.Schedule(DepartEncoder, sim.Clock+enc.ServiceTime(f))
}

// departEncoder hands the encoded field to the storage server and either
// starts the next field or idles the encoder.
func (sim *Simulator) departEncoder() {
	sim.Calendar.Unschedule(DepartEncoder)

	enc := sim.Encoder
	f := enc.InService
	if f == nil {
		panic("departEncoder: encoder is not serving a field")
	}
	enc.InService = nil
	sim.Metrics.EncodedFields++

	if enc.Buffer.Len() > 0 {
		sim.Calendar.Schedule(EnterEncoder, sim.Clock)
	} else {
		enc.State.End(sim.Clock)
	}

	sim.transit = append(sim.transit, f)
	sim.Calendar.Schedule(ArriveStorage, sim.Clock)
}
