package sim

import "fmt"

// EventKind names one of the seven calendar slots. The numeric value is the
// slot index and also the tie-break priority: lower runs first.
type EventKind int

const (
	EndOfSimulation EventKind = iota // the fixed simulation horizon
	ArriveEncoder                    // next field arrives at the encoder buffer
	EnterEncoder                     // front field enters the encoder
	DepartEncoder                    // field leaves the encoder
	ArriveStorage                    // field arrives at the storage buffer
	EnterStorage                     // front pair enters the storage server
	DepartStorage                    // pair leaves the storage server

	numEventKinds
)

var eventKindNames = [numEventKinds]string{
	EndOfSimulation: "EndOfSimulation",
	ArriveEncoder:   "ArriveEncoder",
	EnterEncoder:    "EnterEncoder",
	DepartEncoder:   "DepartEncoder",
	ArriveStorage:   "ArriveStorage",
	EnterStorage:    "EnterStorage",
	DepartStorage:   "DepartStorage",
}

func (k EventKind) String() string {
	if k < 0 || k >= numEventKinds {
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
	return eventKindNames[k]
}

// EventKinds returns every event kind in slot order.
func EventKinds() []EventKind {
	kinds := make([]EventKind, numEventKinds)
	for i := range kinds {
		kinds[i] = EventKind(i)
	}
	return kinds
}

type calendarSlot struct {
	at        float64
	scheduled bool
}

// EventCalendar holds the pending time of each event kind.
// An unscheduled slot is never selected, so there is no sentinel time.
type EventCalendar struct {
	slots [numEventKinds]calendarSlot
}

// Schedule sets the pending time of kind, replacing any earlier schedule.
func (c *EventCalendar) Schedule(kind EventKind, at float64) {
	c.slots[kind] = calendarSlot{at: at, scheduled: true}
}

// Unschedule clears the pending time of kind.
func (c *EventCalendar) Unschedule(kind EventKind) {
	c.slots[kind] = calendarSlot{}
}

// At returns the pending time of kind and whether it is scheduled.
func (c *EventCalendar) At(kind EventKind) (float64, bool) {
	s := c.slots[kind]
	return s.at, s.scheduled
}

// Next returns the scheduled event with the earliest time.
// Ties go to the lowest slot index: the scan keeps the first minimum and
// only replaces it on a strictly smaller time.
// ok is false when no slot is scheduled.
func (c *EventCalendar) Next() (kind EventKind, at float64, ok bool) {
	for i, s := range c.slots {
		if !s.scheduled {
			continue
		}
		if !ok || s.at < at {
			kind, at, ok = EventKind(i), s.at, true
		}
	}
	return kind, at, ok
}

func (c *EventCalendar) String() string {
	out := "{"
	for _, kind := range EventKinds() {
		if kind > 0 {
			out += " "
		}
		if at, ok := c.At(kind); ok {
			out += fmt.Sprintf("%s=%g", kind, at)
		} else {
			out += fmt.Sprintf("%s=-", kind)
		}
	}
	return out + "}"
}
