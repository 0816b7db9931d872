package sim

// StageStatus is the busy/idle state of a processing stage.
type StageStatus int

const (
	Idle StageStatus = iota
	Busy
)

func (s StageStatus) String() string {
	if s == Busy {
		return "BUSY"
	}
	return "IDLE"
}

// StageState tracks how long a stage has been busy.
// Back-to-back services form a single busy interval: the start marker is
// set on the first service and cleared only when the stage goes idle.
type StageState struct {
	Status   StageStatus
	busyTime float64 // closed busy intervals
	start    float64 // start of the open busy interval, valid iff started
	started  bool
}

// Begin marks the stage busy at now, opening a busy interval if none is open.
func (s *StageState) Begin(now float64) {
	s.Status = Busy
	if !s.started {
		s.start = now
		s.started = true
	}
}

// End marks the stage idle at now and credits the open busy interval.
func (s *StageState) End(now float64) {
	s.Status = Idle
	if s.started {
		s.busyTime += now - s.start
		s.started = false
	}
}

// BusyTime returns the total busy time up to now, including any open interval.
func (s *StageState) BusyTime(now float64) float64 {
	if s.started {
		return s.busyTime + now - s.start
	}
	return s.busyTime
}
