package sim

// eventHandlers maps each calendar slot to the handler that applies it.
// EndOfSimulation is handled by the loop itself.
var eventHandlers = [numEventKinds]func(*Simulator){
	ArriveEncoder: (*Simulator).arriveEncoder,
	EnterEncoder:  (*Simulator).enterEncoder,
	DepartEncoder: (*Simulator).departEncoder,
	ArriveStorage: (*Simulator).arriveStorage,
	EnterStorage:  (*Simulator).enterStorage,
	DepartStorage: (*Simulator).departStorage,
}

// execute applies a single event at the current clock.
func (sim *Simulator) execute(kind EventKind) {
	if kind == EndOfSimulation {
		sim.report()
		return
	}
	eventHandlers[kind](sim)
}
