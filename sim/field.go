package sim

import "fmt"

// Parity identifies which half of an interlaced frame a field carries.
type Parity int

const (
	Top Parity = iota
	Bottom
)

func (p Parity) String() string {
	switch p {
	case Top:
		return "T"
	case Bottom:
		return "B"
	default:
		return fmt.Sprintf("Parity(%d)", int(p))
	}
}

// Flip returns the parity of the field that follows one of parity p.
func (p Parity) Flip() Parity {
	if p == Top {
		return Bottom
	}
	return Top
}

// Field is a single video field moving through the pipeline.
// A Field is held by exactly one buffer or stage at a time.
type Field struct {
	ID         int     // serial number, assigned at creation
	Parity     Parity  // TOP or BOTTOM, alternating across creations
	Complexity float64 // encoding work in fobs
}

func (f *Field) String() string {
	return fmt.Sprintf("Field-%d(%s)", f.ID, f.Parity)
}
