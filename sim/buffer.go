// Implements the FieldBuffer, which holds fields waiting for a stage.

package sim

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Unbounded is the capacity of a buffer that never refuses a field.
const Unbounded = math.MaxInt

// ErrBufferFull is returned by Push when the buffer is at capacity.
var ErrBufferFull = errors.New("buffer full")

// FieldBuffer is a bounded FIFO of fields waiting to enter a stage.
// Len() never exceeds Cap(): Push refuses a field instead of growing past it.
type FieldBuffer struct {
	capacity int
	queue    []*Field
}

// NewFieldBuffer creates an empty buffer holding at most capacity fields.
func NewFieldBuffer(capacity int) *FieldBuffer {
	if capacity < 1 {
		panic(fmt.Sprintf("NewFieldBuffer: capacity must be >= 1, got %d", capacity))
	}
	return &FieldBuffer{capacity: capacity}
}

// Push appends f to the back of the buffer.
func (b *FieldBuffer) Push(f *Field) error {
	if f == nil {
		panic("Push: field must not be nil")
	}
	if b.Full() {
		return fmt.Errorf("push %s: %w (capacity %d)", f, ErrBufferFull, b.capacity)
	}
	b.queue = append(b.queue, f)
	return nil
}

// PopFront removes and returns the oldest field, or nil if the buffer is empty.
func (b *FieldBuffer) PopFront() *Field {
	if len(b.queue) == 0 {
		return nil
	}
	f := b.queue[0]
	b.queue[0] = nil
	b.queue = b.queue[1:]
	return f
}

// PopBack removes and returns the most recently inserted field,
// or nil if the buffer is empty.
func (b *FieldBuffer) PopBack() *Field {
	n := len(b.queue)
	if n == 0 {
		return nil
	}
	f := b.queue[n-1]
	b.queue[n-1] = nil
	b.queue = b.queue[:n-1]
	return f
}

// Peek returns the field at the front without removing it.
// Returns nil if the buffer is empty.
func (b *FieldBuffer) Peek() *Field {
	if len(b.queue) == 0 {
		return nil
	}
	return b.queue[0]
}

// Len returns the number of buffered fields.
func (b *FieldBuffer) Len() int {
	return len(b.queue)
}

// Cap returns the maximum number of fields the buffer holds.
func (b *FieldBuffer) Cap() int {
	return b.capacity
}

// Full reports whether the next Push would be refused.
func (b *FieldBuffer) Full() bool {
	return len(b.queue) >= b.capacity
}

func (b *FieldBuffer) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, f := range b.queue {
		sb.WriteString(f.String())
		if i < len(b.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
