package sim

import (
	"errors"
	"testing"
)

func TestFieldBuffer_PushPopFront_FIFO(t *testing.T) {
	// GIVEN a buffer with fields [0, 1, 2]
	b := NewFieldBuffer(3)
	for i := 0; i < 3; i++ {
		if err := b.Push(&Field{ID: i}); err != nil {
			t.Fatalf("Push(%d): unexpected error %v", i, err)
		}
	}

	// WHEN all fields are popped from the front
	ids := make([]int, 0, 3)
	for b.Len() > 0 {
		ids = append(ids, b.PopFront().ID)
	}

	// THEN they come out in insertion order
	want := []int{0, 1, 2}
	for i, id := range ids {
		if id != want[i] {
			t.Errorf("order[%d]: got %d, want %d", i, id, want[i])
		}
	}
}

func TestFieldBuffer_Push_Full_RefusesField(t *testing.T) {
	// GIVEN a full buffer of capacity 2
	b := NewFieldBuffer(2)
	_ = b.Push(&Field{ID: 0})
	_ = b.Push(&Field{ID: 1})

	// WHEN another field is pushed
	err := b.Push(&Field{ID: 2})

	// THEN the push is refused and the length stays at capacity
	if !errors.Is(err, ErrBufferFull) {
		t.Errorf("Push on full buffer: got %v, want ErrBufferFull", err)
	}
	if b.Len() != 2 {
		t.Errorf("Len after refused push: got %d, want 2", b.Len())
	}
	if !b.Full() {
		t.Error("Full() = false, want true")
	}
}

func TestFieldBuffer_PopBack_ReturnsMostRecent(t *testing.T) {
	// GIVEN a buffer with fields [0, 1]
	b := NewFieldBuffer(4)
	_ = b.Push(&Field{ID: 0})
	_ = b.Push(&Field{ID: 1, Parity: Bottom})

	// WHEN PopBack() is called
	got := b.PopBack()

	// THEN the most recently inserted field is removed
	if got == nil || got.ID != 1 {
		t.Fatalf("PopBack: got %v, want Field-1", got)
	}
	if b.Len() != 1 || b.Peek().ID != 0 {
		t.Errorf("remaining buffer %s, want [Field-0(T)]", b)
	}
}

func TestFieldBuffer_Empty_ReturnsNil(t *testing.T) {
	b := NewFieldBuffer(1)
	if b.PopFront() != nil {
		t.Error("PopFront on empty buffer should return nil")
	}
	if b.PopBack() != nil {
		t.Error("PopBack on empty buffer should return nil")
	}
	if b.Peek() != nil {
		t.Error("Peek on empty buffer should return nil")
	}
}

func TestFieldBuffer_Unbounded_NeverFull(t *testing.T) {
	b := NewFieldBuffer(Unbounded)
	for i := 0; i < 10000; i++ {
		if err := b.Push(&Field{ID: i}); err != nil {
			t.Fatalf("Push(%d) on unbounded buffer: %v", i, err)
		}
	}
	if b.Full() {
		t.Error("unbounded buffer reported full")
	}
}

func TestFieldBuffer_String(t *testing.T) {
	b := NewFieldBuffer(3)
	_ = b.Push(&Field{ID: 4, Parity: Top})
	_ = b.Push(&Field{ID: 5, Parity: Bottom})
	if got, want := b.String(), "[Field-4(T) Field-5(B)]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestNewFieldBuffer_ZeroCapacity_Panics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for zero capacity")
		}
	}()
	NewFieldBuffer(0)
}
