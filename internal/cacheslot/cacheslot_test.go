package cacheslot

import "testing"

func TestEmpty(t *testing.T) {
	var s Slot
	if !s.Empty() {
		t.Error("zero-value Slot should be empty")
	}
}

func TestConsiderKeepsLargest(t *testing.T) {
	var s Slot
	s.Consider(10, 50)
	s.Consider(20, 30)
	if s.Addr != 10 || s.Size != 50 {
		t.Errorf("Slot = %+v, want smaller candidate ignored", s)
	}
	s.Consider(30, 100)
	if s.Addr != 30 || s.Size != 100 {
		t.Errorf("Slot = %+v, want larger candidate adopted", s)
	}
}

func TestSetAndClear(t *testing.T) {
	var s Slot
	s.Set(5, 5)
	if s.Empty() {
		t.Error("Slot should not be empty after Set")
	}
	s.Clear()
	if !s.Empty() {
		t.Error("Slot should be empty after Clear")
	}
}
