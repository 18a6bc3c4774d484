// Package cacheslot is the single-entry "largest known free block" hint
// that lets the recycle path skip a full memory-map scan on a hit. It is
// never authoritative: every read through it is re-validated against the
// memory map before being trusted.
package cacheslot

// Slot holds at most one candidate free block. A zero Size means empty.
type Slot struct {
	Addr uint64
	Size uint64
}

// Empty reports whether the slot currently holds no candidate.
func (s *Slot) Empty() bool { return s.Size == 0 }

// Consider updates the slot if size exceeds whatever it currently holds,
// as done on every deallocation for the (possibly just-merged) freed
// block.
func (s *Slot) Consider(addr, size uint64) {
	if size > s.Size {
		s.Addr, s.Size = addr, size
	}
}

// Set overwrites the slot unconditionally, used to refresh it to the
// first free block in address order after a cache hit.
func (s *Slot) Set(addr, size uint64) {
	s.Addr, s.Size = addr, size
}

// Clear empties the slot, used when no free block remains to refresh to.
func (s *Slot) Clear() {
	s.Addr, s.Size = 0, 0
}
