// Package stats tracks the allocator's monotonic counters and renders the
// human-readable dump the engine's DumpStats exposes.
package stats

import "fmt"

// Counters are the allocator's monotonic, non-decreasing counts.
type Counters struct {
	AllocsFromBump  uint64
	AllocsFromMap   uint64
	AllocsFromCache uint64
	Frees           uint64
}

// TotalAllocs returns the sum of every allocation path's counter.
func (c Counters) TotalAllocs() uint64 {
	return c.AllocsFromBump + c.AllocsFromMap + c.AllocsFromCache
}

// Snapshot is the full set of derived values dumpStats emits.
type Snapshot struct {
	Counters
	Capacity       uint64
	Used           uint64
	FreeInBumpTail uint64
	FreeInMap      uint64
}

// String renders the snapshot as a fixed-width, boxed plain-text block.
func (s Snapshot) String() string {
	return fmt.Sprintf(
		"+-------------------------------------------------------+\n"+
			"|                 Allocator Statistics                   |\n"+
			"+-------------------------------------------------------+\n"+
			"| Capacity                         : %-12d bytes |\n"+
			"| Used (bump)                      : %-12d bytes |\n"+
			"| Free in bump tail                : %-12d bytes |\n"+
			"| Free in map                       : %-12d bytes |\n"+
			"| Total Allocs                     : %-12d       |\n"+
			"|  a) From bump                    : %-12d       |\n"+
			"|  b) From map scan                : %-12d       |\n"+
			"|  c) From cache slot              : %-12d       |\n"+
			"| Total Frees                      : %-12d       |\n"+
			"+-------------------------------------------------------+\n",
		s.Capacity, s.Used, s.FreeInBumpTail, s.FreeInMap,
		s.TotalAllocs(), s.AllocsFromBump, s.AllocsFromMap, s.AllocsFromCache,
		s.Frees,
	)
}
