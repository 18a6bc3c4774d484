package engine

import (
	"fmt"
	"strings"

	"bumppool/internal/blockmap"
	"bumppool/internal/stats"
)

// DumpStats renders the allocator's counters and derived totals as a
// plain-text table.
func (a *Allocator) DumpStats() string {
	snap := stats.Snapshot{
		Counters:       a.st,
		Capacity:       a.pool.Capacity(),
		Used:           a.pool.Used(),
		FreeInBumpTail: a.pool.Capacity() - a.pool.Used(),
		FreeInMap:      a.m.SumFree(),
	}
	return snap.String()
}

// DumpMap renders the memory map in ascending address order, one line per
// entry.
func (a *Allocator) DumpMap() string {
	var b strings.Builder
	b.WriteString("Memory map:\n")
	a.m.Ascending(func(addr uint64, meta blockmap.Meta) bool {
		state := "Occupied"
		if meta.Free {
			state = "Free"
		}
		fmt.Fprintf(&b, "0x%08x : %8d bytes  <%s>\n", addr, meta.Size, state)
		return true
	})
	return b.String()
}
