// Package engine wires the pool, the block map, the cache slot and the
// counters together into the allocator proper: the bump-first,
// recycle-on-exhaustion placement policy.
package engine

import (
	"bumppool/internal/blockmap"
	"bumppool/internal/cacheslot"
	"bumppool/internal/pool"
	"bumppool/internal/stats"
)

// Allocator is the core bump-plus-reclaim allocator. It is not safe for
// concurrent use: every operation is expected to run to completion before
// the next begins.
type Allocator struct {
	pool  *pool.Pool
	m     *blockmap.Map
	cache cacheslot.Slot
	st    stats.Counters
}

// New constructs an Allocator over a fresh capacity-byte backing region.
func New(capacity uint64) (*Allocator, error) {
	p, err := pool.New(capacity)
	if err != nil {
		return nil, err
	}
	return &Allocator{pool: p, m: blockmap.New()}, nil
}

// Close releases the backing region.
func (a *Allocator) Close() error {
	return a.pool.Close()
}

// Bytes returns the live view of an allocated block, for the typed
// convenience layer and for callers writing into freshly allocated memory.
func (a *Allocator) Bytes(addr, n uint64) []byte {
	return a.pool.Bytes(addr, n)
}

// boundary is the bump cursor P: forward coalescing and the recycle path's
// tail checks are always evaluated against it, never against B+C.
func (a *Allocator) boundary() uint64 {
	return a.pool.Cursor()
}
