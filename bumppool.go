// Package bumppool implements a pooled bump-plus-reclaim allocator over a
// single, fixed-size contiguous byte region. Every allocation request is
// served first from a monotonically advancing bump cursor and, once that
// is exhausted, from a best-available free-list path backed by an
// address-ordered memory map and a single-slot "largest free block"
// cache. The allocator is not safe for concurrent use.
package bumppool

import (
	"bumppool/internal/engine"
	"bumppool/internal/errs"
	"bumppool/internal/typed"
)

// Addr is an offset into the pool's backing region. It is never a raw
// pointer: the allocator never dereferences it itself.
type Addr = uint64

// NullAddr is the sentinel returned by Allocate on failure and accepted
// as a no-op by Deallocate. It is chosen far outside any capacity this
// allocator could realistically be constructed with, so it never
// collides with a real offset.
const NullAddr Addr = ^Addr(0)

// Sentinel errors, re-exported from the internal error package for
// errors.Is callers.
var (
	ErrBackingRegion  = errs.ErrBackingRegion
	ErrInvalidAddress = errs.ErrInvalidAddress
	ErrClosed         = errs.ErrClosed
	ErrBadArgument    = errs.ErrBadArgument
)

// Allocator is the pooled bump-plus-reclaim allocator.
type Allocator struct {
	e *engine.Allocator
}

// New constructs an Allocator over a fresh capacity-byte backing region,
// acquired via an anonymous memory mapping. capacity must be positive.
func New(capacity uint64) (*Allocator, error) {
	if capacity == 0 {
		return nil, ErrBadArgument
	}
	e, err := engine.New(capacity)
	if err != nil {
		return nil, err
	}
	return &Allocator{e: e}, nil
}

// Allocate serves n bytes via the bump path first, falling back to the
// cache slot and then a first-fit map scan. Returns (NullAddr, false) for
// a zero-sized request or when the pool has no room to satisfy n.
func (a *Allocator) Allocate(n uint64) (Addr, bool) {
	if a == nil || a.e == nil {
		return NullAddr, false
	}
	off, ok := a.e.Allocate(n)
	if !ok {
		return NullAddr, false
	}
	return off, true
}

// Deallocate marks addr free, coalesces it forward with any immediately
// following free block, and offers it to the cache slot. A no-op on
// NullAddr. Returns ErrInvalidAddress if addr was never returned by
// Allocate (or has already been coalesced away); a double-free on an
// address that is still tracked but already free is idempotent.
func (a *Allocator) Deallocate(addr Addr) error {
	if a == nil || a.e == nil {
		return nil
	}
	if addr == NullAddr {
		return nil
	}
	return a.e.Deallocate(addr)
}

// Bytes returns the live [addr, addr+n) view into the pool, for reading
// or writing an allocated block's contents.
func (a *Allocator) Bytes(addr Addr, n uint64) []byte {
	return a.e.Bytes(addr, n)
}

// DumpStats renders the allocator's counters and derived totals as
// human-readable text.
func (a *Allocator) DumpStats() string {
	return a.e.DumpStats()
}

// DumpMap renders the memory map in ascending address order, one line
// per entry.
func (a *Allocator) DumpMap() string {
	return a.e.DumpMap()
}

// Close releases the pool's backing region. Idempotent.
func (a *Allocator) Close() error {
	if a == nil || a.e == nil {
		return nil
	}
	return a.e.Close()
}

// AllocFixed allocates exactly sizeof(T) bytes and returns a pointer
// aliasing the pool's backing memory directly. T must contain no
// pointers, slices, maps or other GC-traced references.
func AllocFixed[T any](a *Allocator) (*T, Addr, error) {
	return typed.AllocFixed[T](a.e)
}

// FreeFixed deallocates a block previously returned by AllocFixed.
func FreeFixed(a *Allocator, addr Addr) error {
	return typed.FreeFixed(a.e, addr)
}
