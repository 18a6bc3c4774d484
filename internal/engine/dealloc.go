package engine

import "bumppool/internal/errs"

// Deallocate marks the block free, coalesces it forward, and offers the
// (possibly merged) block to the cache slot. Deallocating an address that
// is already free is a no-op rather than an error.
func (a *Allocator) Deallocate(addr uint64) error {
	meta, ok := a.m.Get(addr)
	if !ok {
		return errs.ErrInvalidAddress
	}
	if meta.Free {
		return nil
	}
	meta.Free = true
	a.m.Set(addr, meta)

	merged := a.m.CoalesceAt(addr, a.boundary())
	a.cache.Consider(addr, merged.Size)
	a.st.Frees++
	return nil
}
