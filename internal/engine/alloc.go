package engine

import "bumppool/internal/blockmap"

// Allocate tries the bump path first, and only on exhaustion falls back
// to the recycle path.
func (a *Allocator) Allocate(n uint64) (addr uint64, ok bool) {
	if n == 0 {
		return 0, false
	}
	if off, bumped := a.pool.Bump(n); bumped {
		a.m.Insert(off, blockmap.Meta{Size: n, Free: false})
		a.st.AllocsFromBump++
		return off, true
	}
	return a.recycle(n)
}

// recycle consults the cache slot first and, on a stale miss, falls
// through to a first-fit scan of the map in ascending address order.
func (a *Allocator) recycle(n uint64) (addr uint64, ok bool) {
	boundary := a.boundary()

	if a.cache.Size >= n {
		candidate := a.cache.Addr
		if a.m.FetchIfAvailable(candidate, n, boundary) {
			a.st.AllocsFromCache++
			a.refreshCache()
			return candidate, true
		}
		// Cache was stale (the block shrank or was taken); fall through.
	}

	var found uint64
	var hit bool
	a.m.Ascending(func(candidate uint64, _ blockmap.Meta) bool {
		if a.m.FetchIfAvailable(candidate, n, boundary) {
			found, hit = candidate, true
			return false
		}
		return true
	})
	if !hit {
		return 0, false
	}
	a.st.AllocsFromMap++
	return found, true
}

// refreshCache re-seats the cache slot on the first free block in address
// order after a cache hit consumes (or shrinks) its previous occupant.
func (a *Allocator) refreshCache() {
	if addr, meta, ok := a.m.FirstFree(); ok {
		a.cache.Set(addr, meta.Size)
	} else {
		a.cache.Clear()
	}
}
