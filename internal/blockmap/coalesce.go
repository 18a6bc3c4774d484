package blockmap

// coalesceForward repeatedly merges meta (describing the block starting at
// addr, not necessarily yet tracked) with whatever free block immediately
// follows it, until the boundary is reached or the neighbor is absent or
// occupied. It mutates m by deleting every block it merges away, and
// returns the merged metadata for the caller to store at addr.
//
// This is shared by both deallocation's coalescing (the block at addr is
// already tracked) and splitting's fragment coalescing (the fragment has
// not been inserted yet): both are "merge this size forward" with the
// same termination rule, so there is exactly one implementation of it.
func coalesceForward(m *Map, addr uint64, meta Meta, bumpBoundary uint64) Meta {
	for {
		next := addr + meta.Size
		if next >= bumpBoundary {
			return meta
		}
		nm, ok := m.Get(next)
		if !ok || !nm.Free {
			return meta
		}
		meta.Size += nm.Size
		m.Delete(next)
	}
}

// CoalesceAt runs forward coalescing on the already-tracked block at addr
// (expected to have just been marked free) and stores the merged result
// back under addr. It returns the merged metadata.
func (m *Map) CoalesceAt(addr uint64, bumpBoundary uint64) Meta {
	meta, ok := m.Get(addr)
	if !ok {
		return Meta{}
	}
	meta = coalesceForward(m, addr, meta, bumpBoundary)
	m.Set(addr, meta)
	return meta
}

// FetchIfAvailable implements the split/fetch step of the recycle path: if
// addr names a free block of at least n bytes, it is carved down to
// exactly n bytes and marked occupied, and any leftover tail is coalesced
// forward (it may immediately re-merge with whatever free block used to
// follow the original, larger block) before being inserted as a new free
// fragment. Returns false with no state change if addr cannot satisfy n.
func (m *Map) FetchIfAvailable(addr uint64, n uint64, bumpBoundary uint64) bool {
	meta, ok := m.Get(addr)
	if !ok || !meta.Free || meta.Size < n {
		return false
	}
	orig := meta.Size
	meta.Size = n
	meta.Free = false
	m.Set(addr, meta)
	if orig > n {
		fragAddr := addr + n
		frag := Meta{Size: orig - n, Free: true}
		frag = coalesceForward(m, fragAddr, frag, bumpBoundary)
		m.Insert(fragAddr, frag)
	}
	return true
}
