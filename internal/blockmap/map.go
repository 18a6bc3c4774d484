// Package blockmap is the address-ordered index from a block's start
// offset to its metadata. It is the core recycling structure: the
// allocator's recycle path scans it in ascending order, and deallocation
// drives forward coalescing and splitting through it.
package blockmap

import "sort"

// Meta describes one block: its size and whether it is free.
type Meta struct {
	Size uint64
	Free bool
}

// Map is the ordered start-address -> Meta index.
type Map struct {
	keys []uint64
	meta map[uint64]Meta
}

// New returns an empty Map.
func New() *Map {
	return &Map{meta: make(map[uint64]Meta)}
}

// Len returns the number of tracked blocks.
func (m *Map) Len() int { return len(m.keys) }

// Get returns the metadata at addr, if tracked.
func (m *Map) Get(addr uint64) (Meta, bool) {
	v, ok := m.meta[addr]
	return v, ok
}

// Set overwrites the metadata of an already-tracked block in place.
func (m *Map) Set(addr uint64, meta Meta) {
	m.meta[addr] = meta
}

func (m *Map) indexOf(addr uint64) int {
	return sort.Search(len(m.keys), func(i int) bool { return m.keys[i] >= addr })
}

// Insert adds a new block start-address into the ordered index.
func (m *Map) Insert(addr uint64, meta Meta) {
	if _, exists := m.meta[addr]; exists {
		m.meta[addr] = meta
		return
	}
	i := m.indexOf(addr)
	m.keys = append(m.keys, 0)
	copy(m.keys[i+1:], m.keys[i:])
	m.keys[i] = addr
	m.meta[addr] = meta
}

// Delete removes a block's entry entirely (used when it is coalesced into
// a preceding free block).
func (m *Map) Delete(addr uint64) {
	if _, exists := m.meta[addr]; !exists {
		return
	}
	i := m.indexOf(addr)
	m.keys = append(m.keys[:i], m.keys[i+1:]...)
	delete(m.meta, addr)
}

// Ascending walks entries in increasing address order, stopping early if
// fn returns false. Callers that mutate the map from within fn (e.g. a
// successful recycle) must return false immediately afterward: the
// iteration is over a snapshot of the key order valid only until the
// first insert/delete.
func (m *Map) Ascending(fn func(addr uint64, meta Meta) bool) {
	for _, k := range m.keys {
		if !fn(k, m.meta[k]) {
			return
		}
	}
}

// FirstFree returns the lowest-address free block, if any.
func (m *Map) FirstFree() (addr uint64, meta Meta, ok bool) {
	for _, k := range m.keys {
		mm := m.meta[k]
		if mm.Free {
			return k, mm, true
		}
	}
	return 0, Meta{}, false
}

// SumFree returns the total size of every free block currently tracked.
func (m *Map) SumFree() uint64 {
	var total uint64
	for _, mm := range m.meta {
		if mm.Free {
			total += mm.Size
		}
	}
	return total
}
