// Package pool owns the single fixed-size byte region the allocator bumps
// blocks out of. It knows nothing about free lists or metadata; it only
// ever hands out sequential ranges from its cursor.
package pool

import (
	"bumppool/internal/errs"
	"bumppool/internal/mmap"
)

// Pool is a contiguous byte region of fixed capacity with a monotonically
// advancing bump cursor. Addresses are offsets into data, never pointers.
type Pool struct {
	data     []byte
	capacity uint64
	cursor   uint64
}

// New acquires a capacity-byte backing region via an anonymous memory
// mapping and returns a Pool with its cursor at zero.
func New(capacity uint64) (*Pool, error) {
	if capacity == 0 {
		return nil, errs.ErrBadArgument
	}
	data, err := mmap.MapAnon(int(capacity))
	if err != nil {
		return nil, errs.ErrBackingRegion
	}
	return &Pool{data: data, capacity: capacity}, nil
}

// Capacity returns C.
func (p *Pool) Capacity() uint64 { return p.capacity }

// Used returns U = P - B.
func (p *Pool) Used() uint64 { return p.cursor }

// Cursor returns the current bump cursor P (an offset, since B is always 0).
func (p *Pool) Cursor() uint64 { return p.cursor }

// Bump carves n bytes at the cursor and advances it, or reports failure if
// the tail of the pool cannot satisfy the request.
func (p *Pool) Bump(n uint64) (off uint64, ok bool) {
	if n == 0 || p.capacity-p.cursor < n {
		return 0, false
	}
	off = p.cursor
	p.cursor += n
	return off, true
}

// Bytes returns the live view of [off, off+n) for the typed convenience
// layer and for callers that need to read or write allocated memory.
func (p *Pool) Bytes(off, n uint64) []byte {
	return p.data[off : off+n]
}

// Close releases the backing region. Idempotent.
func (p *Pool) Close() error {
	if p.data == nil {
		return nil
	}
	err := mmap.Unmap(p.data)
	p.data = nil
	return err
}
