//go:build unix

package mmap

import (
	"golang.org/x/sys/unix"
)

// MapAnon acquires a fresh, file-less backing region of the given size.
// The region is zero-filled and not shared with any other process.
func MapAnon(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
}

// Unmap releases a region obtained from MapAnon.
func Unmap(data []byte) error {
	return unix.Munmap(data)
}
