//go:build windows

package mmap

// MapAnon has no anonymous-mmap syscall wired on windows in this tree
// (x/sys/unix doesn't reach windows). The pool has no shared-memory
// requirement of its own, so a plain heap slice satisfies the fixed,
// contiguous byte region contract just as well here.
func MapAnon(size int) ([]byte, error) {
	return make([]byte, size), nil
}

func Unmap(data []byte) error {
	return nil
}
