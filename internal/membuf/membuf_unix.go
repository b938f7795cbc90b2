//go:build unix

package membuf

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Buffer is an anonymous memory mapping.
type Buffer struct {
	data []byte
}

// Map allocates a buffer of at least size bytes (rounded up to a page
// boundary). A zero size allocates nothing; the first Grow maps.
func Map(size int) (*Buffer, error) {
	if size == 0 {
		return &Buffer{}, nil
	}
	data, err := unix.Mmap(-1, 0, pageAlign(size),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, fmt.Errorf("membuf: mmap failed: %w", err)
	}
	return &Buffer{data: data}, nil
}

// Bytes returns the mapped region. The slice is invalidated by Grow and
// Close.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Grow ensures the buffer holds at least size bytes, preserving existing
// contents. No-op if the buffer is already large enough.
func (b *Buffer) Grow(size int) error {
	if size <= len(b.data) {
		return nil
	}
	data, err := unix.Mmap(-1, 0, pageAlign(size),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return fmt.Errorf("membuf: mmap failed: %w", err)
	}
	copy(data, b.data)
	old := b.data
	b.data = data
	if old == nil {
		return nil
	}
	return unix.Munmap(old)
}

// Close unmaps the buffer. Safe to call twice.
func (b *Buffer) Close() error {
	if b.data == nil {
		return nil
	}
	data := b.data
	b.data = nil
	return unix.Munmap(data)
}
