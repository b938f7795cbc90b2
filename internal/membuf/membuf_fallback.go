//go:build !unix

package membuf

// Buffer is a heap-backed fallback for platforms without anonymous
// mmap support.
type Buffer struct {
	data []byte
}

// Map allocates a buffer of at least size bytes (rounded up to a page
// boundary).
func Map(size int) (*Buffer, error) {
	if size == 0 {
		return &Buffer{}, nil
	}
	return &Buffer{data: make([]byte, pageAlign(size))}, nil
}

// Bytes returns the backing slice. The slice is invalidated by Grow.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Grow ensures the buffer holds at least size bytes, preserving existing
// contents.
func (b *Buffer) Grow(size int) error {
	if size <= len(b.data) {
		return nil
	}
	data := make([]byte, pageAlign(size))
	copy(data, b.data)
	b.data = data
	return nil
}

// Close releases the buffer to the garbage collector.
func (b *Buffer) Close() error {
	b.data = nil
	return nil
}
