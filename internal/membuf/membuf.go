// Package membuf provides a growable, page-granular byte buffer.
//
// On unix platforms the buffer is an anonymous memory mapping released
// eagerly by Close, which keeps large arena backings out of the Go heap.
// Other platforms fall back to plain heap slices behind the same API.
// Growth allocates a fresh region and copies, so callers must re-fetch
// Bytes after Grow.
package membuf

import "os"

// pageAlign rounds n up to the next page boundary.
func pageAlign(n int) int {
	page := os.Getpagesize()
	return (n + page - 1) &^ (page - 1)
}
