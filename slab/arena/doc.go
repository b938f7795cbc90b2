// Package arena provides a slab variant with true union slot footprint.
//
// # Overview
//
// The parent slab package stores each slot as a two-field struct, paying
// one key of overhead per slot so the free-list link and the value can
// coexist safely. Arena removes that overhead: slots are overlaid on a
// raw byte buffer, and the same bytes are reinterpreted as the element
// type while occupied and as the free-list link while free. The slot
// stride is exactly max(sizeof(T), sizeof(K)) rounded to their common
// alignment, matching what a C union would occupy.
//
// # Payload Constraint
//
// The element type must be pointer-free (no pointers, maps, slices,
// strings, channels, funcs or interfaces, at any nesting depth). The
// backing buffer is untyped memory, so the garbage collector cannot see
// pointers stored into it and would reclaim their referents. New and
// NewMapped verify this with reflection once at construction and panic
// on violation.
//
// # Backing
//
// New backs the arena with the Go heap. NewMapped backs it with an
// anonymous memory mapping that Close returns to the OS immediately,
// which suits large, short-lived arenas that should not linger in the
// heap until the next GC cycle.
//
// # Contract
//
// The access contract is the parent package's unchecked contract, with
// one sharpening: reading a free slot through Get yields reinterpreted
// free-list bytes, not merely a stale value. Same single-owner threading
// model, same LIFO reuse, same growth policy (doubling, floor 4, indices
// preserved; mapped backings round capacity up to page granularity).
package arena
