package slab

// Key constrains the unsigned integer types usable as slab handles.
//
// The zero value is the first key a fresh slab issues, conversion to int
// is the slot index, and ordinary +1/-1 arithmetic advances the
// high-water mark and the occupancy counter. The width of the chosen
// type fixes how many slots the slab can ever address: a uint8-keyed
// slab tops out at 255 occupied slots, uint16 at 65535, and so on.
//
// The container never increments a key past the point its own
// bookkeeping makes safe, provided the caller honors Insert's range
// obligation. There is no implicit widening between instantiations; a
// Slab8 key is not a Slab16 key.
type Key interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}
