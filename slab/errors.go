package slab

import "errors"

var (
	// ErrBadKey indicates a key outside the slab's allocated range.
	ErrBadKey = errors.New("slab: key out of range")

	// ErrNotOccupied indicates a key whose slot is currently free.
	ErrNotOccupied = errors.New("slab: slot not occupied")

	// ErrFull indicates the key type's addressable range is exhausted.
	ErrFull = errors.New("slab: key range exhausted")
)
