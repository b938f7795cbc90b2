package slab

// Width-fixing aliases over the generic container. These carry no
// behavior of their own; they only pin K to a concrete handle width.

// Slab8 addresses up to 255 occupied slots with 1-byte keys.
type Slab8[T any] = Slab[T, uint8]

// Slab16 addresses up to 65535 occupied slots with 2-byte keys.
type Slab16[T any] = Slab[T, uint16]

// Slab32 addresses up to 4294967295 occupied slots with 4-byte keys.
type Slab32[T any] = Slab[T, uint32]

// SlabNative addresses the platform's full range with word-sized keys.
type SlabNative[T any] = Slab[T, uintptr]

// New8 returns an empty Slab8.
func New8[T any]() *Slab8[T] { return New[T, uint8]() }

// New16 returns an empty Slab16.
func New16[T any]() *Slab16[T] { return New[T, uint16]() }

// New32 returns an empty Slab32.
func New32[T any]() *Slab32[T] { return New[T, uint32]() }

// NewNative returns an empty SlabNative.
func NewNative[T any]() *SlabNative[T] { return New[T, uintptr]() }
