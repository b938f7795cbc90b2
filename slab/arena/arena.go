package arena

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/slabforge/slabkit/internal/membuf"
	"github.com/slabforge/slabkit/slab"
)

// initialSlots is the slot count of the first growth event.
const initialSlots = 4

// Arena is a slab of pointer-free T over raw memory, addressed by keys
// of type K. See the package documentation for the payload constraint
// and access contract.
//
// Unlike slab.Slab, the zero value is not usable: construct with New or
// NewMapped, which compute the slot stride and vet the payload type.
type Arena[T any, K slab.Key] struct {
	data   []byte
	mapped *membuf.Buffer // non-nil when backed by an anonymous mapping
	stride uintptr
	next   K
	high   K // high-water mark; free list is empty exactly when next == high
	len    K
}

// New returns an empty heap-backed arena. No allocation occurs until the
// first Insert. Panics if T contains pointers.
func New[T any, K slab.Key]() *Arena[T, K] {
	checkPointerFree[T]()
	return &Arena[T, K]{stride: strideOf[T, K]()}
}

// NewMapped returns an empty arena backed by an anonymous memory
// mapping. The caller must Close it to return the memory to the OS.
// Panics if T contains pointers.
func NewMapped[T any, K slab.Key]() (*Arena[T, K], error) {
	checkPointerFree[T]()
	buf, err := membuf.Map(0)
	if err != nil {
		return nil, err
	}
	return &Arena[T, K]{mapped: buf, stride: strideOf[T, K]()}, nil
}

// Close releases a mapped backing. No-op for heap-backed arenas. The
// arena must not be used afterwards.
func (a *Arena[T, K]) Close() error {
	a.data = nil
	if a.mapped == nil {
		return nil
	}
	return a.mapped.Close()
}

// Insert stores val and returns the key of the slot it occupies. Same
// protocol and caller obligations as slab.Slab.Insert. Panics if a
// mapped backing cannot grow.
func (a *Arena[T, K]) Insert(val T) K {
	key := a.next

	if int(key) == a.Cap() {
		a.grow()
	}

	p := a.slot(key)

	if a.next == a.high {
		a.high++
		a.next = a.high
	} else {
		a.next = *(*K)(p)
	}
	a.len++

	*(*T)(p) = val

	return key
}

// Remove frees the slot named by key and returns the value it held.
// Same caller obligations as slab.Slab.Remove. The slot bytes are
// overwritten with free-list linkage, not zeroed; T is pointer-free, so
// nothing is pinned.
func (a *Arena[T, K]) Remove(key K) T {
	p := a.slot(key)

	val := *(*T)(p)
	*(*K)(p) = a.next

	a.next = key
	a.len--

	return val
}

// Get returns a pointer to the value stored under key. The pointer is
// invalidated by the next growth event. Caller obligation: key currently
// names an occupied slot; a free key yields reinterpreted free-list
// bytes.
func (a *Arena[T, K]) Get(key K) *T {
	return (*T)(a.slot(key))
}

// Len returns the number of occupied slots.
func (a *Arena[T, K]) Len() K {
	return a.len
}

// Next returns the key the next Insert will return.
func (a *Arena[T, K]) Next() K {
	return a.next
}

// Cap returns the current slot capacity.
func (a *Arena[T, K]) Cap() int {
	return len(a.data) / int(a.stride)
}

func (a *Arena[T, K]) slot(key K) unsafe.Pointer {
	return unsafe.Pointer(&a.data[uintptr(key)*a.stride])
}

// grow doubles the slot capacity (floor initialSlots), preserving slot
// indices. Mapped backings round up to page granularity, so capacity may
// exceed the doubled target; the surplus is consumed through the
// virgin-slot path like any other never-used slot.
func (a *Arena[T, K]) grow() {
	newSlots := a.Cap() * 2
	if newSlots == 0 {
		newSlots = initialSlots
	}
	size := newSlots * int(a.stride)

	if a.mapped != nil {
		if err := a.mapped.Grow(size); err != nil {
			panic(fmt.Sprintf("arena: grow to %d bytes failed: %v", size, err))
		}
		a.data = a.mapped.Bytes()
		return
	}

	data := make([]byte, size)
	copy(data, a.data)
	a.data = data
}

// strideOf returns the union footprint of one slot: the larger of T and
// K, rounded up to their common alignment.
func strideOf[T any, K slab.Key]() uintptr {
	var t T
	var k K
	size := unsafe.Sizeof(t)
	if unsafe.Sizeof(k) > size {
		size = unsafe.Sizeof(k)
	}
	align := unsafe.Alignof(t)
	if unsafe.Alignof(k) > align {
		align = unsafe.Alignof(k)
	}
	return (size + align - 1) &^ (align - 1)
}

// checkPointerFree panics if T contains pointers at any nesting depth.
// Pointer-ful payloads would be invisible to the GC inside the raw
// backing buffer.
func checkPointerFree[T any]() {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if containsPointers(t) {
		panic(fmt.Sprintf("arena: element type %v contains pointers; use the slab package instead", t))
	}
}

func containsPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return containsPointers(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if containsPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		// Ptr, Map, Slice, String, Chan, Func, Interface, UnsafePointer.
		return true
	}
}
