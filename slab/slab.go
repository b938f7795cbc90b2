package slab

// initialCapacity is the slot count of the first allocation. Subsequent
// growth events double the current capacity.
const initialCapacity = 4

// slot is storage for one element. It carries no discriminant: whether
// val or next is meaningful for a given index is decided entirely by the
// container's free-list reachability and high-water mark, never by the
// slot itself. A slot beyond the high-water mark holds zero values and
// belongs to neither alternative until its first Insert.
type slot[T any, K Key] struct {
	val  T
	next K
}

// Slab is a growable store of T addressed by keys of type K.
//
// The zero value is an empty slab ready for use. See the package
// documentation for the unchecked access contract.
type Slab[T any, K Key] struct {
	slots []slot[T, K]

	// next is the key the next Insert will return: the head of the
	// free list, or the high-water mark when the list is empty.
	next K

	// high is the high-water mark, the smallest never-used slot index.
	// The free list is empty exactly when next == high; comparing next
	// against len instead misfires once the occupied count happens to
	// equal a free slot's index.
	high K

	// len counts occupied slots. len <= high <= cap at all times.
	len K
}

// New returns an empty slab. No allocation occurs until the first Insert.
func New[T any, K Key]() *Slab[T, K] {
	return &Slab[T, K]{}
}

// grow doubles the backing store (first allocation is initialCapacity
// slots). Existing slot indices are preserved, so issued keys stay valid.
// The appended slots sit beyond the high-water mark and are handed out
// through Insert's virgin-slot path, not the free list.
func (s *Slab[T, K]) grow() {
	extendBy := len(s.slots)
	if extendBy == 0 {
		extendBy = initialCapacity
	}
	s.slots = append(s.slots, make([]slot[T, K], extendBy)...)
}

// Insert stores val and returns the key of the slot it occupies.
//
// The slot is the head of the free list when one exists, otherwise the
// slot at the high-water mark, growing the backing store first if the
// mark has reached capacity. Amortized O(1).
//
// Caller obligation: the occupied-slot count must stay below the maximum
// value of K. With a narrow K the counters otherwise wrap and freshly
// issued keys alias occupied slots. Checked.Insert enforces this bound
// and returns ErrFull instead.
func (s *Slab[T, K]) Insert(val T) K {
	key := s.next

	if int(key) == len(s.slots) {
		s.grow()
	}

	sl := &s.slots[key]

	if s.next == s.high {
		// Free list empty; consume a virgin slot and advance the mark.
		s.high++
		s.next = s.high
	} else {
		s.next = sl.next
	}
	s.len++

	sl.val = val

	return key
}

// Remove frees the slot named by key and returns the value it held.
//
// The slot is pushed onto the head of the free list, so the next Insert
// reuses it (LIFO reuse keeps churn cache-friendly). O(1).
//
// Caller obligation: key was returned by Insert on this slab and has not
// been removed since. A double-remove corrupts the free list; a foreign
// or stale key destroys an unrelated element.
func (s *Slab[T, K]) Remove(key K) T {
	sl := &s.slots[key]

	val := sl.val
	var zero T
	sl.val = zero // release the element's referents to the GC
	sl.next = s.next

	s.next = key
	s.len--

	return val
}

// Get returns a pointer to the value stored under key. O(1), no bounds
// or occupancy check. Mutating through the pointer is the supported way
// to update an element in place.
//
// The pointer is invalidated by the next growth event (any Insert may
// grow); the key itself stays valid for as long as the element is
// occupied.
//
// Caller obligation: key currently names an occupied slot of this slab.
// A free key yields a slot holding free-list linkage and stale data.
func (s *Slab[T, K]) Get(key K) *T {
	return &s.slots[key].val
}

// Len returns the number of occupied slots.
func (s *Slab[T, K]) Len() K {
	return s.len
}

// Next returns the key the next Insert will return. Exposed for
// diagnostics and tests.
func (s *Slab[T, K]) Next() K {
	return s.next
}

// Cap returns the current slot capacity of the backing store.
func (s *Slab[T, K]) Cap() int {
	return len(s.slots)
}
