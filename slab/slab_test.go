package slab

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Test_FirstInsertReturnsZeroKey verifies a fresh slab issues the key
// type's zero value first, with no allocation before that insert.
func Test_FirstInsertReturnsZeroKey(t *testing.T) {
	s := New32[string]()
	require.Equal(t, 0, s.Cap(), "no allocation before first insert")
	require.Equal(t, uint32(0), s.Next())

	k := s.Insert("first")
	require.Equal(t, uint32(0), k)
	require.Equal(t, "first", *s.Get(k))
}

// Test_MonotonicHighWaterMark verifies that with no removes the n-th
// insert returns key n-1 and Next always announces the upcoming key.
func Test_MonotonicHighWaterMark(t *testing.T) {
	s := New32[int]()
	for i := range 100 {
		require.Equal(t, uint32(i), s.Next())
		k := s.Insert(i * 10)
		require.Equal(t, uint32(i), k)
	}
	require.Equal(t, uint32(100), s.Len())
}

// Test_RoundTrip verifies values read back exactly as written, including
// updates made through the Get pointer.
func Test_RoundTrip(t *testing.T) {
	s := New32[string]()
	keys := make([]uint32, 0, 50)
	for i := range 50 {
		keys = append(keys, s.Insert(string(rune('A'+i))))
	}
	for i, k := range keys {
		require.Equal(t, string(rune('A'+i)), *s.Get(k))
	}

	*s.Get(keys[7]) = "updated"
	require.Equal(t, "updated", *s.Get(keys[7]))
}

// Test_LIFOFreeListReuse verifies the most recently freed slot is the
// first one reused.
func Test_LIFOFreeListReuse(t *testing.T) {
	s := New32[int]()
	ka := s.Insert(1)
	kb := s.Insert(2)
	s.Insert(3)

	require.Equal(t, 2, s.Remove(kb))
	require.Equal(t, 1, s.Remove(ka))

	// A was freed last, so it comes back first, then B.
	require.Equal(t, ka, s.Insert(4))
	require.Equal(t, kb, s.Insert(5))
}

// Test_FreeListSurvivesVirginInserts is a regression check for the
// state where the occupied count happens to equal the free-list head's
// index (occupied {1,3}, free {0,2}): inserts must keep draining the
// free list rather than consuming virgin slots and clobbering slot 3.
func Test_FreeListSurvivesVirginInserts(t *testing.T) {
	s := New32[int]()
	a := s.Insert(10)
	s.Insert(11)
	c := s.Insert(12)
	d := s.Insert(13)

	s.Remove(a)
	s.Remove(c)
	require.Equal(t, c, s.Insert(14), "freed slot 2 reused first")
	require.Equal(t, a, s.Insert(15), "freed slot 0 reused next")
	require.NotEqual(t, d, s.Next(), "slot 3 stays occupied")
	require.Equal(t, 13, *s.Get(d))
}

// Test_LengthAccounting verifies Len == inserts - removes across a mixed
// sequence.
func Test_LengthAccounting(t *testing.T) {
	s := New32[int]()
	var keys []uint32
	for i := range 20 {
		keys = append(keys, s.Insert(i))
	}
	require.Equal(t, uint32(20), s.Len())

	for _, k := range keys[:8] {
		s.Remove(k)
	}
	require.Equal(t, uint32(12), s.Len())

	for i := range 5 {
		s.Insert(100 + i)
	}
	require.Equal(t, uint32(17), s.Len())
}

// Test_RemoveDoesNotDisturbOthers verifies removing one key leaves every
// other occupied slot's value intact.
func Test_RemoveDoesNotDisturbOthers(t *testing.T) {
	s := New32[int]()
	keys := make([]uint32, 64)
	for i := range keys {
		keys[i] = s.Insert(i * 7)
	}

	require.Equal(t, 21, s.Remove(keys[3]))
	require.Equal(t, 217, s.Remove(keys[31]))

	for i, k := range keys {
		if i == 3 || i == 31 {
			continue
		}
		require.Equal(t, i*7, *s.Get(k), "key %d disturbed", k)
	}
}

// Test_GrowthPreservesKeys verifies keys issued before growth events
// still resolve to their values afterwards, and that capacity doubles
// from the fixed floor.
func Test_GrowthPreservesKeys(t *testing.T) {
	s := New32[int]()

	s.Insert(0)
	require.Equal(t, 4, s.Cap(), "first allocation is the fixed floor")

	for i := 1; i < 5; i++ {
		s.Insert(i)
	}
	require.Equal(t, 8, s.Cap(), "second allocation doubles")

	for i := 5; i < 1000; i++ {
		s.Insert(i)
	}
	for k := range uint32(1000) {
		require.Equal(t, int(k), *s.Get(k))
	}
}

// Test_RemoveReleasesValue verifies Remove clears the vacated slot so
// the garbage collector can reclaim the removed element's referents.
func Test_RemoveReleasesValue(t *testing.T) {
	s := New32[*int]()
	v := new(int)
	k := s.Insert(v)

	got := s.Remove(k)
	require.Same(t, v, got)
	require.Nil(t, s.slots[k].val, "vacated slot must not pin the element")
}

// Test_ZeroValueReady verifies the zero value works without a
// constructor call.
func Test_ZeroValueReady(t *testing.T) {
	var s Slab[int, uint16]
	k := s.Insert(42)
	require.Equal(t, uint16(0), k)
	require.Equal(t, 42, *s.Get(k))
	require.Equal(t, uint16(1), s.Len())
}

// Test_ReferenceScenario walks the canonical insert/remove/reuse
// sequence end to end.
func Test_ReferenceScenario(t *testing.T) {
	s := New32[int]()

	k1 := s.Insert(1)
	k2 := s.Insert(2)
	k3 := s.Insert(3)
	require.Equal(t, uint32(0), k1)
	require.Equal(t, uint32(1), k2)
	require.Equal(t, uint32(2), k3)

	require.Equal(t, 1, *s.Get(k1))
	require.Equal(t, 2, *s.Get(k2))
	require.Equal(t, 3, *s.Get(k3))

	require.Equal(t, 2, s.Remove(k2))
	require.Equal(t, 1, s.Remove(k1))

	require.Equal(t, 3, *s.Get(k3))

	require.Equal(t, k1, s.Insert(4), "k1's slot freed last, reused first")
	k5 := s.Insert(5)
	require.Equal(t, k2, k5, "k2's slot reused next")
	require.Equal(t, uint32(3), s.Insert(6), "free list drained, virgin slot")

	require.Equal(t, uint32(4), s.Len())

	*s.Get(k5)++
	require.Equal(t, 6, s.Remove(k5))
	require.Equal(t, uint32(3), s.Len())
}
