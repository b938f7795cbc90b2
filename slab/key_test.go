package slab

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// exerciseWidth runs the insert/remove/reuse protocol against one key
// instantiation. All widths share the algorithm, so each must behave
// identically within its range.
func exerciseWidth[K Key](t *testing.T) {
	t.Helper()

	s := New[int, K]()
	var zero K
	require.Equal(t, zero, s.Next())

	a := s.Insert(100)
	b := s.Insert(200)
	c := s.Insert(300)
	require.Equal(t, zero, a)
	require.Equal(t, zero+1, b)
	require.Equal(t, zero+2, c)

	require.Equal(t, 200, s.Remove(b))
	require.Equal(t, b, s.Insert(201), "freed key reissued")
	require.Equal(t, 201, *s.Get(b))
	require.Equal(t, 300, *s.Get(c))
	require.Equal(t, zero+3, s.Len())
}

func Test_KeyWidths(t *testing.T) {
	t.Run("uint8", exerciseWidth[uint8])
	t.Run("uint16", exerciseWidth[uint16])
	t.Run("uint32", exerciseWidth[uint32])
	t.Run("uint64", exerciseWidth[uint64])
	t.Run("uintptr", exerciseWidth[uintptr])
}

// Test_NamedKeyType verifies defined types over the supported widths
// satisfy the constraint, keeping handles from different slabs
// type-incompatible.
func Test_NamedKeyType(t *testing.T) {
	type NodeID uint16

	s := New[string, NodeID]()
	k := s.Insert("node")
	require.Equal(t, NodeID(0), k)
	require.Equal(t, "node", *s.Get(k))
}

// Test_NarrowKeyFillsRange fills a uint8-keyed slab to the 255-slot
// bound the width supports.
func Test_NarrowKeyFillsRange(t *testing.T) {
	s := New8[int]()
	for i := range 255 {
		k := s.Insert(i)
		require.Equal(t, uint8(i), k)
	}
	require.Equal(t, uint8(255), s.Len())

	for i := range uint8(255) {
		require.Equal(t, int(i), *s.Get(i))
	}
}

// Test_WidthAliases verifies the aliases pin the advertised key types.
func Test_WidthAliases(t *testing.T) {
	var k8 uint8 = New8[int]().Insert(1)
	var k16 uint16 = New16[int]().Insert(1)
	var k32 uint32 = New32[int]().Insert(1)
	var kn uintptr = NewNative[int]().Insert(1)

	require.Zero(t, k8)
	require.Zero(t, k16)
	require.Zero(t, k32)
	require.Zero(t, kn)
}
