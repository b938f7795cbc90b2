// Package slab provides a densely packed, growable store of homogeneous
// values addressed by small integer keys.
//
// # Overview
//
// A Slab hands out a compact integer key for every inserted value and
// resolves that key back to the value in O(1) with no per-element heap
// allocation. Freed slots are threaded into an intrusive free list stored
// inside the slots themselves, so bookkeeping costs no extra memory, and
// the most recently freed slot is always reused first. This makes the
// structure a good fit for arenas, graph node stores, entity tables, and
// other workloads with many short-lived, uniformly typed objects.
//
// # Key Widths
//
// The key type is a type parameter constrained by Key, so the same
// algorithm serves 8, 16, 32, 64 and native-width handles:
//
//   - Slab8:  up to 255 occupied slots, 1-byte keys
//   - Slab16: up to 65535 occupied slots, 2-byte keys
//   - Slab32: up to ~4.29 billion occupied slots, 4-byte keys
//   - SlabNative: the platform's full addressable range
//
// Narrow keys shrink the footprint of structures that store keys by the
// million (graph adjacency, for example) at the cost of a smaller
// addressable range.
//
// # Unchecked Contract
//
// The core operations perform no occupancy validation. Get and Remove
// trust the caller to pass a key that was returned by Insert on the same
// slab and has not been removed since. Violating that contract does not
// corrupt memory, but it does return or destroy an unrelated element:
// a stale key silently aliases whatever occupies the slot now. Insert
// additionally requires that the number of occupied slots stays below the
// key type's maximum value; with narrow key types the counter otherwise
// wraps and keys alias. These are caller obligations, not runtime errors.
//
// Callers that want validation instead of raw throughput can use Checked,
// which layers an occupancy bitmap over the same container and returns
// ErrBadKey, ErrNotOccupied or ErrFull where the unchecked path would
// misbehave. The checked wrapper is an addition; the unchecked path is
// the reason this package exists.
//
// # Lifecycle
//
// A slab starts with zero capacity and allocates nothing until the first
// Insert. Capacity doubles on demand (first allocation is 4 slots) and
// never shrinks. Growth preserves slot indices, so issued keys survive
// every growth event. No cleanup runs for values still occupying slots
// when the slab itself is dropped; only Remove hands a value back to the
// caller.
//
// # Thread Safety
//
// Slab and Checked instances are not thread-safe. Callers must
// synchronize access externally.
//
// # Example
//
//	s := slab.New32[int]()
//	k1 := s.Insert(1)
//	k2 := s.Insert(2)
//	k3 := s.Insert(3)
//
//	_ = s.Remove(k2)
//	_ = s.Remove(k1)
//
//	// Last freed is first reused.
//	_ = s.Insert(4) // reuses k1's slot
//	k5 := s.Insert(5)
//	_ = s.Insert(6) // reuses k2's slot
//
//	*s.Get(k5) += 1
//	_ = s.Get(k3) // still 3, untouched by the churn
package slab
