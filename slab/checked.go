package slab

// Checked wraps a Slab with an occupancy bitmap so that key misuse is
// reported instead of silently aliasing another element.
//
// Every operation validates its key against current occupancy: Remove and
// Get reject out-of-range keys with ErrBadKey and free slots with
// ErrNotOccupied, and Insert refuses to exhaust the key type's range with
// ErrFull rather than letting the counters wrap. The bitmap costs one bit
// per slot and one extra test per operation; callers that have proven
// their key discipline should use Slab directly.
//
// Not thread-safe, same as Slab.
type Checked[T any, K Key] struct {
	slab Slab[T, K]
	live []uint64 // occupancy bitmap, one bit per slot
}

// NewChecked returns an empty checked slab. No allocation occurs until
// the first Insert.
func NewChecked[T any, K Key]() *Checked[T, K] {
	return &Checked[T, K]{}
}

// Insert stores val and returns its key. Returns ErrFull if the slab
// already holds the maximum occupied-slot count representable by K
// (255 for uint8, 65535 for uint16, and so on).
func (c *Checked[T, K]) Insert(val T) (K, error) {
	if c.slab.len+1 == 0 {
		// One more occupied slot would wrap the counter.
		var zero K
		return zero, ErrFull
	}
	key := c.slab.Insert(val)
	c.setLive(int(key))
	return key, nil
}

// Remove frees the slot named by key and returns the value it held.
// Returns ErrBadKey for a key outside the allocated range and
// ErrNotOccupied for a slot that is currently free (including
// double-removes).
func (c *Checked[T, K]) Remove(key K) (T, error) {
	idx := int(key)
	if idx < 0 || idx >= len(c.slab.slots) {
		var zero T
		return zero, ErrBadKey
	}
	if !c.isLive(idx) {
		var zero T
		return zero, ErrNotOccupied
	}
	c.clearLive(idx)
	return c.slab.Remove(key), nil
}

// Get returns a pointer to the value stored under key, or ErrBadKey /
// ErrNotOccupied for an invalid one. The pointer is invalidated by the
// next growth event, exactly as with Slab.Get.
func (c *Checked[T, K]) Get(key K) (*T, error) {
	idx := int(key)
	if idx < 0 || idx >= len(c.slab.slots) {
		return nil, ErrBadKey
	}
	if !c.isLive(idx) {
		return nil, ErrNotOccupied
	}
	return c.slab.Get(key), nil
}

// Contains reports whether key currently names an occupied slot.
func (c *Checked[T, K]) Contains(key K) bool {
	idx := int(key)
	return idx >= 0 && c.isLive(idx)
}

// Len returns the number of occupied slots.
func (c *Checked[T, K]) Len() K {
	return c.slab.Len()
}

// Next returns the key the next successful Insert will return.
func (c *Checked[T, K]) Next() K {
	return c.slab.Next()
}

// Cap returns the current slot capacity of the backing store.
func (c *Checked[T, K]) Cap() int {
	return c.slab.Cap()
}

func (c *Checked[T, K]) setLive(i int) {
	w := i >> 6
	for len(c.live) <= w {
		c.live = append(c.live, 0)
	}
	c.live[w] |= 1 << (i & 63)
}

func (c *Checked[T, K]) clearLive(i int) {
	c.live[i>>6] &^= 1 << (i & 63)
}

func (c *Checked[T, K]) isLive(i int) bool {
	w := i >> 6
	return w < len(c.live) && c.live[w]&(1<<(i&63)) != 0
}
