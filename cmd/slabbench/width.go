package main

import (
	"fmt"
	"math"
)

// Key width flag values.
const (
	width8      = "8"
	width16     = "16"
	width32     = "32"
	widthNative = "native"
)

// maxOccupied returns the largest occupied-slot count the width
// supports, or 0 for an unknown width.
func maxOccupied(width string) int64 {
	switch width {
	case width8:
		return math.MaxUint8
	case width16:
		return math.MaxUint16
	case width32:
		return math.MaxUint32
	case widthNative:
		return math.MaxInt64
	}
	return 0
}

// checkWidthFits rejects workloads whose live-set size exceeds the key
// range; the unchecked path would wrap and alias keys instead of
// reporting anything.
func checkWidthFits(width string, n int) error {
	limit := maxOccupied(width)
	if limit == 0 {
		return fmt.Errorf("unknown key width %q (want 8, 16, 32 or native)", width)
	}
	if int64(n) > limit {
		return fmt.Errorf(
			"%d live elements exceed the %s-bit key range (max %d occupied slots)",
			n, width, limit)
	}
	return nil
}
