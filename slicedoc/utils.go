// slicedoc/utils.go
package slicedoc

import "math"

// ClampPercent limits an axis value to the [0,100] percentage range.
// Non-finite values collapse to 0.
func ClampPercent(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// BoolAt reads scaling[i] with a fixed (false) fallback for indices the
// array does not cover. Scaling arrays shorter than the segment count are
// tolerated everywhere via this accessor.
func BoolAt(scaling []bool, i int) bool {
	if i < 0 || i >= len(scaling) {
		return false
	}
	return scaling[i]
}

// DefaultScaling regenerates the legacy alternating pattern for documents
// saved without scaling arrays: fixed, scalable, fixed, scalable, ...
func DefaultScaling(n int) []bool {
	if n < 0 {
		n = 0
	}
	out := make([]bool, n)
	for i := range out {
		out[i] = i%2 != 0
	}
	return out
}
