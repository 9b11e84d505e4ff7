package buf

import "math"

// AddOverflowSafe adds a and b, returning ok = false when the result would
// overflow uint64. Offsets and sizes are unsigned, so every end-of-range
// computation (offset + size) must go through this before a bounds check;
// a wrapped end would otherwise compare as in-bounds.
func AddOverflowSafe(a, b uint64) (uint64, bool) {
	if a > math.MaxUint64-b {
		return 0, false
	}
	return a + b, true
}

// SubSaturating subtracts b from a, stopping at zero instead of wrapping.
func SubSaturating(a, b uint64) uint64 {
	if a < b {
		return 0
	}
	return a - b
}
