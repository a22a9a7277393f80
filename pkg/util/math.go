package util

import "math"

// Round rounds half away from zero to the nearest int.
func Round(v float64) int {
	return int(math.Round(v))
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampScore bounds v to the 0-100 score range.
func ClampScore(v int) int {
	return Clamp(v, 0, 100)
}
