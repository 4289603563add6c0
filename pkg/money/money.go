package money

import "math"

// epsilon counters binary floating-point drift so that values sitting exactly
// on a half boundary (e.g. 2.675) round up instead of truncating.
const epsilon = 1e-9

// Round2 rounds a currency amount to 2 decimal places, half away from zero.
// NaN and infinities are treated as 0 so the function is total over float64.
// Round2 is idempotent: Round2(Round2(x)) == Round2(x).
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	if v < 0 {
		return -math.Floor(-v*100+0.5+epsilon) / 100
	}
	return math.Floor(v*100+0.5+epsilon) / 100
}

// Clamp restricts v to the inclusive range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Cents converts a decimal currency amount to integer cents for storage.
func Cents(v float64) int64 {
	return int64(math.Round(Round2(v) * 100))
}
