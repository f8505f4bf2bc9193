package mathutil

import "math"

// CircularDistance returns the shorter way around a ring of n positions from
// index 0 to index k: min(k, n-k).
func CircularDistance(k, n int) int {
	return min(k, n-k)
}

// FractionToPhase converts a cycle fraction to the phase unit reported by the
// estimator: f / π * 360.
//
// This is not a plain fraction-to-degrees conversion (that would be f * 360).
// The division by π is kept so results stay comparable with existing
// recorded estimates. Use the fraction directly when degrees are needed.
func FractionToPhase(fraction float64) float64 {
	return fraction / math.Pi * degreesPerCycle
}
