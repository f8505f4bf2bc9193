package engine

import (
	"math"

	"github.com/tphakala/go-phasediff/internal/simdops"
)

// PeakIndex returns the index of the maximum of s. Ties resolve to the lowest
// index. NaN entries are ignored; if every entry is NaN the result is 0.
// It returns -1 for an empty slice.
func PeakIndex[F simdops.Float](s []F) int {
	if len(s) == 0 {
		return -1
	}

	idx := 0
	found := false
	var peak F
	for i, v := range s {
		if math.IsNaN(float64(v)) {
			continue
		}
		if !found || v > peak {
			peak = v
			idx = i
			found = true
		}
	}
	return idx
}

// PeakIndexTolerant is like PeakIndex, but treats every entry within
// relTol·max|s| of the maximum as tied with it, returning the lowest such
// index. Use it on FFT profiles, where rounding breaks exact ties apart.
func PeakIndexTolerant[F simdops.Float](s []F, relTol float64) int {
	peak := PeakIndex(s)
	if peak < 0 || math.IsNaN(float64(s[peak])) {
		return peak
	}

	var maxAbs float64
	for _, v := range s {
		if a := math.Abs(float64(v)); a > maxAbs {
			maxAbs = a
		}
	}

	threshold := float64(s[peak]) - relTol*maxAbs
	for i, v := range s {
		if float64(v) >= threshold {
			return i
		}
	}
	return peak
}
