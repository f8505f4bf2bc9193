package testutil

import "math"

// SinePeriod returns one period of sin(2π·freq·n/rate + 2π·cycleOffset),
// with rate/freq samples. freq must divide rate.
func SinePeriod(freq, rate, cycleOffset float64) []float64 {
	n := int(math.Round(rate / freq))
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(2 * math.Pi * (freq*float64(i)/rate + cycleOffset))
	}
	return out
}

// Rotate returns s circularly shifted right by k samples: out[n] = s[n-k mod N].
func Rotate(s []float64, k int) []float64 {
	n := len(s)
	out := make([]float64, n)
	if n == 0 {
		return out
	}
	k = ((k % n) + n) % n
	for i := range s {
		out[(i+k)%n] = s[i]
	}
	return out
}

// Negated returns a copy of s with every sample sign-flipped.
func Negated(s []float64) []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = -v
	}
	return out
}

// PRNCode returns a deterministic ±1 sequence of length n from a 10-stage
// maximal-length LFSR (taps 10 and 3, as in the GPS G1 register).
func PRNCode(n int) []float64 {
	const stages = 10
	reg := [stages]int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1}
	out := make([]float64, n)
	for i := range out {
		if reg[stages-1] == 1 {
			out[i] = -1
		} else {
			out[i] = 1
		}
		fb := reg[2] ^ reg[stages-1]
		copy(reg[1:], reg[:stages-1])
		reg[0] = fb
	}
	return out
}

// ToFloat32 converts a float64 slice to float32.
func ToFloat32(s []float64) []float32 {
	out := make([]float32, len(s))
	for i, v := range s {
		out[i] = float32(v)
	}
	return out
}
