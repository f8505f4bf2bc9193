package mathutil

import (
	"math"

	"github.com/tphakala/go-phasediff/internal/simdops"
)

// MeanSquare returns the mean of s[i]² (the average signal power).
// It returns 0 for an empty slice.
func MeanSquare[F simdops.Float](s []F) float64 {
	if len(s) == 0 {
		return 0
	}
	sum := simdops.For[F]().DotProductUnsafe(s, s)
	return float64(sum) / float64(len(s))
}

// PowerToDB converts linear power to dB (10*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func PowerToDB(power float64) float64 {
	if power < 0 {
		return math.NaN()
	}
	if power == 0 {
		return math.Inf(-1)
	}
	return decibelScale * math.Log10(power)
}

// DBToPower converts dB to linear power (10*log10 convention).
func DBToPower(db float64) float64 {
	return math.Pow(decibelBase, db/decibelScale)
}

// NoiseSigma returns the standard deviation of zero-mean Gaussian noise that
// sits snrDB below a signal of the given power in dB.
func NoiseSigma(signalPowerDB, snrDB float64) float64 {
	noisePowerDB := signalPowerDB - snrDB
	return math.Sqrt(DBToPower(noisePowerDB))
}
