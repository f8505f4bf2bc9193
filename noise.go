package phasediff

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/tphakala/go-phasediff/internal/mathutil"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// NoiseGenerator synthesizes additive white Gaussian noise from a random
// source it owns. A NoiseGenerator is not safe for concurrent use; give each
// goroutine its own.
type NoiseGenerator struct {
	src rand.Source
}

// NewNoiseGenerator creates a noise generator drawing from src.
// A nil src uses the process-wide math/rand/v2 generator, which is seeded
// randomly at startup and cannot be reproduced.
func NewNoiseGenerator(src rand.Source) *NoiseGenerator {
	return &NoiseGenerator{src: src}
}

// NewSeededNoiseGenerator creates a reproducible noise generator backed by a
// PCG source seeded with seed.
func NewSeededNoiseGenerator(seed uint64) *NoiseGenerator {
	return NewNoiseGenerator(rand.NewPCG(seed, pcgStream))
}

// Noise returns n independent samples of zero-mean Gaussian noise with
// standard deviation sigma.
func (g *NoiseGenerator) Noise(n int, sigma float64) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: noise length %d", ErrEmptyInput, n)
	}
	if sigma < 0 || math.IsNaN(sigma) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSigma, sigma)
	}

	dist := distuv.Normal{Mu: 0, Sigma: sigma, Src: g.src}
	out := make([]float64, n)
	for i := range out {
		out[i] = dist.Rand()
	}
	return out, nil
}

// AWGN returns signal plus white Gaussian noise at snrDB below the signal's
// mean power. The input is not modified.
//
// It returns ErrEmptyInput for an empty signal, ErrDegenerateSignal when the
// signal's mean square is zero (for any SNR), and ErrInvalidSNR for a NaN SNR.
func (g *NoiseGenerator) AWGN(signal []float64, snrDB float64) ([]float64, error) {
	sigma, err := NoiseSigma(signal, snrDB)
	if err != nil {
		return nil, err
	}

	noise, err := g.Noise(len(signal), sigma)
	if err != nil {
		return nil, err
	}

	return floats.AddTo(noise, signal, noise), nil
}

// AWGN adds white Gaussian noise to signal at the given SNR in dB, drawing
// from src. See [NoiseGenerator.AWGN].
func AWGN(signal []float64, snrDB float64, src rand.Source) ([]float64, error) {
	return NewNoiseGenerator(src).AWGN(signal, snrDB)
}

// NoiseSigma returns the noise standard deviation AWGN uses for signal at
// snrDB:
//
//	sqrt(10^((10·log10(mean(signal²)) - snrDB) / 10))
func NoiseSigma(signal []float64, snrDB float64) (float64, error) {
	if len(signal) == 0 {
		return 0, fmt.Errorf("%w: signal has 0 samples", ErrEmptyInput)
	}

	power := mathutil.MeanSquare(signal)
	if power == 0 {
		return 0, fmt.Errorf("%w: mean square is 0 over %d samples", ErrDegenerateSignal, len(signal))
	}

	if math.IsNaN(snrDB) {
		return 0, fmt.Errorf("%w: NaN", ErrInvalidSNR)
	}

	return mathutil.NoiseSigma(mathutil.PowerToDB(power), snrDB), nil
}
