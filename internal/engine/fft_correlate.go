package engine

import (
	"fmt"
	"math/cmplx"

	"github.com/tphakala/simd/c128"
	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/dsp/fourier"
)

// FFTCorrelator computes the same normalized circular cross-correlation as
// [Correlator] in O(N log N):
//
//	profile = IFFT(FFT(a) · conj(FFT(b))) / N²
//
// One factor of N undoes gonum's unnormalized inverse transform, the other
// is the period-length normalization of the profile. Results agree with the
// direct method to within floating-point rounding.
//
// An FFTCorrelator holds working buffers and is not safe for concurrent use.
type FFTCorrelator struct {
	fft   *fourier.FFT
	n     int
	scale float64 // 1/N² (IFFT normalization and profile normalization)

	// Working buffers (pre-allocated, Hermitian half spectrum)
	aFFT    []complex128
	bFFT    []complex128
	product []complex128
	seq     []float64
}

// NewFFTCorrelator creates an FFT correlator for period length n.
func NewFFTCorrelator(n int) (*FFTCorrelator, error) {
	if n <= 0 {
		return nil, fmt.Errorf("period length must be positive: %d", n)
	}

	fftLen := n/fftHermitianDivisor + 1
	nf := float64(n)

	return &FFTCorrelator{
		fft:     fourier.NewFFT(n),
		n:       n,
		scale:   1.0 / (nf * nf),
		aFFT:    make([]complex128, fftLen),
		bFFT:    make([]complex128, fftLen),
		product: make([]complex128, fftLen),
		seq:     make([]float64, n),
	}, nil
}

// Len returns the period length the correlator was built for.
func (c *FFTCorrelator) Len() int {
	return c.n
}

// Correlate computes the correlation profile of a against b, reusing dst when
// it has room for N values.
func (c *FFTCorrelator) Correlate(dst, a, b []float64) ([]float64, error) {
	if len(a) != c.n || len(b) != c.n {
		return nil, fmt.Errorf("expected %d samples, got len(a)=%d len(b)=%d", c.n, len(a), len(b))
	}

	if cap(dst) >= c.n {
		dst = dst[:c.n]
	} else {
		dst = make([]float64, c.n)
	}

	c.aFFT = c.fft.Coefficients(c.aFFT, a)
	c.bFFT = c.fft.Coefficients(c.bFFT, b)
	for i, v := range c.bFFT {
		c.bFFT[i] = cmplx.Conj(v)
	}

	c128.Mul(c.product, c.aFFT, c.bFFT)

	c.seq = c.fft.Sequence(c.seq, c.product)
	f64.Scale(dst, c.seq, c.scale)

	return dst, nil
}

// CorrelateFFT is a convenience function that allocates an FFT correlator for
// len(a) and computes a single profile.
func CorrelateFFT(a, b []float64) ([]float64, error) {
	c, err := NewFFTCorrelator(len(a))
	if err != nil {
		return nil, err
	}
	return c.Correlate(nil, a, b)
}
