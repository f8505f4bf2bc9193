package engine

import (
	"fmt"

	"github.com/tphakala/go-phasediff/internal/simdops"
)

// Correlator computes the normalized circular cross-correlation of two
// sequences of a fixed period length N:
//
//	profile[k] = (1/N) · Σₙ a[n] · b[(n-k) mod N],  k = 0..N-1
//
// Every circular rotation of b is materialized as a contiguous window of the
// extended sequence ext = b[1:N] ++ b[0:N] (2N-1 samples). Sliding a across
// ext is then a plain "valid" correlation with exactly N positions, each one
// a single SIMD dot product.
//
// Type parameter F must be float32 or float64.
//
// A Correlator reuses its extension buffer between calls and is not safe for
// concurrent use.
type Correlator[F simdops.Float] struct {
	n   int
	ext []F

	ops *simdops.Ops[F]
}

// NewCorrelator creates a direct correlator for period length n.
func NewCorrelator[F simdops.Float](n int) (*Correlator[F], error) {
	if n <= 0 {
		return nil, fmt.Errorf("period length must be positive: %d", n)
	}
	return &Correlator[F]{
		n:   n,
		ext: make([]F, extendedLenFactor*n-1),
		ops: simdops.For[F](),
	}, nil
}

// Len returns the period length the correlator was built for.
func (c *Correlator[F]) Len() int {
	return c.n
}

// Correlate computes the correlation profile of a against b.
// If dst has capacity for N values it is reused, otherwise a new slice is
// allocated. The profile is returned.
func (c *Correlator[F]) Correlate(dst, a, b []F) ([]F, error) {
	if len(a) != c.n || len(b) != c.n {
		return nil, fmt.Errorf("expected %d samples, got len(a)=%d len(b)=%d", c.n, len(a), len(b))
	}

	if cap(dst) >= c.n {
		dst = dst[:c.n]
	} else {
		dst = make([]F, c.n)
	}

	// ext = b[1:] ++ b
	copy(c.ext, b[1:])
	copy(c.ext[c.n-1:], b)

	// Window ext[N-1-k : 2N-1-k] holds b rotated right by k samples.
	norm := F(c.n)
	last := c.n - 1
	for k := range c.n {
		start := last - k
		dst[k] = c.ops.DotProductUnsafe(a, c.ext[start:start+c.n]) / norm
	}

	return dst, nil
}

// CorrelateDirect is a convenience function that allocates a correlator for
// len(a) and computes a single profile.
func CorrelateDirect[F simdops.Float](a, b []F) ([]F, error) {
	c, err := NewCorrelator[F](len(a))
	if err != nil {
		return nil, err
	}
	return c.Correlate(nil, a, b)
}
