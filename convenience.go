package phasediff

// defaultEstimator backs the package-level functions.
var defaultEstimator = mustNew(DefaultConfig())

func mustNew(cfg Config) *Estimator {
	e, err := New(&cfg)
	if err != nil {
		panic("phasediff: invalid default config: " + err.Error())
	}
	return e
}

// CircularCorrelation returns the normalized circular cross-correlation of
// two equal-length one-period signals:
//
//	profile[k] = (1/N) · Σₙ a[n] · b[(n-k) mod N]
//
// It returns ErrEmptyInput or ErrLengthMismatch for invalid input.
func CircularCorrelation(a, b []float64) ([]float64, error) {
	return defaultEstimator.CircularCorrelation(a, b)
}

// PhaseDiff returns the phase offset between two one-period signals of the
// same frequency, taken from the circular correlation peak k:
//
//	min(k, N-k) / N / π · 360
//
// See [Estimator.PhaseDiff] for the unit.
func PhaseDiff(a, b []float64) (float64, error) {
	return defaultEstimator.PhaseDiff(a, b)
}

// PhaseFraction returns the offset between a and b as a fraction of the period.
func PhaseFraction(a, b []float64) (float64, error) {
	return defaultEstimator.PhaseFraction(a, b)
}

// PhaseDiffInsensitive returns the smaller of PhaseDiff(a, b) and
// PhaseDiff(-a, b), making the estimate insensitive to a polarity flip.
func PhaseDiffInsensitive(a, b []float64) (float64, error) {
	return defaultEstimator.PhaseDiffInsensitive(a, b)
}

// CircularCorrelationFloat32 is like CircularCorrelation but for float32
// samples. It always uses direct correlation.
func CircularCorrelationFloat32(a, b []float32) ([]float32, error) {
	return correlate(defaultEstimator, a, b)
}

// PhaseDiffFloat32 is like PhaseDiff but for float32 samples.
func PhaseDiffFloat32(a, b []float32) (float64, error) {
	return phaseDiff(defaultEstimator, a, b)
}

// PhaseDiffInsensitiveFloat32 is like PhaseDiffInsensitive but for float32 samples.
func PhaseDiffInsensitiveFloat32(a, b []float32) (float64, error) {
	return phaseDiffInsensitive(defaultEstimator, a, b)
}
