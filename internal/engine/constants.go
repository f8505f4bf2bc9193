package engine

// Correlation method selection constants
const (
	// DefaultFFTThreshold is the period length at which FFT correlation
	// overtakes the direct SIMD loop. Direct correlation costs N dot products
	// of length N; below a few hundred samples that beats three FFTs.
	DefaultFFTThreshold = 512

	// FFTTieTolerance is the relative spread, against the largest profile
	// magnitude, within which FFT profile values count as tied.
	FFTTieTolerance = 1e-9

	// extendedLenFactor: the extended sequence holds b[1:] followed by b,
	// i.e. 2N-1 samples.
	extendedLenFactor = 2

	// fftHermitianDivisor is used to calculate unique frequency bins in real FFT.
	// Due to Hermitian symmetry, a real FFT of size N has N/2 + 1 unique complex coefficients.
	fftHermitianDivisor = 2
)
