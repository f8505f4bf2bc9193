// Package phasediff estimates the phase offset between two periodic,
// equal-frequency sampled signals captured over exactly one period, and
// synthesizes additive white Gaussian noise (AWGN) at a target SNR for
// simulation.
//
// It is an analysis primitive for signal-structure experiments such as
// GPS-like spreading codes, not an acquisition or tracking pipeline: every
// estimate is single-shot over one period.
//
// # Quick Start
//
//	phase, err := phasediff.PhaseDiffInsensitive(reference, received)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For repeated estimation with custom settings:
//
//	est, err := phasediff.New(&phasediff.Config{
//	    Method:         phasediff.MethodFFT,
//	    EnableParallel: true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	phases, err := est.PhaseDiffMulti(reference, channels)
//
// # Circular Correlation
//
// [CircularCorrelation] correlates a against every circular rotation of b and
// divides by the period length N (not by signal energy):
//
//	profile[k] = (1/N) · Σₙ a[n] · b[(n-k) mod N],  k = 0..N-1
//
// Two algorithms produce the same profile:
//
//   - Direct: b[1:] ++ b is built once so every rotation is a contiguous
//     window, and each shift is one SIMD dot product via
//     github.com/tphakala/simd. O(N²).
//   - FFT: IFFT(FFT(a) · conj(FFT(b))) using gonum's real FFT. O(N log N).
//
// [MethodAuto] picks direct below 512 samples and FFT above.
//
// # Phase Unit
//
// [PhaseDiff] reports min(k, N-k) / N / π · 360 for the correlation peak k
// (lowest index on ties). The division by π means the value is not in
// degrees; a shift of one tenth of the period reads as about 11.46. The
// formula is kept as is so results remain comparable with existing recorded
// estimates. Use [PhaseFraction] and multiply by 360 for degrees.
//
// # Polarity
//
// [PhaseDiffInsensitive] evaluates both PhaseDiff(a, b) and PhaseDiff(-a, b)
// and returns the smaller, so a binary (±1) modulation flip of a does not
// change the estimate.
//
// # Noise
//
// [AWGN] and [NoiseGenerator] add zero-mean Gaussian noise with
//
//	sigma = sqrt(10^((10·log10(mean(signal²)) - snrDB) / 10))
//
// Randomness comes from an explicitly passed math/rand/v2 Source so
// simulations are reproducible:
//
//	gen := phasediff.NewSeededNoiseGenerator(42)
//	noisy, err := gen.AWGN(signal, 10)
//
// # Errors
//
// Invalid input is reported with sentinel errors that can be checked with
// errors.Is: [ErrEmptyInput], [ErrLengthMismatch], [ErrDegenerateSignal],
// [ErrInvalidSNR], [ErrInvalidSigma] and [ErrInvalidConfig].
//
// # Thread Safety
//
// [Estimator] values are read-only after [New] and may be shared between
// goroutines. [NoiseGenerator] owns a random source and must not be shared.
//
// # WAV Captures
//
// The wavio subpackage loads and stores one-period captures as PCM WAV files.
package phasediff
