package phasediff

import (
	"errors"
	"fmt"
	"log"

	"github.com/tphakala/go-phasediff/internal/engine"
	"github.com/tphakala/go-phasediff/internal/mathutil"
	"github.com/tphakala/go-phasediff/internal/simdops"
)

// Common errors returned by the estimator and the noise generator.
var (
	// ErrLengthMismatch indicates the two input signals differ in length.
	ErrLengthMismatch = errors.New("signal length mismatch")

	// ErrEmptyInput indicates an input signal has no samples.
	ErrEmptyInput = errors.New("empty input signal")

	// ErrDegenerateSignal indicates a signal whose mean square is exactly
	// zero, so its power in dB is undefined.
	ErrDegenerateSignal = errors.New("signal has zero power")

	// ErrInvalidSNR indicates an SNR that is not a number.
	ErrInvalidSNR = errors.New("invalid SNR")

	// ErrInvalidSigma indicates a negative or NaN noise standard deviation.
	ErrInvalidSigma = errors.New("invalid noise standard deviation")

	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid estimator configuration")
)

// CorrelationMethod selects how the circular correlation is computed.
type CorrelationMethod int

const (
	// MethodAuto uses direct correlation below Config.FFTThreshold samples
	// and FFT correlation at or above it.
	MethodAuto CorrelationMethod = iota

	// MethodDirect always uses the O(N²) SIMD dot-product loop.
	MethodDirect

	// MethodFFT always uses O(N log N) FFT correlation (float64 only).
	MethodFFT
)

// String returns the method name.
func (m CorrelationMethod) String() string {
	switch m {
	case MethodAuto:
		return "auto"
	case MethodDirect:
		return "direct"
	case MethodFFT:
		return "fft"
	default:
		return fmt.Sprintf("CorrelationMethod(%d)", int(m))
	}
}

// Config holds estimator configuration.
type Config struct {
	// Method selects direct or FFT correlation. The zero value is MethodAuto.
	Method CorrelationMethod

	// FFTThreshold is the period length at which MethodAuto switches to FFT
	// correlation. Set to 0 to use the default (512 samples).
	FFTThreshold int

	// EnableParallel enables parallel estimation in PhaseDiffMulti and
	// PhaseDiffInsensitiveMulti. Each signal is estimated in its own goroutine.
	EnableParallel bool

	// Logger receives one diagnostic line per estimate. Nil disables logging.
	Logger *log.Logger
}

// DefaultConfig returns the configuration used by the package-level functions.
func DefaultConfig() Config {
	return Config{
		Method:       MethodAuto,
		FFTThreshold: engine.DefaultFFTThreshold,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.Method {
	case MethodAuto, MethodDirect, MethodFFT:
	default:
		return fmt.Errorf("%w: unknown correlation method %d", ErrInvalidConfig, int(c.Method))
	}

	if c.FFTThreshold < 0 {
		return fmt.Errorf("%w: FFT threshold must not be negative", ErrInvalidConfig)
	}

	return nil
}

// Estimator estimates phase offsets between one-period signals.
// It holds no mutable state and is safe for concurrent use.
type Estimator struct {
	config Config
}

// New creates an estimator with the specified configuration.
func New(config *Config) (*Estimator, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	cfg := *config
	if cfg.FFTThreshold == 0 {
		cfg.FFTThreshold = engine.DefaultFFTThreshold
	}

	return &Estimator{config: cfg}, nil
}

// Config returns the effective configuration, with defaults applied.
func (e *Estimator) Config() Config {
	return e.config
}

// CircularCorrelation returns the normalized circular cross-correlation of a
// and b. Index k of the result is the correlation of a against b circularly
// shifted by k samples, divided by N.
func (e *Estimator) CircularCorrelation(a, b []float64) ([]float64, error) {
	return correlate(e, a, b)
}

// PhaseFraction returns the offset between a and b as a fraction of the
// period in [0, 0.5]: min(k, N-k)/N for the correlation peak k.
func (e *Estimator) PhaseFraction(a, b []float64) (float64, error) {
	return phaseFraction(e, a, b)
}

// PhaseDiff returns the phase offset between a and b.
//
// The value is PhaseFraction / π · 360. Note the division by π: this is not
// degrees. Multiply PhaseFraction by 360 for degrees.
//
// The peak is the first maximum of the correlation profile; NaN values in
// the profile are skipped, so a NaN lag never wins.
func (e *Estimator) PhaseDiff(a, b []float64) (float64, error) {
	return phaseDiff(e, a, b)
}

// PhaseDiffInsensitive returns min(PhaseDiff(a, b), PhaseDiff(-a, b)).
// This makes the estimate insensitive to a polarity flip of a, such as a
// binary data bit on the carrier. Neither input is modified.
func (e *Estimator) PhaseDiffInsensitive(a, b []float64) (float64, error) {
	return phaseDiffInsensitive(e, a, b)
}

// methodFor resolves MethodAuto for a period length n.
func (e *Estimator) methodFor(n int) CorrelationMethod {
	if e.config.Method != MethodAuto {
		return e.config.Method
	}
	if n >= e.config.FFTThreshold {
		return MethodFFT
	}
	return MethodDirect
}

func (e *Estimator) logf(format string, args ...any) {
	if e.config.Logger != nil {
		e.config.Logger.Printf(format, args...)
	}
}

// validatePair checks the input pair before any correlation work.
func validatePair(lenA, lenB int) error {
	if lenA == 0 || lenB == 0 {
		return fmt.Errorf("%w: len(a)=%d, len(b)=%d", ErrEmptyInput, lenA, lenB)
	}
	if lenA != lenB {
		return fmt.Errorf("%w: len(a)=%d, len(b)=%d", ErrLengthMismatch, lenA, lenB)
	}
	return nil
}

// resolveMethod returns the method correlate uses for n samples of type F.
func resolveMethod[F simdops.Float](e *Estimator, n int) CorrelationMethod {
	if _, ok := any([]F(nil)).([]float64); !ok {
		return MethodDirect
	}
	return e.methodFor(n)
}

// correlate validates the pair and dispatches to the direct or FFT engine.
// FFT correlation is only available for float64; float32 input always takes
// the direct path.
func correlate[F simdops.Float](e *Estimator, a, b []F) ([]F, error) {
	if err := validatePair(len(a), len(b)); err != nil {
		return nil, err
	}

	if resolveMethod[F](e, len(a)) == MethodFFT {
		if a64, ok := any(a).([]float64); ok {
			b64, _ := any(b).([]float64)
			profile, err := engine.CorrelateFFT(a64, b64)
			if err != nil {
				return nil, fmt.Errorf("fft correlation: %w", err)
			}
			out, _ := any(profile).([]F)
			return out, nil
		}
	}

	profile, err := engine.CorrelateDirect(a, b)
	if err != nil {
		return nil, fmt.Errorf("direct correlation: %w", err)
	}
	return profile, nil
}

func phaseFraction[F simdops.Float](e *Estimator, a, b []F) (float64, error) {
	profile, err := correlate(e, a, b)
	if err != nil {
		return 0, err
	}

	n := len(profile)
	method := resolveMethod[F](e, n)

	var peak int
	if method == MethodFFT {
		peak = engine.PeakIndexTolerant(profile, engine.FFTTieTolerance)
	} else {
		peak = engine.PeakIndex(profile)
	}
	d := mathutil.CircularDistance(peak, n)

	e.logf("phasediff: method=%s n=%d peak=%d value=%g distance=%d",
		method, n, peak, float64(profile[peak]), d)

	return float64(d) / float64(n), nil
}

func phaseDiff[F simdops.Float](e *Estimator, a, b []F) (float64, error) {
	f, err := phaseFraction(e, a, b)
	if err != nil {
		return 0, err
	}
	return mathutil.FractionToPhase(f), nil
}

func phaseDiffInsensitive[F simdops.Float](e *Estimator, a, b []F) (float64, error) {
	if err := validatePair(len(a), len(b)); err != nil {
		return 0, err
	}

	direct, err := phaseDiff(e, a, b)
	if err != nil {
		return 0, err
	}

	flipped, err := phaseDiff(e, simdops.Negate(a), b)
	if err != nil {
		return 0, err
	}

	return min(direct, flipped), nil
}
