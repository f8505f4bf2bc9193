package phasediff

import (
	"testing"

	"github.com/tphakala/go-phasediff/internal/testutil"
)

// BenchmarkPhaseDiffMultiSequential benchmarks sequential multi-signal estimation.
func BenchmarkPhaseDiffMultiSequential(b *testing.B) {
	benchmarkPhaseDiffMulti(b, false)
}

// BenchmarkPhaseDiffMultiParallel benchmarks parallel multi-signal estimation.
func BenchmarkPhaseDiffMultiParallel(b *testing.B) {
	benchmarkPhaseDiffMulti(b, true)
}

func benchmarkPhaseDiffMulti(b *testing.B, parallel bool) {
	b.Helper()

	const (
		codeLen = 1023 // one C/A-length code period
		signals = 8
	)

	estimator, err := New(&Config{EnableParallel: parallel})
	if err != nil {
		b.Fatalf("Failed to create estimator: %v", err)
	}

	ref := testutil.PRNCode(codeLen)
	input := make([][]float64, signals)
	for i := range signals {
		input[i] = testutil.Rotate(ref, i*97)
	}

	b.ReportAllocs()
	for b.Loop() {
		if _, err := estimator.PhaseDiffMulti(ref, input); err != nil {
			b.Fatalf("PhaseDiffMulti failed: %v", err)
		}
	}
}

// BenchmarkPhaseDiffInsensitive compares direct and FFT correlation on one code period.
func BenchmarkPhaseDiffInsensitive(b *testing.B) {
	ref := testutil.PRNCode(1023)
	sig := testutil.Negated(testutil.Rotate(ref, 300))

	for _, method := range []CorrelationMethod{MethodDirect, MethodFFT} {
		b.Run(method.String(), func(b *testing.B) {
			estimator, err := New(&Config{Method: method})
			if err != nil {
				b.Fatalf("Failed to create estimator: %v", err)
			}
			b.ReportAllocs()
			for b.Loop() {
				if _, err := estimator.PhaseDiffInsensitive(ref, sig); err != nil {
					b.Fatalf("PhaseDiffInsensitive failed: %v", err)
				}
			}
		})
	}
}
