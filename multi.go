package phasediff

import (
	"fmt"
	"sync"
)

// PhaseDiffMulti estimates PhaseDiff(ref, signals[i]) for every signal.
// When EnableParallel is set in the config, signals are estimated
// concurrently. Otherwise they are estimated sequentially.
func (e *Estimator) PhaseDiffMulti(ref []float64, signals [][]float64) ([]float64, error) {
	return e.estimateMulti(ref, signals, e.PhaseDiff)
}

// PhaseDiffInsensitiveMulti estimates PhaseDiffInsensitive(ref, signals[i])
// for every signal.
func (e *Estimator) PhaseDiffInsensitiveMulti(ref []float64, signals [][]float64) ([]float64, error) {
	return e.estimateMulti(ref, signals, e.PhaseDiffInsensitive)
}

func (e *Estimator) estimateMulti(
	ref []float64,
	signals [][]float64,
	estimate func(a, b []float64) (float64, error),
) ([]float64, error) {
	output := make([]float64, len(signals))

	// Sequential processing (default or when parallel disabled)
	if !e.config.EnableParallel || len(signals) < minParallelSignals {
		for i, sig := range signals {
			phase, err := estimate(ref, sig)
			if err != nil {
				return nil, fmt.Errorf("signal %d: %w", i, err)
			}
			output[i] = phase
		}
		return output, nil
	}

	// Parallel processing: one goroutine per signal
	var wg sync.WaitGroup
	errChan := make(chan error, len(signals))

	for i := range signals {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			phase, err := estimate(ref, signals[idx])
			if err != nil {
				errChan <- fmt.Errorf("signal %d: %w", idx, err)
				return
			}
			output[idx] = phase
		}(i)
	}

	wg.Wait()
	close(errChan)

	for err := range errChan {
		if err != nil {
			return nil, err
		}
	}

	return output, nil
}
