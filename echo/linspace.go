package echo

import (
	"math"

	"github.com/rhea-modey/QuantumEcho/qubit"
)

// Linspace returns n evenly spaced samples over [start, stop], both
// endpoints inclusive — the perturbation grid of the reference
// experiment is Linspace(0, π, 50). With n == 1 the single sample is
// start. stop may be below start for a descending grid.
//
// Errors:
//   - ErrBadSampleCount       — n < 1.
//   - qubit.ErrNonFiniteAngle — start or stop is NaN/±Inf.
//
// Complexity: O(n).
func Linspace(start, stop float64, n int) ([]float64, error) {
	if n < 1 {
		return nil, ErrBadSampleCount
	}
	if err := checkFinite(start); err != nil {
		return nil, err
	}
	if err := checkFinite(stop); err != nil {
		return nil, err
	}

	out := make([]float64, n)
	if n == 1 {
		out[0] = start

		return out, nil
	}

	step := (stop - start) / float64(n-1)
	for i := 0; i < n-1; i++ {
		out[i] = start + float64(i)*step
	}
	// Pin the endpoint exactly: accumulated step rounding must not leave
	// the grid short of stop.
	out[n-1] = stop

	return out, nil
}

// checkFinite rejects NaN/±Inf endpoints with the same sentinel the
// rotation constructors use, so callers match one error for any
// non-finite angle in the module.
func checkFinite(x float64) error {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return qubit.ErrNonFiniteAngle
	}

	return nil
}
