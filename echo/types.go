// Package echo: result/option types and the sentinel error set.
// Messages are prefixed with "echo: ..."; angle validation reuses
// qubit.ErrNonFiniteAngle so callers match one sentinel for any
// non-finite input anywhere in the module.
package echo

import "errors"

var (
	// ErrBadWorkers is returned when Options.Workers < 1.
	ErrBadWorkers = errors.New("echo: Workers must be >= 1")

	// ErrBadSampleCount is returned by Linspace when n < 1.
	ErrBadSampleCount = errors.New("echo: sample count must be >= 1")
)

// Point is one sweep sample: the perturbation strength δ (radians) and
// the echo amplitude |⟨0|U†VU|0⟩|² measured at that strength. Sweep
// results are handed to the plotting collaborator as an ordered []Point.
type Point struct {
	Delta     float64 `json:"delta"`
	Amplitude float64 `json:"amplitude"`
}

// Options configures Sweep.
//
// Fields:
//   - Workers — number of concurrent evaluators. 1 (the default) is the
//     reference semantics: strictly sequential, in input order. Values
//     above 1 fan the independent per-δ evaluations out over goroutines;
//     the output is identical to sequential evaluation since each sample
//     is a pure function written to its own result slot.
//
// Example:
//
//	opts := echo.DefaultOptions()
//	opts.Workers = 4
//	points, err := echo.Sweep(theta, deltas, &opts)
type Options struct {
	Workers int
}

// DefaultOptions returns the reference configuration: sequential
// evaluation.
func DefaultOptions() Options {
	return Options{Workers: 1}
}
