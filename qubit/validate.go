// Package qubit: numerical-invariant validators.
//
// These are deterministic, side-effect-free checks used by tests and by
// callers that want drift detection at package boundaries. Production
// construction paths only ever build operators that pass them, so a
// failure is assertion-level: it points at a formula or composition
// defect, not at bad user input.
package qubit

import "math/cmplx"

// CheckUnitary verifies U·U† = I elementwise to within eps and returns
// ErrNotUnitary on violation. A non-positive eps falls back to Eps.
//
// Complexity: O(1).
func (a Operator) CheckUnitary(eps float64) error {
	if eps <= 0 {
		eps = Eps
	}
	prod := a.Mul(a.Dagger())
	id := Identity()
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if cmplx.Abs(prod[i][j]-id[i][j]) > eps {
				return ErrNotUnitary
			}
		}
	}

	return nil
}

// CheckNorm verifies the state's norm is 1 to within eps and returns
// ErrNormDrift on violation. A non-positive eps falls back to Eps.
//
// Complexity: O(1).
func (s State) CheckNorm(eps float64) error {
	if eps <= 0 {
		eps = Eps
	}
	if d := s.Norm() - 1; d > eps || d < -eps {
		return ErrNormDrift
	}

	return nil
}
