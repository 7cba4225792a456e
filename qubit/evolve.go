package qubit

import (
	"math"
	"math/cmplx"
)

// Evolve applies an operator to a state and returns the resulting
// state as a new value; the input state is never modified.
//
// For a unitary op, the output norm equals the input norm to within
// Eps. Evolve does not re-normalize: a caller passing a state whose
// norm deviates from 1 has a caller-side bug, and silently correcting
// it would mask it (use CheckNorm to detect drift).
//
// Complexity: O(1).
func Evolve(op Operator, s State) State {
	return State{
		op[0][0]*s[0] + op[0][1]*s[1],
		op[1][0]*s[0] + op[1][1]*s[1],
	}
}

// Norm returns the Euclidean norm √(|s[0]|² + |s[1]|²) of the state.
// A valid state has norm 1 to within Eps.
func (s State) Norm() float64 {
	return math.Hypot(cmplx.Abs(s[0]), cmplx.Abs(s[1]))
}

// Probability returns |s[i]|², the probability of measuring basis
// outcome i (0 or 1). Rounding can push the square a few ulps past 1
// on a unit-norm state; the result is capped so callers can rely on
// the [0, 1] range.
func (s State) Probability(i int) float64 {
	a := cmplx.Abs(s[i])
	p := a * a
	if p > 1 {
		return 1
	}

	return p
}
