// Package qubit: core value types and the unified sentinel error set.
// Every message is prefixed with "qubit: ..." and algorithms MUST return
// these sentinels; callers match them via errors.Is. No function in this
// package panics on user input.
package qubit

import "errors"

// Eps is the default numerical tolerance for the unitarity and
// unit-norm invariants. Rotation matrices built from math.Sin/Cos are
// accurate to a few ulps, so drift beyond Eps signals a genuine bug
// (wrong formula, wrong composition order), not rounding noise.
const Eps = 1e-9

var (
	// ErrNonFiniteAngle is returned when a rotation angle is NaN or ±Inf.
	// Angles are otherwise unrestricted: any finite real (radians) is valid.
	ErrNonFiniteAngle = errors.New("qubit: angle must be finite")

	// ErrNotUnitary signals that an Operator failed the U·U† = I check
	// beyond the given tolerance. Treated as assertion-level: every
	// constructor in this package produces unitary operators, so seeing
	// this on a constructed operator means an implementation defect.
	ErrNotUnitary = errors.New("qubit: operator is not unitary within eps")

	// ErrNormDrift signals that a State's norm deviates from 1 beyond the
	// given tolerance. Evolution through unitary operators preserves norm,
	// so drift indicates a corrupted state or a non-unitary operator.
	ErrNormDrift = errors.New("qubit: state norm is not unity within eps")
)

// State is a single-qubit state vector: two complex amplitudes with
// unit norm (|State[0]|² + |State[1]|² = 1). State[0] is the |0⟩
// amplitude, State[1] the |1⟩ amplitude. States are values; evolution
// returns a fresh State and never mutates its input.
type State [2]complex128

// Operator is a 2×2 complex matrix representing a single-qubit unitary
// transformation. Operator[i][j] is row i, column j. Operators are
// immutable values: composition and conjugate transpose return new
// Operators.
type Operator [2][2]complex128

// NewZeroState returns the computational basis state |0⟩ = [1, 0],
// the fixed reference state of the echo experiment.
func NewZeroState() State {
	return State{1, 0}
}

// Identity returns the 2×2 identity operator.
func Identity() Operator {
	return Operator{
		{1, 0},
		{0, 1},
	}
}
