package qubit_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/rhea-modey/QuantumEcho/qubit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testAngles covers zero, small, large, negative, and beyond-2π angles.
var testAngles = []float64{
	0, 1e-9, 0.1, math.Pi / 7, math.Pi / 3, math.Pi / 2,
	math.Pi, 2 * math.Pi, 5.5, -0.3, -math.Pi, 13.37,
}

// assertOperatorsEqual compares two operators elementwise within eps.
func assertOperatorsEqual(t *testing.T, want, got qubit.Operator, eps float64, msg string) {
	t.Helper()
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.InDelta(t, 0, cmplx.Abs(want[i][j]-got[i][j]), eps,
				"%s: entry (%d,%d) want %v got %v", msg, i, j, want[i][j], got[i][j])
		}
	}
}

// TestRotation_IdentityAtZero verifies Rx(0) = Rz(0) = I exactly.
func TestRotation_IdentityAtZero(t *testing.T) {
	rx, err := qubit.RotationX(0)
	require.NoError(t, err)
	rz, err := qubit.RotationZ(0)
	require.NoError(t, err)

	assertOperatorsEqual(t, qubit.Identity(), rx, qubit.Eps, "RotationX(0)")
	assertOperatorsEqual(t, qubit.Identity(), rz, qubit.Eps, "RotationZ(0)")
}

// TestRotation_Unitarity verifies U·U† = I for both axes across angles.
func TestRotation_Unitarity(t *testing.T) {
	for _, a := range testAngles {
		rx, err := qubit.RotationX(a)
		require.NoError(t, err, "RotationX(%v)", a)
		assert.NoError(t, rx.CheckUnitary(qubit.Eps), "RotationX(%v) must be unitary", a)

		rz, err := qubit.RotationZ(a)
		require.NoError(t, err, "RotationZ(%v)", a)
		assert.NoError(t, rz.CheckUnitary(qubit.Eps), "RotationZ(%v) must be unitary", a)
	}
}

// TestRotation_Additivity verifies R(a)·R(b) = R(a+b) on the same axis.
func TestRotation_Additivity(t *testing.T) {
	pairs := [][2]float64{
		{0.3, 0.4}, {math.Pi / 5, -math.Pi / 3}, {1.1, 2.2}, {-0.7, -0.9}, {0, 5.5},
	}
	for _, p := range pairs {
		a, b := p[0], p[1]

		rxa, _ := qubit.RotationX(a)
		rxb, _ := qubit.RotationX(b)
		rxSum, _ := qubit.RotationX(a + b)
		assertOperatorsEqual(t, rxSum, rxa.Mul(rxb), qubit.Eps, "Rx additivity")

		rza, _ := qubit.RotationZ(a)
		rzb, _ := qubit.RotationZ(b)
		rzSum, _ := qubit.RotationZ(a + b)
		assertOperatorsEqual(t, rzSum, rza.Mul(rzb), qubit.Eps, "Rz additivity")
	}
}

// TestRotation_KnownMatrices pins the matrix entries at π, where both
// rotations have closed forms: Rx(π) = -i·X, Rz(π) = diag(-i, i).
func TestRotation_KnownMatrices(t *testing.T) {
	rx, err := qubit.RotationX(math.Pi)
	require.NoError(t, err)
	assertOperatorsEqual(t, qubit.Operator{
		{0, complex(0, -1)},
		{complex(0, -1), 0},
	}, rx, qubit.Eps, "Rx(π)")

	rz, err := qubit.RotationZ(math.Pi)
	require.NoError(t, err)
	assertOperatorsEqual(t, qubit.Operator{
		{complex(0, -1), 0},
		{0, complex(0, 1)},
	}, rz, qubit.Eps, "Rz(π)")
}

// TestRotation_NonFiniteAngle verifies NaN and ±Inf are rejected with
// ErrNonFiniteAngle before any matrix is built.
func TestRotation_NonFiniteAngle(t *testing.T) {
	for _, a := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := qubit.RotationX(a)
		assert.ErrorIs(t, err, qubit.ErrNonFiniteAngle, "RotationX(%v)", a)

		_, err = qubit.RotationZ(a)
		assert.ErrorIs(t, err, qubit.ErrNonFiniteAngle, "RotationZ(%v)", a)
	}
}
