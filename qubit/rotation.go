// Package qubit: parametrized rotation constructors.
//
// RotationX and RotationZ build the standard single-qubit axis
// rotations. Both satisfy, for any finite a and b:
//
//	Rotation?(0)            = Identity()
//	Rotation?(a)·Rotation?(b) = Rotation?(a+b)   (same axis)
//
// and both reject non-finite angles with ErrNonFiniteAngle before
// touching any trigonometry.
package qubit

import (
	"math"
	"math/cmplx"
)

// RotationX returns the rotation about the X axis by angle radians:
//
//	Rx(a) = [  cos(a/2)   -i·sin(a/2) ]
//	        [ -i·sin(a/2)   cos(a/2)  ]
//
// Any finite real angle is accepted; NaN or ±Inf yields ErrNonFiniteAngle.
//
// Complexity: O(1).
func RotationX(angle float64) (Operator, error) {
	if !isFinite(angle) {
		return Operator{}, ErrNonFiniteAngle
	}
	c := complex(math.Cos(angle/2), 0)
	s := complex(0, -math.Sin(angle/2))

	return Operator{
		{c, s},
		{s, c},
	}, nil
}

// RotationZ returns the rotation about the Z axis by angle radians:
//
//	Rz(a) = [ e^(-i·a/2)      0      ]
//	        [     0       e^(i·a/2)  ]
//
// Any finite real angle is accepted; NaN or ±Inf yields ErrNonFiniteAngle.
//
// Complexity: O(1).
func RotationZ(angle float64) (Operator, error) {
	if !isFinite(angle) {
		return Operator{}, ErrNonFiniteAngle
	}
	phase := cmplx.Exp(complex(0, angle/2))

	return Operator{
		{cmplx.Conj(phase), 0},
		{0, phase},
	}, nil
}

// isFinite reports whether x is neither NaN nor ±Inf.
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
