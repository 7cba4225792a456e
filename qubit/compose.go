package qubit

import "math/cmplx"

// Compose chains operators in application order into a single net
// Operator: the first argument is applied first to the state, which
// makes it the rightmost factor of the matrix product. That is,
//
//	Compose(A, B, C) = C·B·A
//
// so Evolve(Compose(A, B, C), s) equals Evolve(C, Evolve(B, Evolve(A, s))).
//
// Composition is associative; composing no operators yields Identity().
// Unitarity is closed under composition, so the result of composing
// unitaries is unitary.
//
// Complexity: O(len(ops)) with constant-size matrix work per step.
func Compose(ops ...Operator) Operator {
	net := Identity()
	for _, op := range ops {
		// op is applied after everything accumulated so far, hence
		// multiplies from the left.
		net = op.Mul(net)
	}

	return net
}

// Mul returns the matrix product a·b (a applied after b).
func (a Operator) Mul(b Operator) Operator {
	var out Operator
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			out[i][j] = a[i][0]*b[0][j] + a[i][1]*b[1][j]
		}
	}

	return out
}

// Dagger returns the conjugate transpose of the operator. For a unitary
// operator this is its inverse: a.Mul(a.Dagger()) is the identity to
// within Eps.
func (a Operator) Dagger() Operator {
	var out Operator
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			out[i][j] = cmplx.Conj(a[j][i])
		}
	}

	return out
}
