// Package qubit implements exact single-qubit linear algebra: unitary
// 2×2 operators over complex128, normalized two-entry state vectors,
// axis rotations, operator composition, conjugate transpose, and
// matrix-vector evolution.
//
// 🚀 Design:
//
//   - Operator and State are small value types; every operation returns
//     a new value, nothing is mutated in place.
//   - Construction validates inputs (finite angles) up front with
//     sentinel errors; computation itself never fails.
//   - CheckUnitary / CheckNorm expose the numerical invariants
//     (U·U† = I, ‖ψ‖ = 1) with an explicit tolerance, so callers and
//     tests can assert drift-freedom instead of trusting it.
//
// ⚙️ Usage:
//
//	rx, err := qubit.RotationX(math.Pi / 2)
//	if err != nil { ... }                      // ErrNonFiniteAngle
//	net := qubit.Compose(rx, rx.Dagger())      // identity
//	psi := qubit.Evolve(net, qubit.NewZeroState())
//
// All operations are O(1) time and memory: the matrices are fixed 2×2.
package qubit
