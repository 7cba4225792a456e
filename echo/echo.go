package echo

import "github.com/rhea-modey/QuantumEcho/qubit"

// ForwardEvolution builds the forward evolution operator U(θ) as the
// fixed three-rotation decomposition, in application order:
//
//	Rx(θ), then Rz(θ/2), then Rx(θ/2)
//
// The decomposition is a contract, not an implementation detail:
// downstream consumers compare sweep output bit-for-bit against runs of
// the reference experiment, so the exact angle scalings must not change.
//
// Returns qubit.ErrNonFiniteAngle for NaN/±Inf theta.
func ForwardEvolution(theta float64) (qubit.Operator, error) {
	rxFull, err := qubit.RotationX(theta)
	if err != nil {
		return qubit.Operator{}, err
	}
	rzHalf, err := qubit.RotationZ(theta / 2)
	if err != nil {
		return qubit.Operator{}, err
	}
	rxHalf, err := qubit.RotationX(theta / 2)
	if err != nil {
		return qubit.Operator{}, err
	}

	return qubit.Compose(rxFull, rzHalf, rxHalf), nil
}

// Perturbation builds the perturbation operator V(δ), a Z-axis rotation
// by δ radians. V(0) is the identity: an unperturbed echo returns fully.
//
// Returns qubit.ErrNonFiniteAngle for NaN/±Inf delta.
func Perturbation(delta float64) (qubit.Operator, error) {
	return qubit.RotationZ(delta)
}

// Circuit assembles the net echo operator U†(θ) ∘ V(δ) ∘ U(θ), i.e. the
// composition, in application order, of forward evolution, perturbation,
// and inverse evolution.
//
// Returns qubit.ErrNonFiniteAngle if either angle is non-finite.
func Circuit(theta, delta float64) (qubit.Operator, error) {
	u, err := ForwardEvolution(theta)
	if err != nil {
		return qubit.Operator{}, err
	}
	v, err := Perturbation(delta)
	if err != nil {
		return qubit.Operator{}, err
	}

	return qubit.Compose(u, v, u.Dagger()), nil
}

// Amplitude computes the echo return probability
//
//	P(θ, δ) = |⟨0| U†(θ) V(δ) U(θ) |0⟩|²
//
// by evolving the reference state |0⟩ = [1, 0] through the echo circuit
// and reading the probability of the |0⟩ outcome. Pure function of its
// inputs; the result lies in [0, 1], and equals 1 (within qubit.Eps)
// whenever δ = 0 since then the circuit collapses to the identity.
//
// Returns qubit.ErrNonFiniteAngle if either angle is non-finite.
func Amplitude(theta, delta float64) (float64, error) {
	circuit, err := Circuit(theta, delta)
	if err != nil {
		return 0, err
	}

	evolved := qubit.Evolve(circuit, qubit.NewZeroState())

	return evolved.Probability(0), nil
}
