// Package echo computes quantum-echo return probabilities for a single
// qubit and sweeps them over a range of perturbation strengths.
//
// 🚀 The experiment:
//
//	Fix a forward evolution U(θ) — here the fixed decomposition
//	Rx(θ), then Rz(θ/2), then Rx(θ/2) — and a Z-axis perturbation
//	V(δ). The echo circuit U† ∘ V ∘ U takes |0⟩ forward, kicks it,
//	and brings it back; the amplitude |⟨0|U†VU|0⟩|² measures how much
//	of the state survives the round trip. At δ = 0 the echo is perfect
//	(amplitude 1); growing δ dephases it.
//
// ✨ Key entry points:
//
//   - Amplitude(θ, δ)     — one return probability, pure, in [0, 1]
//   - Sweep(θ, δs, opts)  — ordered (δ, amplitude) pairs over a sample
//     grid; sequential by default, optional worker fan-out via Options
//   - Linspace(a, b, n)   — evenly spaced inclusive sample grid
//
// ⚙️ Usage:
//
//	deltas, err := echo.Linspace(0, math.Pi, 50)
//	points, err := echo.Sweep(math.Pi/3, deltas, nil)
//	for _, p := range points {
//	  fmt.Println(p.Delta, p.Amplitude)
//	}
//
// A sweep either fully succeeds or fails atomically: any non-finite
// angle aborts before evaluation and no partial results are returned.
//
// Complexity: O(1) per amplitude, O(len(deltas)) per sweep.
package echo
