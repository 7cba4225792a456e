// Package quantumecho simulates "quantum echo" decay on a single qubit:
// evolve a reference state forward, perturb it, evolve backward, and
// measure how much probability returns as the perturbation grows.
//
// 🚀 What is a quantum echo?
//
//	Starting from |0⟩, apply a forward evolution U(θ), a small
//	perturbation V(δ), and the inverse evolution U†(θ). A perfect echo
//	(δ = 0) returns the state exactly; a growing δ dephases the state
//	and the return probability |⟨0|U†VU|0⟩|² decays. Sweeping δ traces
//	the characteristic echo-decay curve.
//
// ✨ What the module provides:
//
//   - qubit/ — exact 2×2 unitary arithmetic: axis rotations, composition,
//     conjugate transpose, state evolution, unitarity & norm validators
//   - echo/  — the echo circuit U†∘V∘U, the return-probability Amplitude,
//     and an ordered Sweep over perturbation samples
//   - cmd/qecho — a small CLI that runs sweeps and plots the decay curve
//     in the terminal
//
// Everything is deterministic, pure-Go, constant-size arithmetic: no
// randomness, no I/O in the library packages, no hidden state.
//
// Quick start:
//
//	deltas, _ := echo.Linspace(0, math.Pi, 50)
//	points, _ := echo.Sweep(math.Pi/3, deltas, nil)
//	// points[i] = {Delta, Amplitude}, ready for plotting.
//
//	go get github.com/rhea-modey/QuantumEcho
package quantumecho
