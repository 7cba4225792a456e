package qubit_test

import (
	"math"
	"testing"

	"github.com/rhea-modey/QuantumEcho/qubit"
)

// BenchmarkRotationX measures constructing a single rotation operator.
func BenchmarkRotationX(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := qubit.RotationX(math.Pi / 3); err != nil {
			b.Fatalf("RotationX failed: %v", err)
		}
	}
}

// BenchmarkCompose3 measures composing the three-rotation forward chain.
func BenchmarkCompose3(b *testing.B) {
	rx1, _ := qubit.RotationX(math.Pi / 3)
	rz, _ := qubit.RotationZ(math.Pi / 6)
	rx2, _ := qubit.RotationX(math.Pi / 6)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = qubit.Compose(rx1, rz, rx2)
	}
}

// BenchmarkEvolve measures a single matrix-vector application.
func BenchmarkEvolve(b *testing.B) {
	rx, _ := qubit.RotationX(math.Pi / 3)
	s := qubit.NewZeroState()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s = qubit.Evolve(rx, s)
	}
	_ = s
}
