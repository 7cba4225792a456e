package echo_test

import (
	"fmt"
	"math"

	"github.com/rhea-modey/QuantumEcho/echo"
)

// ExampleAmplitude evaluates a single echo: unperturbed the state fully
// returns, at δ = π/2 roughly half the probability survives.
func ExampleAmplitude() {
	perfect, _ := echo.Amplitude(math.Pi/3, 0)
	kicked, _ := echo.Amplitude(math.Pi/3, math.Pi/2)

	fmt.Printf("delta=0    amplitude=%.4f\n", perfect)
	fmt.Printf("delta=π/2  amplitude=%.4f\n", kicked)
	// Output:
	// delta=0    amplitude=1.0000
	// delta=π/2  amplitude=0.5017
}

// ExampleSweep runs a three-point sweep and prints the decay, in input
// order, ready for a plotting surface.
func ExampleSweep() {
	points, err := echo.Sweep(math.Pi/3, []float64{0, math.Pi / 2, math.Pi}, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, p := range points {
		fmt.Printf("%.4f %.4f\n", p.Delta, p.Amplitude)
	}
	// Output:
	// 0.0000 1.0000
	// 1.5708 0.5017
	// 3.1416 0.0034
}

// ExampleLinspace builds the reference perturbation grid end points.
func ExampleLinspace() {
	deltas, _ := echo.Linspace(0, math.Pi, 5)
	for _, d := range deltas {
		fmt.Printf("%.4f ", d)
	}
	fmt.Println()
	// Output:
	// 0.0000 0.7854 1.5708 2.3562 3.1416
}
