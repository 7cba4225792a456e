// Plot command: render the echo-decay curve in the terminal.
package main

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
)

var plotHeight int

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Render the echo-decay curve in the terminal",
	Long: `Plot runs the same sweep as the sweep command and renders amplitude
against perturbation strength as an ASCII chart.

Example:
  qecho plot
  qecho plot --theta 2.0 --samples 120 --height 20`,
	RunE: runPlotCmd,
}

func init() {
	addSweepFlags(plotCmd)
	plotCmd.Flags().IntVar(&plotHeight, "height", 12, "chart height in rows")
}

func runPlotCmd(cmd *cobra.Command, args []string) error {
	p, err := resolveParams(cmd)
	if err != nil {
		return err
	}

	points, err := runSweep(p)
	if err != nil {
		return err
	}

	amps := make([]float64, len(points))
	for i, pt := range points {
		amps[i] = pt.Amplitude
	}

	chart := asciigraph.Plot(amps,
		asciigraph.Height(plotHeight),
		asciigraph.Precision(3),
		asciigraph.Caption(fmt.Sprintf(
			"echo amplitude |<0|U~VU|0>|^2 vs perturbation delta in [%.4f, %.4f], theta=%.4f",
			p.from, p.to, p.theta)),
	)
	fmt.Println(chart)

	return nil
}
