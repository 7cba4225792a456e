// Sweep command: evaluate the echo decay over the perturbation grid and
// emit (delta, amplitude) pairs as a table, CSV, or JSON.
package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/rhea-modey/QuantumEcho/echo"
)

var (
	sweepFormat string
	sweepOutput string
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Sweep the perturbation and print echo amplitudes",
	Long: `Sweep evaluates the echo amplitude |<0|U~VU|0>|^2 for every delta on
an evenly spaced grid and prints the (delta, amplitude) pairs in grid order.

Example:
  qecho sweep
  qecho sweep --theta 1.0472 --samples 100 --format csv
  qecho sweep --format json --output run.json`,
	RunE: runSweepCmd,
}

func init() {
	addSweepFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&sweepFormat, "format", "table", "output format: table, csv, or json")
	sweepCmd.Flags().StringVar(&sweepOutput, "output", "", "write to file instead of stdout")
}

// sweepExport is the JSON artifact for one sweep run. The run id makes
// archived result files distinguishable without relying on file names.
type sweepExport struct {
	RunID  string       `json:"run_id"`
	Theta  float64      `json:"theta"`
	Points []echo.Point `json:"points"`
}

func runSweepCmd(cmd *cobra.Command, args []string) error {
	p, err := resolveParams(cmd)
	if err != nil {
		return err
	}

	points, err := runSweep(p)
	if err != nil {
		return err
	}

	out := io.Writer(os.Stdout)
	if sweepOutput != "" {
		f, err := os.Create(sweepOutput)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	switch sweepFormat {
	case "table":
		return writeTable(out, points)
	case "csv":
		return writeCSV(out, points)
	case "json":
		return writeJSON(out, p.theta, points)
	default:
		return fmt.Errorf("unknown format %q (valid: table, csv, json)", sweepFormat)
	}
}

// writeTable prints aligned delta/amplitude columns.
func writeTable(w io.Writer, points []echo.Point) error {
	if _, err := fmt.Fprintf(w, "%-12s %s\n", "delta", "amplitude"); err != nil {
		return err
	}
	for _, p := range points {
		if _, err := fmt.Fprintf(w, "%-12.6f %.9f\n", p.Delta, p.Amplitude); err != nil {
			return err
		}
	}

	return nil
}

// writeCSV emits a delta,amplitude record per sample.
func writeCSV(w io.Writer, points []echo.Point) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"delta", "amplitude"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, p := range points {
		rec := []string{
			strconv.FormatFloat(p.Delta, 'g', -1, 64),
			strconv.FormatFloat(p.Amplitude, 'g', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write csv record: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// writeJSON emits the run artifact with a fresh run id.
func writeJSON(w io.Writer, theta float64, points []echo.Point) error {
	export := sweepExport{
		RunID:  uuid.NewString(),
		Theta:  theta,
		Points: points,
	}
	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal sweep: %w", err)
	}
	if _, err := fmt.Fprintln(w, string(data)); err != nil {
		return err
	}

	return nil
}
