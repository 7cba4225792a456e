// Shared helpers for qecho commands: parameter resolution (flags over
// config over defaults) and sweep execution.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rhea-modey/QuantumEcho/echo"
)

// runParams holds one resolved sweep configuration.
type runParams struct {
	theta   float64
	from    float64
	to      float64
	samples int
	workers int
}

// resolveParams merges CLI flags over config values over defaults.
// Only flags the user actually changed override the config.
func resolveParams(cmd *cobra.Command) (runParams, error) {
	v, err := loadConfig(configFile)
	if err != nil {
		return runParams{}, err
	}

	p := runParams{
		theta:   v.GetFloat64(cfgKeyTheta),
		from:    v.GetFloat64(cfgKeyFrom),
		to:      v.GetFloat64(cfgKeyTo),
		samples: v.GetInt(cfgKeySamples),
		workers: v.GetInt(cfgKeyWorkers),
	}

	flags := cmd.Flags()
	if flags.Changed("theta") {
		p.theta, _ = flags.GetFloat64("theta")
	}
	if flags.Changed("from") {
		p.from, _ = flags.GetFloat64("from")
	}
	if flags.Changed("to") {
		p.to, _ = flags.GetFloat64("to")
	}
	if flags.Changed("samples") {
		p.samples, _ = flags.GetInt("samples")
	}
	if flags.Changed("workers") {
		p.workers, _ = flags.GetInt("workers")
	}

	return p, nil
}

// addSweepFlags registers the shared sweep parameter flags on a command.
func addSweepFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("theta", 0, "forward evolution angle in radians (default pi/3)")
	cmd.Flags().Float64("from", 0, "first perturbation sample in radians (default 0)")
	cmd.Flags().Float64("to", 0, "last perturbation sample in radians (default pi)")
	cmd.Flags().Int("samples", 0, "number of evenly spaced perturbation samples (default 50)")
	cmd.Flags().Int("workers", 0, "parallel evaluators; 1 = sequential (default 1)")
}

// runSweep builds the sample grid and evaluates the echo sweep for the
// resolved parameters.
func runSweep(p runParams) ([]echo.Point, error) {
	deltas, err := echo.Linspace(p.from, p.to, p.samples)
	if err != nil {
		return nil, fmt.Errorf("build sample grid: %w", err)
	}

	opts := echo.DefaultOptions()
	opts.Workers = p.workers
	points, err := echo.Sweep(p.theta, deltas, &opts)
	if err != nil {
		return nil, fmt.Errorf("run sweep: %w", err)
	}

	return points, nil
}
