// Package main provides the qecho CLI: it runs quantum-echo sweeps and
// renders the decay curve, acting as the config and plotting
// collaborator around the pure echo/ and qubit/ packages.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// configFile is set by the --config flag.
var configFile string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "qecho",
	Short: "qecho simulates single-qubit quantum echo decay",
	Long: `qecho evolves the |0> state forward through U(theta), applies a
Z-axis perturbation V(delta), evolves back through the inverse of U, and
measures how much probability returns. Sweeping delta over a grid traces
the characteristic echo-decay curve.

Defaults (theta=pi/3, 50 samples over [0, pi]) can be overridden per run
with flags or persistently via a .qecho.yaml config file.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: .qecho.yaml in . or $HOME)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(plotCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("qecho v0.1.0")
	},
}
