package cmd

import (
	"fmt"
	"os"

	"github.com/petrolab/gonodal/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gonodal",
	Short: "Well Nodal Analysis Tool",
	Long: `gonodal - Go Nodal Analysis for Single Wells

A CLI tool for steady-state well deliverability analysis: it couples a
reservoir inflow (IPR) model with a wellbore multiphase pressure
traverse (VLP) and solves for the operating point.

This tool helps production engineers perform:
  - Inflow performance curves (Vogel, Fetkovich, Darcy-linear, gas deliverability)
  - Vertical lift performance traverses with selectable friction correlations
  - Nodal analysis (IPR/VLP intersection) with constraint checks
  - Correlation matching against well test data
  - Deviation survey statistics and dog-leg severity`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gonodal v%-47s║\n", version.Version)
		fmt.Println("  ║   Go Nodal Analysis for Single Wells                      ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for well deliverability analysis coupling")
		fmt.Println("  reservoir inflow with wellbore outflow.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • IPR curves for four inflow models")
		fmt.Println("    • Multiphase pressure traverse (Beggs–Brill family)")
		fmt.Println("    • Operating point search with constraint annotation")
		fmt.Println("    • Bias-factor calibration against test points")
		fmt.Println("    • Survey import from xlsx and trajectory statistics")
		fmt.Println()
		fmt.Println("  Use 'gonodal --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
