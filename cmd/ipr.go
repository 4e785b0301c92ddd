package cmd

import (
	"github.com/spf13/cobra"
)

var iprCmd = &cobra.Command{
	Use:   "ipr",
	Short: "Inflow performance relationship commands",
	Long: `Commands for reservoir inflow performance curves.

Supported models: vogel, fetkovich, darcy-linear, gas-deliverability.`,
}

func init() {
	rootCmd.AddCommand(iprCmd)
}
