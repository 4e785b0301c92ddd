package cmd

import (
	"github.com/spf13/cobra"
)

var vlpCmd = &cobra.Command{
	Use:   "vlp",
	Short: "Vertical lift performance commands",
	Long: `Commands for wellbore pressure traverses.

Supported correlations: beggs-brill, hagedorn-brown, duns-ros,
single-phase. Hagedorn-Brown and Duns-Ros currently share the
Beggs-Brill friction computation.`,
}

func init() {
	rootCmd.AddCommand(vlpCmd)
}
