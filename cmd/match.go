package cmd

import (
	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Correlation matching commands",
	Long: `Fit VLP correlation bias factors (friction, holdup, temperature)
to observed well test points.`,
}

func init() {
	rootCmd.AddCommand(matchCmd)
}
