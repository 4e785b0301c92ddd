package cmd

import (
	"github.com/spf13/cobra"
)

var nodalCmd = &cobra.Command{
	Use:   "nodal",
	Short: "Nodal analysis commands",
	Long: `Couple a reservoir inflow model with a wellbore pressure traverse
and solve for the operating point where the two curves meet.`,
}

func init() {
	rootCmd.AddCommand(nodalCmd)
}
