package cmd

import (
	"github.com/spf13/cobra"
)

var surveyCmd = &cobra.Command{
	Use:   "survey",
	Short: "Deviation survey commands",
	Long:  `Import and analyze wellbore deviation surveys.`,
}

func init() {
	rootCmd.AddCommand(surveyCmd)
}
