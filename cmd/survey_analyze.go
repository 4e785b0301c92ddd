package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/petrolab/gonodal/internal/wellbore"
	"github.com/spf13/cobra"
)

var surveyAnalyzeFile string

var surveyAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a deviation survey workbook",
	Long: `Load a deviation survey from an xlsx workbook (columns: MD, TVD,
inclination, azimuth; first row is a header) and report trajectory
statistics including dog-leg severity.

Examples:
  gonodal survey analyze --file well-a.xlsx`,
	RunE: runSurveyAnalyze,
}

func init() {
	surveyCmd.AddCommand(surveyAnalyzeCmd)

	surveyAnalyzeCmd.Flags().StringVarP(&surveyAnalyzeFile, "file", "f", "", "Survey workbook (xlsx) [required]")
	surveyAnalyzeCmd.MarkFlagRequired("file")
}

func runSurveyAnalyze(cmd *cobra.Command, args []string) error {
	survey, err := wellbore.LoadSurveyXLSX(surveyAnalyzeFile)
	if err != nil {
		return err
	}
	stats := survey.Stats()

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     DEVIATION SURVEY ANALYSIS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Stations:\t%d\n", stats.PointCount)
	fmt.Fprintf(w, "  Total depth (MD):\t%.1f ft\n", stats.TotalDepth)
	fmt.Fprintf(w, "  True vertical depth:\t%.1f ft\n", stats.TVD)
	fmt.Fprintf(w, "  Max inclination:\t%.2f°\n", stats.MaxInclination)
	fmt.Fprintf(w, "  Max DLS:\t%.2f °/100ft\n", stats.MaxDLS)
	fmt.Fprintf(w, "  Avg DLS:\t%.2f °/100ft\n", stats.AvgDLS)
	fmt.Fprintf(w, "  Horizontal displacement:\t%.1f ft\n", stats.Displacement)
	fmt.Fprintf(w, "  Closure azimuth:\t%.1f°\n", stats.ClosureAzimuth)
	w.Flush()
	fmt.Println()
	return nil
}
