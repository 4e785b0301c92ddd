package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/petrolab/gonodal/internal/caseio"
	"github.com/petrolab/gonodal/internal/diagram"
	"github.com/petrolab/gonodal/internal/match"
	"github.com/spf13/cobra"
)

var (
	matchCaseFile string
	matchPlotFile string
)

var matchFitCmd = &cobra.Command{
	Use:   "fit",
	Short: "Fit bias factors to well test points",
	Long: `Run a least-squares fit of the friction, holdup, and temperature
bias factors against the test points in a case file.

Examples:
  gonodal match fit --case well-a.yaml
  gonodal match fit --case well-a.yaml --plot matched.png`,
	RunE: runMatchFit,
}

func init() {
	matchCmd.AddCommand(matchFitCmd)

	matchFitCmd.Flags().StringVar(&matchCaseFile, "case", "", "Case file (YAML) with test_points [required]")
	matchFitCmd.Flags().StringVar(&matchPlotFile, "plot", "", "Export fitted curve image (.png/.svg/.pdf)")

	matchFitCmd.MarkFlagRequired("case")
}

func runMatchFit(cmd *cobra.Command, args []string) error {
	c, err := caseio.Load(matchCaseFile)
	if err != nil {
		return err
	}
	if len(c.TestPoints) == 0 {
		return fmt.Errorf("case file has no test_points")
	}

	result, err := match.Fit(c.VLP, c.Fluid, c.Survey, c.Completion, c.TestPoints)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     CORRELATION MATCH — %s\n", caseName(c.Name))
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("FITTED BIAS FACTORS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Friction:\t%.4f\n", result.FrictionBias)
	fmt.Fprintf(w, "  Holdup:\t%.4f\n", result.HoldupBias)
	fmt.Fprintf(w, "  Temperature:\t%.4f\n", result.TemperatureBias)
	w.Flush()
	fmt.Println()

	fmt.Println("FIT QUALITY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  RMSE:\t%.2f psi (baseline %.2f)\n", result.RMSE, result.BaselineRMSE)
	fmt.Fprintf(w, "  MAPE:\t%.2f %%\n", result.MAPE)
	fmt.Fprintf(w, "  R²:\t%.4f\n", result.R2)
	w.Flush()
	fmt.Println()

	fmt.Println("RESIDUALS (predicted − observed pwf):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Rate\tObserved\tResidual\n")
	for i, p := range c.TestPoints {
		fmt.Fprintf(w, "  %.1f\t%.1f\t%+.2f\n", p.Rate, p.Pwf, result.Residuals[i])
	}
	w.Flush()
	fmt.Println()

	printWarnings(result.Warnings)

	if matchPlotFile != "" {
		err := diagram.ExportCurvePlot("Matched VLP", []diagram.Series{
			{Name: "fitted VLP", Rates: result.Fitted.Rates, Pressures: result.Fitted.Pressures},
		}, nil, matchPlotFile)
		if err != nil {
			return err
		}
		fmt.Printf("  Curve image written to %s\n\n", matchPlotFile)
	}
	return nil
}
