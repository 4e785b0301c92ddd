package cmd

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/petrolab/gonodal/internal/caseio"
	"github.com/petrolab/gonodal/internal/diagram"
	"github.com/petrolab/gonodal/internal/nodal"
	"github.com/spf13/cobra"
)

var (
	nodalCaseFile  string
	nodalGridSize  int
	nodalTolerance float64
	nodalPlotFile  string
	nodalASCII     bool
)

var nodalRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a full nodal analysis from a case file",
	Long: `Load a YAML case file (fluid, survey, completion, IPR model, VLP
settings, optional constraints) and solve for the operating point.

Examples:
  gonodal nodal run --case well-a.yaml
  gonodal nodal run --case well-a.yaml --plot nodal.png --ascii
  gonodal nodal run --case well-a.yaml --grid 101 --tolerance 0.5`,
	RunE: runNodal,
}

func init() {
	nodalCmd.AddCommand(nodalRunCmd)

	nodalRunCmd.Flags().StringVar(&nodalCaseFile, "case", "", "Case file (YAML) [required]")
	nodalRunCmd.Flags().IntVar(&nodalGridSize, "grid", 51, "Rate grid resolution")
	nodalRunCmd.Flags().Float64Var(&nodalTolerance, "tolerance", 1.0, "Convergence tolerance (psi)")
	nodalRunCmd.Flags().StringVar(&nodalPlotFile, "plot", "", "Export curve image (.png/.svg/.pdf)")
	nodalRunCmd.Flags().BoolVar(&nodalASCII, "ascii", false, "Draw both curves in the terminal")

	nodalRunCmd.MarkFlagRequired("case")
}

func runNodal(cmd *cobra.Command, args []string) error {
	c, err := caseio.Load(nodalCaseFile)
	if err != nil {
		return err
	}

	opts := nodal.Options{GridPoints: nodalGridSize, Tolerance: nodalTolerance}
	result, err := nodal.Analyze(c.IPR, c.VLP, c.Fluid, c.Survey, c.Completion, c.Constraints, opts)

	var verr *nodal.ValidationError
	if errors.As(err, &verr) {
		fmt.Println()
		fmt.Println("VALIDATION FAILED:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		for _, e := range verr.Result.Errors {
			fmt.Printf("  ✗ %s\n", e)
		}
		printWarnings(verr.Result.Warnings)
		os.Exit(1)
	}
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     NODAL ANALYSIS — %s\n", caseName(c.Name))
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if nodalASCII {
		fmt.Println(diagram.RenderNodalCurves(result.IPR.Pressures, result.VLP.Pressures))
		fmt.Println()
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Inflow model:\t%s\n", c.IPR.Type)
	fmt.Fprintf(w, "  Correlation:\t%s\n", c.VLP.Correlation)
	fmt.Fprintf(w, "  Grid points:\t%d\n", len(result.IPR.Rates))
	fmt.Fprintf(w, "  Iterations:\t%d\n", result.Iterations)
	convergedMark := "✓"
	if !result.Converged {
		convergedMark = "✗ (closest approach)"
	}
	fmt.Fprintf(w, "  Converged:\t%s\n", convergedMark)
	w.Flush()
	fmt.Println()

	fmt.Println(diagram.SummaryBox("OPERATING POINT", []string{
		fmt.Sprintf("Rate              %.1f", result.Operating.Rate),
		fmt.Sprintf("Pwf               %.1f psia", result.Operating.Pwf),
		fmt.Sprintf("Wellhead pressure %.1f psia", result.Operating.WellheadPressure),
	}))

	printWarnings(result.Warnings)

	if nodalPlotFile != "" {
		err := diagram.ExportCurvePlot("Nodal Analysis", []diagram.Series{
			{Name: "IPR", Rates: result.IPR.Rates, Pressures: result.IPR.Pressures},
			{Name: "VLP", Rates: result.VLP.Rates, Pressures: result.VLP.Pressures},
		}, &diagram.Marker{
			Label: fmt.Sprintf("q=%.0f", result.Operating.Rate),
			Rate:  result.Operating.Rate,
			Pwf:   result.Operating.Pwf,
		}, nodalPlotFile)
		if err != nil {
			return err
		}
		fmt.Printf("  Curve image written to %s\n\n", nodalPlotFile)
	}
	return nil
}

func caseName(name string) string {
	if name == "" {
		return "unnamed case"
	}
	return name
}
