package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/petrolab/gonodal/internal/diagram"
	"github.com/petrolab/gonodal/internal/ipr"
	"github.com/petrolab/gonodal/internal/nodal"
	"github.com/spf13/cobra"
)

var (
	iprModelType string
	iprPr        float64
	iprPI        float64
	iprPb        float64
	iprN         float64
	iprA         float64
	iprB         float64
	iprPoints    int
	iprPlotFile  string
	iprASCII     bool
)

var iprCurveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Generate an inflow performance curve",
	Long: `Evaluate an IPR model over an even rate grid from zero to the
model's absolute open flow potential.

Examples:
  # Vogel curve for Pr=3000 psia, Pb=2200 psia, PI=0.5 STB/d/psi
  gonodal ipr curve --model vogel --pr 3000 --pb 2200 --pi 0.5

  # Fetkovich with n=0.8, plotted to a PNG
  gonodal ipr curve --model fetkovich --pr 3000 --pi 0.01 --n 0.8 --plot ipr.png

  # Gas deliverability pwf = a + b·q^n
  gonodal ipr curve --model gas-deliverability --a 2500 --b -0.8 --n 1.0`,
	RunE: runIPRCurve,
}

func init() {
	iprCmd.AddCommand(iprCurveCmd)

	iprCurveCmd.Flags().StringVarP(&iprModelType, "model", "m", "vogel", "Model type: vogel | fetkovich | darcy-linear | gas-deliverability")
	iprCurveCmd.Flags().Float64Var(&iprPr, "pr", 0, "Reservoir pressure (psia)")
	iprCurveCmd.Flags().Float64Var(&iprPI, "pi", 0, "Productivity index")
	iprCurveCmd.Flags().Float64Var(&iprPb, "pb", 0, "Bubble point pressure (psia, vogel)")
	iprCurveCmd.Flags().Float64Var(&iprN, "n", 1.0, "Deliverability exponent")
	iprCurveCmd.Flags().Float64Var(&iprA, "a", 0, "Back-pressure coefficient a (gas)")
	iprCurveCmd.Flags().Float64Var(&iprB, "b", 0, "Back-pressure coefficient b (gas, negative)")
	iprCurveCmd.Flags().IntVar(&iprPoints, "points", 51, "Rate grid resolution")
	iprCurveCmd.Flags().StringVar(&iprPlotFile, "plot", "", "Export curve image (.png/.svg/.pdf)")
	iprCurveCmd.Flags().BoolVar(&iprASCII, "ascii", false, "Draw the curve in the terminal")
}

func runIPRCurve(cmd *cobra.Command, args []string) error {
	model := ipr.Model{
		Type:              ipr.ModelType(iprModelType),
		ReservoirPressure: iprPr,
		ProductivityIndex: iprPI,
		BubblePoint:       iprPb,
		Exponent:          iprN,
		A:                 iprA,
		B:                 iprB,
	}
	if err := model.Validate(); err != nil {
		return err
	}

	rates := nodal.RateGrid(model.MaxRate(), iprPoints)
	curve := model.Curve(rates)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     INFLOW PERFORMANCE CURVE — %s\n", model.Type)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Reservoir pressure:\t%.1f psia\n", model.ReservoirPressure)
	fmt.Fprintf(w, "  Absolute open flow:\t%.1f\n", model.MaxRate())
	fmt.Fprintf(w, "  Grid points:\t%d\n", len(rates))
	w.Flush()
	fmt.Println()

	if iprASCII {
		fmt.Println(diagram.RenderCurve(curve.Pressures, "IPR — pwf (psia) over rate grid"))
		fmt.Println()
	}

	printCurveTable(curve.Rates, curve.Pressures, "pwf (psia)")

	if iprPlotFile != "" {
		err := diagram.ExportCurvePlot("Inflow Performance", []diagram.Series{
			{Name: "IPR", Rates: curve.Rates, Pressures: curve.Pressures},
		}, nil, iprPlotFile)
		if err != nil {
			return err
		}
		fmt.Printf("  Curve image written to %s\n\n", iprPlotFile)
	}
	return nil
}

// printCurveTable prints every fifth grid point of a curve.
func printCurveTable(rates, pressures []float64, label string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Rate\t%s\n", label)
	for i := 0; i < len(rates); i += 5 {
		fmt.Fprintf(w, "  %.1f\t%.1f\n", rates[i], pressures[i])
	}
	if (len(rates)-1)%5 != 0 {
		last := len(rates) - 1
		fmt.Fprintf(w, "  %.1f\t%.1f\n", rates[last], pressures[last])
	}
	w.Flush()
	fmt.Println()
}
