package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/petrolab/gonodal/internal/diagram"
	"github.com/petrolab/gonodal/internal/pvt"
	"github.com/petrolab/gonodal/internal/vlp"
	"github.com/petrolab/gonodal/internal/wellbore"
	"github.com/spf13/cobra"
)

var (
	vlpCorrelation string
	vlpWHP         float64
	vlpWHT         float64
	vlpGradient    float64
	vlpDepth       float64
	vlpSurveyFile  string
	vlpTubingID    float64
	vlpRoughness   float64
	vlpFluidKind   string
	vlpAPI         float64
	vlpGasGravity  float64
	vlpGOR         float64
	vlpWaterCut    float64
	vlpRhoO        float64
	vlpMaxRate     float64
	vlpPoints      int
	vlpPlotFile    string
	vlpASCII       bool
)

var vlpCurveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Generate a vertical lift performance curve",
	Long: `March the pressure traverse from wellhead to bottomhole for each
rate of an even grid and report the resulting outflow curve.

The well geometry comes from an xlsx deviation survey (--survey) or a
simple vertical well of the given depth (--depth).

Examples:
  # Vertical oil well, 8000 ft, 2.441 in tubing
  gonodal vlp curve --depth 8000 --tubing-id 2.441 --whp 250 \
    --kind oil --api 35 --rho-o 53 --gor 400 --max-rate 1200

  # Deviated well from a survey workbook
  gonodal vlp curve --survey well-a.xlsx --tubing-id 2.992 --whp 300 \
    --kind gas --gas-gravity 0.7 --max-rate 5000 --correlation single-phase`,
	RunE: runVLPCurve,
}

func init() {
	vlpCmd.AddCommand(vlpCurveCmd)

	vlpCurveCmd.Flags().StringVarP(&vlpCorrelation, "correlation", "c", "beggs-brill", "Friction correlation")
	vlpCurveCmd.Flags().Float64Var(&vlpWHP, "whp", 0, "Wellhead pressure (psia) [required]")
	vlpCurveCmd.Flags().Float64Var(&vlpWHT, "wht", 80, "Wellhead temperature (°F)")
	vlpCurveCmd.Flags().Float64Var(&vlpGradient, "gradient", 0.015, "Temperature gradient (°F/ft)")
	vlpCurveCmd.Flags().Float64Var(&vlpDepth, "depth", 0, "Vertical well depth (ft), ignored with --survey")
	vlpCurveCmd.Flags().StringVar(&vlpSurveyFile, "survey", "", "Deviation survey workbook (xlsx)")
	vlpCurveCmd.Flags().Float64Var(&vlpTubingID, "tubing-id", 0, "Tubing inner diameter (in) [required]")
	vlpCurveCmd.Flags().Float64Var(&vlpRoughness, "roughness", 0, "Absolute roughness (in)")
	vlpCurveCmd.Flags().StringVar(&vlpFluidKind, "kind", "oil", "Fluid kind: oil | gas | oil-gas | gas-condensate")
	vlpCurveCmd.Flags().Float64Var(&vlpAPI, "api", 0, "Oil API gravity")
	vlpCurveCmd.Flags().Float64Var(&vlpGasGravity, "gas-gravity", 0.65, "Gas specific gravity (air=1)")
	vlpCurveCmd.Flags().Float64Var(&vlpGOR, "gor", 0, "Producing GOR (scf/STB)")
	vlpCurveCmd.Flags().Float64Var(&vlpWaterCut, "watercut", 0, "Water cut (fraction)")
	vlpCurveCmd.Flags().Float64Var(&vlpRhoO, "rho-o", 0, "Oil density (lb/ft³)")
	vlpCurveCmd.Flags().Float64Var(&vlpMaxRate, "max-rate", 0, "Upper bound of the rate grid [required]")
	vlpCurveCmd.Flags().IntVar(&vlpPoints, "points", 51, "Rate grid resolution")
	vlpCurveCmd.Flags().StringVar(&vlpPlotFile, "plot", "", "Export curve image (.png/.svg/.pdf)")
	vlpCurveCmd.Flags().BoolVar(&vlpASCII, "ascii", false, "Draw the curve in the terminal")

	vlpCurveCmd.MarkFlagRequired("whp")
	vlpCurveCmd.MarkFlagRequired("tubing-id")
	vlpCurveCmd.MarkFlagRequired("max-rate")
}

func runVLPCurve(cmd *cobra.Command, args []string) error {
	survey, err := resolveSurvey(vlpSurveyFile, vlpDepth)
	if err != nil {
		return err
	}

	completion := wellbore.Completion{TubingID: vlpTubingID, Roughness: vlpRoughness}
	segments, err := wellbore.BuildSegments(survey, completion)
	if err != nil {
		return err
	}

	fluid := pvt.Fluid{
		Kind:        pvt.Kind(vlpFluidKind),
		API:         vlpAPI,
		GasGravity:  vlpGasGravity,
		GOR:         vlpGOR,
		WaterCut:    vlpWaterCut,
		Temperature: vlpWHT + vlpGradient*survey.TotalDepth(),
		Pressure:    vlpWHP,
		PVT:         pvt.Properties{RhoO: vlpRhoO},
	}

	settings := vlp.Settings{
		Correlation:         vlp.Correlation(vlpCorrelation),
		WellheadPressure:    vlpWHP,
		WellheadTemperature: vlpWHT,
		Temperature:         vlp.TemperatureModel{Kind: vlp.TempSimple, Gradient: vlpGradient},
	}

	integrator, err := vlp.NewIntegrator(settings, fluid, segments)
	if err != nil {
		return err
	}

	rates := make([]float64, vlpPoints)
	step := vlpMaxRate / float64(vlpPoints-1)
	for i := range rates {
		rates[i] = float64(i) * step
	}

	curve, err := integrator.Evaluate(rates)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     VERTICAL LIFT PERFORMANCE — %s\n", settings.Correlation)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Wellhead pressure:\t%.1f psia\n", settings.WellheadPressure)
	fmt.Fprintf(w, "  Total depth:\t%.1f ft\n", survey.TotalDepth())
	fmt.Fprintf(w, "  Segments:\t%d\n", len(segments))
	w.Flush()
	fmt.Println()

	if vlpASCII {
		fmt.Println(diagram.RenderCurve(curve.Pressures, "VLP — pwf (psia) over rate grid"))
		fmt.Println()
	}

	printCurveTable(curve.Rates, curve.Pressures, "pwf (psia)")
	printWarnings(curve.Warnings)

	if vlpPlotFile != "" {
		err := diagram.ExportCurvePlot("Vertical Lift Performance", []diagram.Series{
			{Name: "VLP", Rates: curve.Rates, Pressures: curve.Pressures},
		}, nil, vlpPlotFile)
		if err != nil {
			return err
		}
		fmt.Printf("  Curve image written to %s\n\n", vlpPlotFile)
	}
	return nil
}

// resolveSurvey loads the survey workbook when given, otherwise builds a
// vertical two-point survey.
func resolveSurvey(file string, depth float64) (wellbore.Survey, error) {
	if file != "" {
		return wellbore.LoadSurveyXLSX(file)
	}
	if depth <= 0 {
		return wellbore.Survey{}, fmt.Errorf("either --survey or a positive --depth is required")
	}
	return wellbore.Vertical(depth), nil
}

func printWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}
	fmt.Println("WARNINGS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	for _, w := range warnings {
		fmt.Printf("  ⚠ %s\n", w)
	}
	fmt.Println()
}
