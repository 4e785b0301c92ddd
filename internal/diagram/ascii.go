package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// RenderCurve draws a single rate-pressure curve in the terminal.
func RenderCurve(pressures []float64, caption string) string {
	return asciigraph.Plot(pressures,
		asciigraph.Height(15),
		asciigraph.Width(60),
		asciigraph.Caption(caption),
	)
}

// RenderNodalCurves draws the inflow and outflow curves on a shared
// axis. Rates run left to right; the crossing of the two traces is the
// operating point.
func RenderNodalCurves(iprPressures, vlpPressures []float64) string {
	return asciigraph.PlotMany(
		[][]float64{iprPressures, vlpPressures},
		asciigraph.Height(15),
		asciigraph.Width(60),
		asciigraph.Caption("IPR (falling) vs VLP (rising) — pressure (psia) over rate grid"),
	)
}

// SummaryBox renders a titled box of result lines.
func SummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
