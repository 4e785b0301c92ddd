package match

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMeanAbsPercentError(t *testing.T) {
	points := []TestPoint{
		{Rate: 300, Pwf: 2000},
		{Rate: 600, Pwf: 1000},
	}
	residuals := []float64{100, -50}

	// (100/2000 + 50/1000) / 2 = 5%
	require.InDelta(t, 5.0, meanAbsPercentError(points, residuals), 1e-9)
}

func TestMeanAbsPercentErrorSkipsZeroObservations(t *testing.T) {
	points := []TestPoint{
		{Rate: 300, Pwf: 2000},
		{Rate: 600, Pwf: 0},
	}
	residuals := []float64{100, 400}

	// The zero-pwf point is excluded from the average, not counted as a
	// free pass in the denominator.
	require.InDelta(t, 5.0, meanAbsPercentError(points, residuals), 1e-9)
}

func TestMeanAbsPercentErrorAllZeroObservations(t *testing.T) {
	points := []TestPoint{{Rate: 300, Pwf: 0}}
	require.InDelta(t, 0, meanAbsPercentError(points, []float64{100}), 1e-9)
}
