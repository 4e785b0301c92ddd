package nodal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntersectExactGridCrossing(t *testing.T) {
	rates := []float64{0, 200, 400, 600, 800}
	pIPR := []float64{3000, 2750, 2500, 2250, 2000}
	pVLP := []float64{2100, 2300, 2500, 2700, 2900}

	rate, pwf, converged, iterations := intersect(rates, pIPR, pVLP, 1.0)
	require.True(t, converged)
	require.Equal(t, 400.0, rate)
	require.Equal(t, 2500.0, pwf)
	require.Greater(t, iterations, 0)
}

func TestIntersectInterpolatesBetweenGridPoints(t *testing.T) {
	rates := []float64{0, 100, 200}
	pIPR := []float64{3000, 2000, 1000}
	pVLP := []float64{1400, 1600, 1800}

	// Curves cross between 100 and 200: diff goes +400 → -800.
	rate, pwf, converged, _ := intersect(rates, pIPR, pVLP, 1.0)
	require.True(t, converged)
	require.InDelta(t, 133.33, rate, 0.01)
	require.InDelta(t, 1666.67, pwf, 0.01)
}

func TestIntersectClosestApproachWhenNoCrossing(t *testing.T) {
	rates := []float64{0, 100, 200}
	pIPR := []float64{3000, 2900, 2800}
	pVLP := []float64{1000, 1100, 1300}

	rate, _, converged, _ := intersect(rates, pIPR, pVLP, 1.0)
	require.False(t, converged)
	require.Equal(t, 200.0, rate, "smallest gap sits at the last grid point")
}

func TestRateGrid(t *testing.T) {
	grid := RateGrid(1000, 51)
	require.Len(t, grid, 51)
	require.Equal(t, 0.0, grid[0])
	require.Equal(t, 1000.0, grid[50])
	require.InDelta(t, 20.0, grid[1]-grid[0], 1e-9)
}

func TestRateGridDegenerateSizes(t *testing.T) {
	for _, n := range []int{-1, 0, 1} {
		grid := RateGrid(1000, n)
		require.Len(t, grid, DefaultOptions().GridPoints, "n=%d", n)
		require.Equal(t, 0.0, grid[0])
		require.Equal(t, 1000.0, grid[len(grid)-1])
	}
}
