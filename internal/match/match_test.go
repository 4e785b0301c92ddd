package match_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/petrolab/gonodal/internal/match"
	"github.com/petrolab/gonodal/internal/pvt"
	"github.com/petrolab/gonodal/internal/vlp"
	"github.com/petrolab/gonodal/internal/wellbore"
)

func testFluid() pvt.Fluid {
	return pvt.Fluid{
		Kind:        pvt.Oil,
		API:         35,
		GasGravity:  0.65,
		GOR:         400,
		BubblePoint: 2200,
		Temperature: 200,
		Pressure:    3000,
		PVT:         pvt.Properties{RhoO: 53},
	}
}

func testSettings() vlp.Settings {
	return vlp.Settings{
		Correlation:         vlp.BeggsBrill,
		WellheadPressure:    250,
		WellheadTemperature: 80,
		Temperature:         vlp.TemperatureModel{Kind: vlp.TempSimple, Gradient: 0.015},
	}
}

func testSurvey() wellbore.Survey { return wellbore.Vertical(8000) }

func testCompletion() wellbore.Completion {
	return wellbore.Completion{TubingID: 2.441, Roughness: 0.0006}
}

// syntheticPoints generates "observed" tests by traversing with a known
// holdup bias, so a correct fit can drive the residuals toward zero.
func syntheticPoints(t *testing.T, holdupBias float64) []match.TestPoint {
	t.Helper()

	s := testSettings()
	s.HoldupTuning = holdupBias
	segments, err := wellbore.BuildSegments(testSurvey(), testCompletion())
	require.NoError(t, err)

	var points []match.TestPoint
	for _, tc := range []struct{ rate, whp float64 }{
		{300, 200}, {600, 350}, {900, 500},
	} {
		obs := s
		obs.WellheadPressure = tc.whp
		it, err := vlp.NewIntegrator(obs, testFluid(), segments)
		require.NoError(t, err)
		state, _, err := it.Traverse(tc.rate)
		require.NoError(t, err)
		points = append(points, match.TestPoint{
			Rate:             tc.rate,
			Pwf:              state.Pressure,
			WellheadPressure: tc.whp,
		})
	}
	return points
}

func TestFitImprovesOverBaseline(t *testing.T) {
	points := syntheticPoints(t, 1.4)

	result, err := match.Fit(testSettings(), testFluid(), testSurvey(), testCompletion(), points)
	require.NoError(t, err)

	require.LessOrEqual(t, result.RMSE, result.BaselineRMSE,
		"fitting must never degrade the match")
	require.Less(t, result.RMSE, result.BaselineRMSE*0.5,
		"a recoverable bias should be substantially fitted out")
	require.Greater(t, result.HoldupBias, 1.0,
		"observations were generated with a heavier holdup")
	require.Len(t, result.Residuals, len(points))
	require.NotNil(t, result.Fitted)
	require.Greater(t, result.R2, 0.9)
}

func TestFitRecoversUnitBiases(t *testing.T) {
	// Observations generated with the baseline settings themselves: the
	// optimizer has nothing to improve and must stay at the baseline.
	points := syntheticPoints(t, 1.0)

	result, err := match.Fit(testSettings(), testFluid(), testSurvey(), testCompletion(), points)
	require.NoError(t, err)

	require.LessOrEqual(t, result.RMSE, result.BaselineRMSE)
	require.Less(t, result.RMSE, 1.0, "baseline already matches")
}

func TestFitDeterminism(t *testing.T) {
	points := syntheticPoints(t, 1.3)

	first, err := match.Fit(testSettings(), testFluid(), testSurvey(), testCompletion(), points)
	require.NoError(t, err)
	second, err := match.Fit(testSettings(), testFluid(), testSurvey(), testCompletion(), points)
	require.NoError(t, err)

	require.Equal(t, first.FrictionBias, second.FrictionBias)
	require.Equal(t, first.HoldupBias, second.HoldupBias)
	require.Equal(t, first.TemperatureBias, second.TemperatureBias)
	require.Equal(t, first.RMSE, second.RMSE)
}

func TestFitRequiresTestPoints(t *testing.T) {
	_, err := match.Fit(testSettings(), testFluid(), testSurvey(), testCompletion(), nil)
	require.Error(t, err)
}
