package nodal_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/petrolab/gonodal/internal/ipr"
	"github.com/petrolab/gonodal/internal/nodal"
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

func testCompletion() wellbore.Completion {
	return wellbore.Completion{TubingID: 2.441, Roughness: 0.0006}
}

func TestAnalyzeFindsOperatingPoint(t *testing.T) {
	// A linear inflow that sweeps from 3000 psia down to zero must cross
	// the outflow curve somewhere inside the grid.
	model := ipr.Model{Type: ipr.DarcyLinear, ReservoirPressure: 3000, ProductivityIndex: 0.5}

	result, err := nodal.Analyze(model, testSettings(), testFluid(),
		wellbore.Vertical(8000), testCompletion(), nil, nodal.DefaultOptions())
	require.NoError(t, err)

	require.True(t, result.Converged)
	require.Greater(t, result.Operating.Rate, 0.0)
	require.Less(t, result.Operating.Rate, model.MaxRate())
	require.Greater(t, result.Operating.Pwf, 0.0)
	require.Less(t, result.Operating.Pwf, model.ReservoirPressure)
	require.InDelta(t, 250, result.Operating.WellheadPressure, 1e-9)
	require.Len(t, result.IPR.Rates, nodal.DefaultOptions().GridPoints)
	require.Len(t, result.VLP.Rates, nodal.DefaultOptions().GridPoints)

	// The resolved point sits on the inflow curve: recomputing pwf from
	// the model at the operating rate agrees to interpolation accuracy.
	require.InDelta(t, model.Pressure(result.Operating.Rate), result.Operating.Pwf, 5.0)
}

func TestAnalyzeClosestApproachWhenCurvesDoNotCross(t *testing.T) {
	// A Vogel curve floored at 2200 psia stays above this well's outflow
	// curve everywhere, so no intersection exists in the grid.
	model := ipr.Model{
		Type:              ipr.Vogel,
		ReservoirPressure: 3000,
		BubblePoint:       2200,
		ProductivityIndex: 0.5,
	}

	result, err := nodal.Analyze(model, testSettings(), testFluid(),
		wellbore.Vertical(8000), testCompletion(), nil, nodal.DefaultOptions())
	require.NoError(t, err)

	require.False(t, result.Converged)
	require.NotEmpty(t, result.Warnings)
}

func TestAnalyzeRejectsInvalidCase(t *testing.T) {
	fluid := testFluid()
	fluid.PVT.RhoO = 0 // oil well without oil density

	model := ipr.Model{Type: ipr.DarcyLinear, ReservoirPressure: 3000, ProductivityIndex: 0.5}
	_, err := nodal.Analyze(model, testSettings(), fluid,
		wellbore.Vertical(8000), testCompletion(), nil, nodal.DefaultOptions())

	var verr *nodal.ValidationError
	require.True(t, errors.As(err, &verr))
	require.False(t, verr.Result.Valid)
}

func TestAnalyzeConstraintAnnotations(t *testing.T) {
	model := ipr.Model{Type: ipr.DarcyLinear, ReservoirPressure: 3000, ProductivityIndex: 0.5}
	constraints := &nodal.Constraints{RateLimit: 1, WHPLimit: 100}

	result, err := nodal.Analyze(model, testSettings(), testFluid(),
		wellbore.Vertical(8000), testCompletion(), constraints, nodal.DefaultOptions())
	require.NoError(t, err)

	joined := strings.Join(result.Warnings, "\n")
	require.Contains(t, joined, "rate_limit")
	require.Contains(t, joined, "whp_limit")
}

func TestValidateCaseOilWellNeedsOilDensity(t *testing.T) {
	fluid := testFluid()
	fluid.PVT.RhoO = 0
	model := ipr.Model{Type: ipr.DarcyLinear, ReservoirPressure: 3000, ProductivityIndex: 0.5}

	res := nodal.ValidateCase(fluid, wellbore.Vertical(8000), testCompletion(), model)
	require.False(t, res.Valid)
	require.Contains(t, strings.Join(res.Errors, "\n"), "fluid.pvt.rho_o")
}

func TestValidateCaseWarningsDoNotBlock(t *testing.T) {
	fluid := testFluid()
	completion := testCompletion()
	completion.Roughness = 0 // defaulted, warn only
	model := ipr.Model{Type: ipr.DarcyLinear, ReservoirPressure: 3000, ProductivityIndex: 0.5}

	res := nodal.ValidateCase(fluid, wellbore.Vertical(8000), completion, model)
	require.True(t, res.Valid)
	require.NotEmpty(t, res.Warnings)
}

func TestValidateCaseCollectsAllErrors(t *testing.T) {
	fluid := testFluid()
	fluid.Pressure = 0
	fluid.WaterCut = 1.5
	model := ipr.Model{Type: "nonsense"}

	res := nodal.ValidateCase(fluid, wellbore.Survey{}, wellbore.Completion{}, model)
	require.False(t, res.Valid)
	require.GreaterOrEqual(t, len(res.Errors), 4)
}
