package pvt_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/petrolab/gonodal/internal/pvt"
)

func TestEstimateOilRejectsNonPositivePressure(t *testing.T) {
	_, err := pvt.EstimateOil(0, 180, 35, 0.65, 2200)
	require.Error(t, err)

	_, err = pvt.EstimateOil(-50, 180, 35, 0.65, 2200)
	require.Error(t, err)
}

func TestEstimateOilBundle(t *testing.T) {
	props, err := pvt.EstimateOil(2000, 180, 35, 0.65, 2500)
	require.NoError(t, err)

	require.Greater(t, props.Rs, 0.0)
	require.Greater(t, props.Bo, 1.0, "live oil swells above stock tank volume")
	require.Less(t, props.Bo, 2.0)
	require.Greater(t, props.MuO, 0.0)
}

func TestEstimateOilCapsRsAtBubblePoint(t *testing.T) {
	atBubble, err := pvt.EstimateOil(1500, 180, 35, 0.65, 1500)
	require.NoError(t, err)

	above, err := pvt.EstimateOil(3000, 180, 35, 0.65, 1500)
	require.NoError(t, err)

	require.InDelta(t, atBubble.Rs, above.Rs, 1e-9, "no further gas dissolves above the bubble point")
}

func TestZFactorInsideEnvelope(t *testing.T) {
	z, warnings, err := pvt.ZFactor(2000, 150, 0.65)
	require.NoError(t, err)
	require.Empty(t, warnings)
	require.Greater(t, z, 0.4)
	require.Less(t, z, 1.2)
}

func TestZFactorClampsBelowTprEnvelope(t *testing.T) {
	// Tpr < 1 for a 0.65-gravity gas at -150 °F.
	z, warnings, err := pvt.ZFactor(2000, -150, 0.65)
	require.NoError(t, err)
	require.Equal(t, 1.0, z)
	require.NotEmpty(t, warnings)
}

func TestZFactorClampsAbovePprEnvelope(t *testing.T) {
	z, warnings, err := pvt.ZFactor(20000, 150, 0.65)
	require.NoError(t, err)
	require.Equal(t, 1.0, z)
	require.NotEmpty(t, warnings)
}

func TestZFactorRejectsNonPositivePressure(t *testing.T) {
	_, _, err := pvt.ZFactor(0, 150, 0.65)
	require.Error(t, err)
}

func TestEstimateGasBundle(t *testing.T) {
	props, err := pvt.EstimateGas(2000, 150, 0.65)
	require.NoError(t, err)
	require.Empty(t, props.Warnings)

	require.Greater(t, props.RhoG, 1.0)
	require.Less(t, props.RhoG, 20.0)
	require.Greater(t, props.MuG, 0.005)
	require.Less(t, props.MuG, 0.1)
	require.Greater(t, props.Bg, 0.0)
}

func TestGasDensityTracksPressure(t *testing.T) {
	lo, err := pvt.EstimateGas(500, 150, 0.65)
	require.NoError(t, err)
	hi, err := pvt.EstimateGas(3000, 150, 0.65)
	require.NoError(t, err)

	require.Greater(t, hi.RhoG, lo.RhoG)
}

func TestOilSpecificGravity(t *testing.T) {
	// 10 °API is the density of water by definition.
	require.InDelta(t, 1.0, pvt.OilSpecificGravity(10), 1e-9)
	require.Less(t, pvt.OilSpecificGravity(35), 1.0)
}
