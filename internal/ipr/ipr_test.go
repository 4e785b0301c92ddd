package ipr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/petrolab/gonodal/internal/ipr"
)

func vogelModel() ipr.Model {
	return ipr.Model{
		Type:              ipr.Vogel,
		ReservoirPressure: 3000,
		BubblePoint:       2200,
		ProductivityIndex: 0.5,
	}
}

func TestVogelMaxRate(t *testing.T) {
	m := vogelModel()
	// 0.5·(3000−2200) + 0.5·2200/1.8
	require.InDelta(t, 1011.11, m.MaxRate(), 0.01)
}

func TestVogelPressureAtMidRate(t *testing.T) {
	m := vogelModel()
	pwf := m.Pressure(500)
	require.Greater(t, pwf, 2200.0)
	require.Less(t, pwf, 3000.0)
}

func TestVogelEndpoints(t *testing.T) {
	m := vogelModel()
	require.InDelta(t, 3000, m.Pressure(0), 1e-9)
	require.InDelta(t, 2200, m.Pressure(m.MaxRate()), 1e-9)
	// Past AOF the curve stays floored at the bubble point.
	require.InDelta(t, 2200, m.Pressure(m.MaxRate()*2), 1e-9)
}

func TestFetkovichLinearEquivalent(t *testing.T) {
	m := ipr.Model{
		Type:              ipr.Fetkovich,
		ReservoirPressure: 3000,
		ProductivityIndex: 0.01,
		Exponent:          1.0,
	}
	require.InDelta(t, 30, m.MaxRate(), 1e-9)
	require.InDelta(t, 0, m.Pressure(30), 1e-9)
	require.InDelta(t, 1500, m.Pressure(15), 1e-9)
	require.InDelta(t, 0, m.Pressure(45), 1e-9, "past AOF reports zero")
}

func TestDarcyLinearFloor(t *testing.T) {
	m := ipr.Model{
		Type:              ipr.DarcyLinear,
		ReservoirPressure: 3000,
		ProductivityIndex: 1.0,
	}
	require.InDelta(t, 2000, m.Pressure(1000), 1e-9)
	require.InDelta(t, 0, m.Pressure(5000), 1e-9, "never negative")
}

func TestGasDeliverability(t *testing.T) {
	m := ipr.Model{
		Type:     ipr.GasDeliverability,
		A:        2500,
		B:        -0.5,
		Exponent: 1.0,
	}
	require.InDelta(t, 5000, m.MaxRate(), 1e-9)
	require.InDelta(t, 2500, m.Pressure(0), 1e-9)
	require.InDelta(t, 1500, m.Pressure(2000), 1e-9)
	require.InDelta(t, 0, m.Pressure(5000), 1e-9, "the curve reaches zero exactly at AOF")
	require.InDelta(t, 2500, m.Pressure(6000), 1e-9, "past AOF the model reports coefficient a")
}

func TestGasDeliverabilityContinuousAtAOF(t *testing.T) {
	m := ipr.Model{
		Type:     ipr.GasDeliverability,
		A:        2500,
		B:        -0.5,
		Exponent: 1.2,
	}
	qmax := m.MaxRate()
	// Approaching AOF from below the curve decays to zero; the endpoint
	// itself must not jump back up.
	require.LessOrEqual(t, m.Pressure(qmax), m.Pressure(qmax*0.98))
	require.InDelta(t, 0, m.Pressure(qmax), 1e-6)
}

func TestMonotonicityWithinAOF(t *testing.T) {
	models := []ipr.Model{
		vogelModel(),
		{Type: ipr.Fetkovich, ReservoirPressure: 3000, ProductivityIndex: 0.01, Exponent: 0.8},
		{Type: ipr.DarcyLinear, ReservoirPressure: 3000, ProductivityIndex: 0.5},
		{Type: ipr.GasDeliverability, A: 2500, B: -0.5, Exponent: 1.2},
	}
	for _, m := range models {
		qmax := m.MaxRate()
		require.Greater(t, qmax, 0.0, "model %s", m.Type)
		prev := m.Pressure(0)
		for i := 1; i <= 50; i++ {
			q := qmax * float64(i) / 50
			p := m.Pressure(q)
			require.LessOrEqual(t, p, prev+1e-9, "model %s not monotonic at q=%.2f", m.Type, q)
			require.GreaterOrEqual(t, p, 0.0, "model %s negative pressure at q=%.2f", m.Type, q)
			prev = p
		}
	}
}

func TestCurveMatchesPointwiseEvaluation(t *testing.T) {
	m := vogelModel()
	rates := []float64{0, 250, 500, 750, 1000}
	curve := m.Curve(rates)

	require.Equal(t, rates, curve.Rates)
	for i, q := range rates {
		require.Equal(t, m.Pressure(q), curve.Pressures[i])
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, vogelModel().Validate())

	bad := vogelModel()
	bad.BubblePoint = 4000
	require.Error(t, bad.Validate(), "bubble point above reservoir pressure")

	require.Error(t, ipr.Model{Type: "nonsense"}.Validate())
	require.Error(t, ipr.Model{Type: ipr.GasDeliverability, A: 2500, B: 0.5, Exponent: 1}.Validate(),
		"positive b coefficient")
}
