package caseio_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/petrolab/gonodal/internal/caseio"
	"github.com/petrolab/gonodal/internal/ipr"
	"github.com/petrolab/gonodal/internal/pvt"
	"github.com/petrolab/gonodal/internal/vlp"
)

const caseYAML = `name: well-a
fluid:
  kind: oil
  api: 35
  gas_gravity: 0.65
  gor: 400
  watercut: 0.1
  bubble_point: 2200
  temperature: 200
  pressure: 3000
  pvt:
    rho_o: 53
survey:
  points:
    - {md: 0, tvd: 0, inc: 0, azi: 0}
    - {md: 8000, tvd: 8000, inc: 0, azi: 0}
completion:
  tubing_id: 2.441
  roughness: 0.0006
ipr:
  type: vogel
  reservoir_pressure: 3000
  productivity_index: 0.5
  bubble_point: 2200
vlp:
  correlation: beggs-brill
  wellhead_pressure: 250
  wellhead_temperature: 80
  temperature:
    kind: simple
    gradient: 0.015
constraints:
  rate_limit: 900
  whp_limit: 400
test_points:
  - {rate: 300, pwf: 2600, whp: 200}
  - {rate: 600, pwf: 2450, whp: 350}
`

func TestLoadCase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "well-a.yaml")
	require.NoError(t, os.WriteFile(path, []byte(caseYAML), 0644))

	c, err := caseio.Load(path)
	require.NoError(t, err)

	require.Equal(t, "well-a", c.Name)
	require.Equal(t, pvt.Oil, c.Fluid.Kind)
	require.InDelta(t, 53, c.Fluid.PVT.RhoO, 1e-9)
	require.InDelta(t, 0.1, c.Fluid.WaterCut, 1e-9)

	require.Len(t, c.Survey.Points, 2)
	require.InDelta(t, 8000, c.Survey.TotalDepth(), 1e-9)
	require.InDelta(t, 2.441, c.Completion.TubingID, 1e-9)

	require.Equal(t, ipr.Vogel, c.IPR.Type)
	require.NoError(t, c.IPR.Validate())
	require.Equal(t, vlp.BeggsBrill, c.VLP.Correlation)
	require.Equal(t, vlp.TempSimple, c.VLP.Temperature.Kind)
	require.NoError(t, c.VLP.Validate())

	require.NotNil(t, c.Constraints)
	require.InDelta(t, 900, c.Constraints.RateLimit, 1e-9)

	require.Len(t, c.TestPoints, 2)
	require.InDelta(t, 350, c.TestPoints[1].WellheadPressure, 1e-9)
}

func TestLoadCaseMissingFile(t *testing.T) {
	_, err := caseio.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadCaseBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fluid: [unclosed"), 0644))

	_, err := caseio.Load(path)
	require.Error(t, err)
}
