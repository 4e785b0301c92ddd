package vlp

import (
	"fmt"
	"math"

	"github.com/petrolab/gonodal/internal/pvt"
	"github.com/petrolab/gonodal/internal/wellbore"
)

// State is the quantity triple carried across segments during a
// traverse.
type State struct {
	Pressure    float64 // psia
	Temperature float64 // °F
	Holdup      float64 // liquid volume fraction
}

// Result is a vertical lift performance curve: for each rate, the
// bottomhole pressure plus final holdup and temperature after the full
// traverse.
type Result struct {
	Rates        []float64
	Pressures    []float64
	Holdups      []float64
	Temperatures []float64
	Warnings     []string
}

// Integrator marches pressure, temperature, and holdup along a segment
// list. It holds only immutable inputs, so one Integrator may evaluate
// any number of rates in any order.
type Integrator struct {
	Settings Settings
	Fluid    pvt.Fluid
	Segments []wellbore.Segment
}

// NewIntegrator validates the inputs and builds an integrator.
func NewIntegrator(settings Settings, fluid pvt.Fluid, segments []wellbore.Segment) (*Integrator, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if len(segments) == 0 {
		return nil, fmt.Errorf("vlp: segment list is empty")
	}
	return &Integrator{Settings: settings, Fluid: fluid, Segments: segments}, nil
}

// Traverse marches top-down from wellhead conditions and returns the
// state at the bottom of the last segment. Per segment, in order:
// mixture density, hydrostatic drop, friction drop via the selected
// correlation, acceleration drop (zero, a documented simplification),
// pressure update, temperature update, holdup update.
func (it *Integrator) Traverse(q float64) (State, []string, error) {
	if q < 0 {
		return State{}, nil, fmt.Errorf("vlp: negative rate %.2f", q)
	}

	s := State{
		Pressure:    it.Settings.WellheadPressure,
		Temperature: it.wellheadTemperature(),
		Holdup:      it.holdup(),
	}

	var warnings []string
	seen := map[string]bool{}

	for _, seg := range it.Segments {
		gas, err := pvt.EstimateGas(s.Pressure, s.Temperature, it.gasGravity())
		if err != nil {
			return State{}, nil, err
		}
		for _, w := range gas.Warnings {
			if !seen[w] {
				seen[w] = true
				warnings = append(warnings, w)
			}
		}

		rhoLiq := it.liquidDensity()
		rhoMix := s.Holdup*rhoLiq + (1-s.Holdup)*gas.RhoG

		// Hydrostatic head over the vertical rise of the segment.
		dpHydro := rhoMix * seg.DeltaTVD / 144

		dpFric := it.frictionDrop(seg, s, q, rhoLiq, gas)

		// Acceleration term: zero in this formulation. Extension point
		// for correlations that resolve the kinetic-energy gradient.
		dpAccel := 0.0

		s.Pressure += dpHydro + dpFric + dpAccel
		s.Temperature = it.nextTemperature(s.Temperature, seg)
		s.Holdup = it.holdup()
	}

	return s, warnings, nil
}

// Evaluate maps Traverse over a rate array. Rate evaluations share no
// state: identical inputs always yield identical curves.
func (it *Integrator) Evaluate(rates []float64) (*Result, error) {
	res := &Result{
		Rates:        make([]float64, len(rates)),
		Pressures:    make([]float64, len(rates)),
		Holdups:      make([]float64, len(rates)),
		Temperatures: make([]float64, len(rates)),
	}
	copy(res.Rates, rates)

	seen := map[string]bool{}
	for i, q := range rates {
		state, warnings, err := it.Traverse(q)
		if err != nil {
			return nil, err
		}
		res.Pressures[i] = state.Pressure
		res.Holdups[i] = state.Holdup
		res.Temperatures[i] = state.Temperature
		for _, w := range warnings {
			if !seen[w] {
				seen[w] = true
				res.Warnings = append(res.Warnings, w)
			}
		}
	}
	return res, nil
}

// frictionDrop computes the frictional pressure loss over one segment in
// psi. Hagedorn-Brown and Duns-Ros currently delegate to the Beggs-Brill
// computation; the distinct flow-pattern physics is a known limitation,
// kept so the three correlations remain interface-compatible per segment.
func (it *Integrator) frictionDrop(seg wellbore.Segment, s State, q, rhoLiq float64, gas pvt.GasProperties) float64 {
	var rho, mu float64
	switch it.Settings.Correlation {
	case SinglePhase:
		// Phase-only properties: the dominant phase for the fluid kind.
		if it.Fluid.IsGasWell() {
			rho, mu = gas.RhoG, gas.MuG
		} else {
			rho, mu = rhoLiq, it.liquidViscosity(s)
		}
	case BeggsBrill, HagedornBrown, DunsRos:
		rho = s.Holdup*rhoLiq + (1-s.Holdup)*gas.RhoG
		mu = s.Holdup*it.liquidViscosity(s) + (1-s.Holdup)*gas.MuG
	default:
		rho = rhoLiq
		mu = it.liquidViscosity(s)
	}

	v := it.mixtureVelocity(seg, s, q, gas)
	if v == 0 || rho <= 0 || mu <= 0 {
		return 0
	}

	d := seg.InnerDiam / 12 // ft
	re := 1488 * rho * v * d / mu

	var f float64
	if re < 2100 {
		f = 64 / re
	} else {
		// Blasius smooth-pipe friction factor.
		f = 0.316 / math.Pow(re, 0.25)
	}

	dp := f * (seg.Length / d) * rho * v * v / (2 * pvt.Gc * 144)
	return dp * it.Settings.FrictionBias()
}

// mixtureVelocity returns the superficial mixture velocity (ft/s) in the
// segment bore: in-situ liquid plus free-gas volumetric rate over the
// conduit area.
func (it *Integrator) mixtureVelocity(seg wellbore.Segment, s State, q float64, gas pvt.GasProperties) float64 {
	if q == 0 {
		return 0
	}
	area := math.Pi / 4 * math.Pow(seg.InnerDiam/12, 2) // ft²

	var qTotal float64 // ft³/s
	if it.Fluid.IsGasWell() {
		// Gas wells: rate in Mscf/d.
		qTotal = q * 1000 * gas.Bg / 86400
	} else {
		oil := it.oilAt(s)
		qLiq := q * oil.Bo * 5.615 / 86400
		freeGas := math.Max(it.Fluid.GOR-oil.Rs, 0)
		qGas := q * freeGas * gas.Bg / 86400
		qTotal = qLiq + qGas
	}
	return qTotal / area
}

// nextTemperature applies the configured temperature model across one
// segment. The tuning bias scales the increment from wellhead
// temperature, not the absolute value.
func (it *Integrator) nextTemperature(current float64, seg wellbore.Segment) float64 {
	bias := it.Settings.TemperatureBias()
	switch it.Settings.Temperature.Kind {
	case TempTable:
		wht := it.wellheadTemperature()
		return wht + (lookupTemp(it.Settings.Temperature.Table, seg.EndMD)-wht)*bias
	default:
		gradient := it.Settings.Temperature.Gradient
		return current + gradient*seg.Length*bias
	}
}

// lookupTemp linearly interpolates a depth-keyed temperature table,
// clamping outside the tabulated range.
func lookupTemp(table []TempPoint, depth float64) float64 {
	if len(table) == 0 {
		return 0
	}
	if depth <= table[0].Depth {
		return table[0].Temp
	}
	for i := 1; i < len(table); i++ {
		if depth <= table[i].Depth {
			a, b := table[i-1], table[i]
			frac := (depth - a.Depth) / (b.Depth - a.Depth)
			return a.Temp + frac*(b.Temp-a.Temp)
		}
	}
	return table[len(table)-1].Temp
}

// holdup returns the liquid holdup estimate for the fluid kind. The
// constant 0.5 for oil streams is an assumption-based placeholder rather
// than a flow-pattern map; the tuning bias is the calibration handle.
func (it *Integrator) holdup() float64 {
	if it.Fluid.IsGasWell() {
		return 0
	}
	h := 0.5 * it.Settings.HoldupBias()
	return math.Max(0, math.Min(1, h))
}

func (it *Integrator) liquidDensity() float64 {
	wc := it.Fluid.WaterCut
	return (1-wc)*it.Fluid.OilDensity() + wc*it.Fluid.WaterDensity()
}

func (it *Integrator) liquidViscosity(s State) float64 {
	wc := it.Fluid.WaterCut
	return (1-wc)*it.oilAt(s).MuO + wc*it.Fluid.WaterViscosity()
}

// oilAt returns oil-phase properties at the current state, preferring
// values supplied in the PVT bag over correlation estimates.
func (it *Integrator) oilAt(s State) pvt.OilProperties {
	props := pvt.OilProperties{
		Rs:  it.Fluid.PVT.Rs,
		Bo:  it.Fluid.PVT.Bo,
		MuO: it.Fluid.PVT.MuO,
	}
	if props.Rs > 0 && props.Bo > 0 && props.MuO > 0 {
		return props
	}
	if it.Fluid.API > 0 {
		est, err := pvt.EstimateOil(s.Pressure, s.Temperature, it.Fluid.API, it.gasGravity(), it.Fluid.BubblePoint)
		if err == nil {
			if props.Rs <= 0 {
				props.Rs = est.Rs
			}
			if props.Bo <= 0 {
				props.Bo = est.Bo
			}
			if props.MuO <= 0 {
				props.MuO = est.MuO
			}
			return props
		}
	}
	if props.Bo <= 0 {
		props.Bo = 1.1
	}
	if props.MuO <= 0 {
		props.MuO = 1.0
	}
	return props
}

func (it *Integrator) gasGravity() float64 {
	if it.Fluid.GasGravity > 0 {
		return it.Fluid.GasGravity
	}
	return 0.65
}

func (it *Integrator) wellheadTemperature() float64 {
	if it.Settings.WellheadTemperature > 0 {
		return it.Settings.WellheadTemperature
	}
	return pvt.StandardTemperature
}
