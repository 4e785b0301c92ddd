package nodal

import (
	"fmt"
	"math"

	"github.com/petrolab/gonodal/internal/ipr"
	"github.com/petrolab/gonodal/internal/pvt"
	"github.com/petrolab/gonodal/internal/vlp"
	"github.com/petrolab/gonodal/internal/wellbore"
)

// Options configures the operating-point search.
type Options struct {
	GridPoints int     // rate grid resolution over [0, MaxRate]
	Tolerance  float64 // psi; closest approach within this still converges
	MaxRate    float64 // grid upper bound; 0 means the IPR model's AOF
}

// DefaultOptions returns the reference grid resolution and tolerance.
func DefaultOptions() Options {
	return Options{GridPoints: 51, Tolerance: 1.0}
}

// Constraints are operating-envelope bounds checked against the resolved
// operating point. Violations annotate the result, they never suppress it.
type Constraints struct {
	RateLimit float64 `yaml:"rate_limit,omitempty"` // STB/d or Mscf/d
	WHPLimit  float64 `yaml:"whp_limit,omitempty"`  // psia
	PwfFloor  float64 `yaml:"pwf_floor,omitempty"`  // psia
}

// OperatingPoint is the resolved intersection of the inflow and outflow
// curves.
type OperatingPoint struct {
	Rate             float64
	Pwf              float64
	WellheadPressure float64
}

// Result wraps both curves, the operating point, and convergence
// metadata.
type Result struct {
	IPR        ipr.Result
	VLP        *vlp.Result
	Operating  OperatingPoint
	Converged  bool
	Iterations int
	Warnings   []string
}

// Analyze couples the inflow model with the pressure traverse over a
// common rate grid and locates the rate where the two curves meet. The
// validator gates all inputs; a failed validation is the only error
// path, everything else degrades to a flagged best-effort result.
func Analyze(model ipr.Model, settings vlp.Settings, fluid pvt.Fluid,
	survey wellbore.Survey, completion wellbore.Completion,
	constraints *Constraints, opts Options) (*Result, error) {

	if v := ValidateCase(fluid, survey, completion, model); !v.Valid {
		return nil, &ValidationError{Result: v}
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if opts.GridPoints < 2 {
		opts.GridPoints = DefaultOptions().GridPoints
	}
	if opts.Tolerance <= 0 {
		opts.Tolerance = DefaultOptions().Tolerance
	}

	segments, err := wellbore.BuildSegments(survey, completion)
	if err != nil {
		return nil, err
	}

	maxRate := opts.MaxRate
	if maxRate <= 0 {
		maxRate = model.MaxRate()
	}
	if maxRate <= 0 {
		return nil, fmt.Errorf("nodal: cannot derive a rate grid: model AOF is zero")
	}
	rates := RateGrid(maxRate, opts.GridPoints)

	iprCurve := model.Curve(rates)

	integrator, err := vlp.NewIntegrator(settings, fluid, segments)
	if err != nil {
		return nil, err
	}
	vlpCurve, err := integrator.Evaluate(rates)
	if err != nil {
		return nil, err
	}

	res := &Result{
		IPR:      iprCurve,
		VLP:      vlpCurve,
		Warnings: append([]string(nil), vlpCurve.Warnings...),
	}

	rate, pwf, converged, iterations := intersect(rates, iprCurve.Pressures, vlpCurve.Pressures, opts.Tolerance)
	res.Operating = OperatingPoint{
		Rate:             rate,
		Pwf:              pwf,
		WellheadPressure: settings.WellheadPressure,
	}
	res.Converged = converged
	res.Iterations = iterations
	if !converged {
		res.Warnings = append(res.Warnings,
			"nodal: inflow and outflow curves do not cross within the rate grid; reporting closest approach")
	}

	res.Warnings = append(res.Warnings, checkConstraints(res.Operating, constraints)...)
	return res, nil
}

// RateGrid returns n evenly spaced rates from 0 to maxRate inclusive.
// Grid sizes below 2 cannot bracket an intersection and fall back to the
// default resolution.
func RateGrid(maxRate float64, n int) []float64 {
	if n < 2 {
		n = DefaultOptions().GridPoints
	}
	rates := make([]float64, n)
	step := maxRate / float64(n-1)
	for i := range rates {
		rates[i] = float64(i) * step
	}
	rates[n-1] = maxRate
	return rates
}

// intersect locates the root of P_IPR − P_VLP over the grid. A sign
// change between neighbors is refined by linear interpolation; failing
// that, the closest approach is reported with converged set by the
// tolerance.
func intersect(rates, pIPR, pVLP []float64, tolerance float64) (rate, pwf float64, converged bool, iterations int) {
	n := len(rates)
	iterations = n

	for i := 0; i < n; i++ {
		diff := pIPR[i] - pVLP[i]
		if diff == 0 {
			return rates[i], pIPR[i], true, iterations
		}
		if i == 0 {
			continue
		}
		prev := pIPR[i-1] - pVLP[i-1]
		if (prev > 0) != (diff > 0) {
			// Bracketing pair: interpolate the crossing.
			t := prev / (prev - diff)
			rate = rates[i-1] + t*(rates[i]-rates[i-1])
			pwf = pIPR[i-1] + t*(pIPR[i]-pIPR[i-1])
			return rate, pwf, true, iterations + 1
		}
	}

	// No crossing: closest approach.
	best := 0
	bestGap := math.Abs(pIPR[0] - pVLP[0])
	for i := 1; i < n; i++ {
		gap := math.Abs(pIPR[i] - pVLP[i])
		if gap < bestGap {
			best, bestGap = i, gap
		}
	}
	return rates[best], pIPR[best], bestGap <= tolerance, iterations
}

// checkConstraints returns one warning per violated bound.
func checkConstraints(op OperatingPoint, c *Constraints) []string {
	if c == nil {
		return nil
	}
	var warnings []string
	if c.RateLimit > 0 && op.Rate > c.RateLimit {
		warnings = append(warnings,
			fmt.Sprintf("nodal: operating rate %.1f exceeds rate_limit %.1f", op.Rate, c.RateLimit))
	}
	if c.WHPLimit > 0 && op.WellheadPressure > c.WHPLimit {
		warnings = append(warnings,
			fmt.Sprintf("nodal: wellhead pressure %.1f exceeds whp_limit %.1f", op.WellheadPressure, c.WHPLimit))
	}
	if c.PwfFloor > 0 && op.Pwf < c.PwfFloor {
		warnings = append(warnings,
			fmt.Sprintf("nodal: flowing bottomhole pressure %.1f below pwf_floor %.1f", op.Pwf, c.PwfFloor))
	}
	return warnings
}
