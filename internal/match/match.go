// Package match fits VLP correlation bias factors to observed well test
// points by deterministic least squares.
package match

import (
	"fmt"
	"math"

	"github.com/petrolab/gonodal/internal/pvt"
	"github.com/petrolab/gonodal/internal/vlp"
	"github.com/petrolab/gonodal/internal/wellbore"
)

// TestPoint is one observed production test.
type TestPoint struct {
	Rate             float64 `yaml:"rate"`
	Pwf              float64 `yaml:"pwf"`
	WellheadPressure float64 `yaml:"whp,omitempty"`
	GOR              float64 `yaml:"gor,omitempty"`
	WaterCut         float64 `yaml:"watercut,omitempty"`
	Date             string  `yaml:"date,omitempty"`
}

// Result carries the fitted bias factors, the fit quality metrics, and a
// refit VLP curve spanning the tested rate range.
type Result struct {
	FrictionBias    float64
	HoldupBias      float64
	TemperatureBias float64

	Residuals    []float64 // predicted − observed pwf, per point
	RMSE         float64
	MAPE         float64 // mean absolute percent error
	R2           float64
	BaselineRMSE float64 // unfitted settings against the same points

	Fitted   *vlp.Result
	Warnings []string
}

// Bias bounds: factors outside this range are physically implausible and
// rejected by the objective.
const (
	biasMin = 0.05
	biasMax = 20.0
)

// Fit determines the friction, holdup, and temperature bias multipliers
// that minimize the squared deviation between traverse predictions and
// observed bottomhole pressures. The optimization is a deterministic
// Nelder-Mead simplex started at unit biases; the fitted RMSE therefore
// never exceeds the unfitted baseline.
func Fit(settings vlp.Settings, fluid pvt.Fluid, survey wellbore.Survey,
	completion wellbore.Completion, points []TestPoint) (*Result, error) {

	if len(points) == 0 {
		return nil, fmt.Errorf("match: no test points supplied")
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	segments, err := wellbore.BuildSegments(survey, completion)
	if err != nil {
		return nil, err
	}

	objective := func(x [3]float64) float64 {
		for _, v := range x {
			if v < biasMin || v > biasMax {
				return math.Inf(1)
			}
		}
		sse := 0.0
		for _, p := range points {
			pred, err := predict(settings, fluid, segments, p, x)
			if err != nil {
				return math.Inf(1)
			}
			r := pred - p.Pwf
			sse += r * r
		}
		return sse
	}

	start := [3]float64{1, 1, 1}
	baselineSSE := objective(start)

	best, bestSSE := nelderMead(objective, start)
	if bestSSE > baselineSSE {
		best, bestSSE = start, baselineSSE
	}

	res := &Result{
		FrictionBias:    best[0],
		HoldupBias:      best[1],
		TemperatureBias: best[2],
		RMSE:            math.Sqrt(bestSSE / float64(len(points))),
		BaselineRMSE:    math.Sqrt(baselineSSE / float64(len(points))),
	}

	// Residuals and percent errors at the fitted biases.
	var obsSum float64
	for _, p := range points {
		pred, err := predict(settings, fluid, segments, p, best)
		if err != nil {
			return nil, err
		}
		res.Residuals = append(res.Residuals, pred-p.Pwf)
		obsSum += p.Pwf
	}
	res.MAPE = meanAbsPercentError(points, res.Residuals)

	mean := obsSum / float64(len(points))
	var ssTot float64
	for _, p := range points {
		ssTot += (p.Pwf - mean) * (p.Pwf - mean)
	}
	if ssTot > 0 {
		res.R2 = 1 - bestSSE/ssTot
	}

	fitted, err := refitCurve(settings, fluid, segments, points, best)
	if err != nil {
		return nil, err
	}
	res.Fitted = fitted
	res.Warnings = fitted.Warnings
	return res, nil
}

// meanAbsPercentError averages |residual| / |observed| over the points
// with a nonzero observation; zero-pwf points carry no defined percent
// error and are left out of the average entirely.
func meanAbsPercentError(points []TestPoint, residuals []float64) float64 {
	var sum float64
	var n int
	for i, p := range points {
		if p.Pwf == 0 {
			continue
		}
		sum += math.Abs(residuals[i]) / math.Abs(p.Pwf) * 100
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// predict runs one traverse with the candidate biases applied and any
// per-point observed conditions (wellhead pressure, GOR, watercut)
// overriding the baseline.
func predict(settings vlp.Settings, fluid pvt.Fluid, segments []wellbore.Segment,
	p TestPoint, biases [3]float64) (float64, error) {

	s := settings
	s.RoughnessFactor = biases[0]
	s.HoldupTuning = biases[1]
	s.TemperatureTuning = biases[2]
	if p.WellheadPressure > 0 {
		s.WellheadPressure = p.WellheadPressure
	}

	f := fluid
	if p.GOR > 0 {
		f.GOR = p.GOR
	}
	if p.WaterCut > 0 {
		f.WaterCut = p.WaterCut
	}

	it, err := vlp.NewIntegrator(s, f, segments)
	if err != nil {
		return 0, err
	}
	state, _, err := it.Traverse(p.Rate)
	if err != nil {
		return 0, err
	}
	return state.Pressure, nil
}

// refitCurve evaluates the fitted settings over an even rate grid
// spanning the tested range.
func refitCurve(settings vlp.Settings, fluid pvt.Fluid, segments []wellbore.Segment,
	points []TestPoint, biases [3]float64) (*vlp.Result, error) {

	maxRate := 0.0
	for _, p := range points {
		if p.Rate > maxRate {
			maxRate = p.Rate
		}
	}
	const gridPoints = 51
	rates := make([]float64, gridPoints)
	step := maxRate * 1.2 / float64(gridPoints-1)
	for i := range rates {
		rates[i] = float64(i) * step
	}

	s := settings
	s.RoughnessFactor = biases[0]
	s.HoldupTuning = biases[1]
	s.TemperatureTuning = biases[2]

	it, err := vlp.NewIntegrator(s, fluid, segments)
	if err != nil {
		return nil, err
	}
	return it.Evaluate(rates)
}

// nelderMead minimizes f over three parameters with the standard
// reflection / expansion / contraction / shrink moves. No randomness:
// results are repeatable for identical inputs.
func nelderMead(f func([3]float64) float64, start [3]float64) ([3]float64, float64) {
	const (
		alpha   = 1.0 // reflection
		gamma   = 2.0 // expansion
		rho     = 0.5 // contraction
		sigma   = 0.5 // shrink
		maxIter = 300
		tol     = 1e-10
	)

	// Initial simplex: unit start plus one perturbed vertex per axis.
	simplex := [4][3]float64{start, start, start, start}
	for i := 0; i < 3; i++ {
		simplex[i+1][i] += 0.25
	}
	vals := [4]float64{}
	for i, x := range simplex {
		vals[i] = f(x)
	}

	for iter := 0; iter < maxIter; iter++ {
		order(&simplex, &vals)
		if math.Abs(vals[3]-vals[0]) < tol {
			break
		}

		// Centroid of all but the worst vertex.
		var c [3]float64
		for i := 0; i < 3; i++ {
			for d := 0; d < 3; d++ {
				c[d] += simplex[i][d] / 3
			}
		}

		reflect := combine(c, simplex[3], 1+alpha, -alpha)
		fr := f(reflect)

		switch {
		case fr < vals[0]:
			expand := combine(c, simplex[3], 1+alpha*gamma, -alpha*gamma)
			if fe := f(expand); fe < fr {
				simplex[3], vals[3] = expand, fe
			} else {
				simplex[3], vals[3] = reflect, fr
			}
		case fr < vals[2]:
			simplex[3], vals[3] = reflect, fr
		default:
			contract := combine(c, simplex[3], 1-rho, rho)
			if fc := f(contract); fc < vals[3] {
				simplex[3], vals[3] = contract, fc
			} else {
				for i := 1; i < 4; i++ {
					simplex[i] = combine(simplex[0], simplex[i], 1-sigma, sigma)
					vals[i] = f(simplex[i])
				}
			}
		}
	}

	order(&simplex, &vals)
	return simplex[0], vals[0]
}

func order(simplex *[4][3]float64, vals *[4]float64) {
	for i := 1; i < 4; i++ {
		for j := i; j > 0 && vals[j] < vals[j-1]; j-- {
			vals[j], vals[j-1] = vals[j-1], vals[j]
			simplex[j], simplex[j-1] = simplex[j-1], simplex[j]
		}
	}
}

func combine(a, b [3]float64, wa, wb float64) [3]float64 {
	var out [3]float64
	for d := 0; d < 3; d++ {
		out[d] = wa*a[d] + wb*b[d]
	}
	return out
}
