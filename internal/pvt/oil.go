package pvt

import (
	"fmt"
	"math"
)

// Oil-phase correlations. Standing for solution GOR and formation volume
// factor, Beggs-Robinson for viscosity. Pressures in psia, temperatures
// in °F.

// OilProperties bundles the oil-phase estimate at one pressure and
// temperature.
type OilProperties struct {
	Rs  float64 // solution GOR (scf/STB)
	Bo  float64 // formation volume factor (bbl/STB)
	MuO float64 // live oil viscosity (cp)
}

// SolutionGOR estimates the solution gas-oil ratio by the Standing
// correlation. Above the bubble point Rs stays at its bubble-point value,
// so callers should pass min(p, pb).
func SolutionGOR(p, tempF, api, gasGravity float64) float64 {
	x := 0.0125*api - 0.00091*tempF
	return gasGravity * math.Pow((p/18.2+1.4)*math.Pow(10, x), 1.2048)
}

// OilFVF estimates the oil formation volume factor by the Standing
// correlation.
func OilFVF(rs, tempF, api, gasGravity float64) float64 {
	gammaO := OilSpecificGravity(api)
	f := rs*math.Sqrt(gasGravity/gammaO) + 1.25*tempF
	return 0.9759 + 0.00012*math.Pow(f, 1.2)
}

// DeadOilViscosity estimates gas-free oil viscosity (cp) by the
// Beggs-Robinson correlation.
func DeadOilViscosity(tempF, api float64) float64 {
	x := math.Pow(10, 3.0324-0.02023*api) * math.Pow(tempF, -1.163)
	return math.Pow(10, x) - 1
}

// LiveOilViscosity corrects dead oil viscosity for dissolved gas.
func LiveOilViscosity(muDead, rs float64) float64 {
	a := 10.715 * math.Pow(rs+100, -0.515)
	b := 5.44 * math.Pow(rs+150, -0.338)
	return a * math.Pow(muDead, b)
}

// EstimateOil computes the {Rs, Bo, μo} bundle at the given pressure and
// temperature. Pressure is capped at the bubble point for Rs since no
// further gas dissolves above it. Structurally invalid inputs are the
// only error case; out-of-range physical values never raise.
func EstimateOil(p, tempF, api, gasGravity, bubblePoint float64) (OilProperties, error) {
	if p <= 0 {
		return OilProperties{}, fmt.Errorf("pvt: non-positive pressure %.2f psia", p)
	}
	if tempF <= 0 {
		return OilProperties{}, fmt.Errorf("pvt: non-positive temperature %.2f °F", tempF)
	}

	pSat := p
	if bubblePoint > 0 && p > bubblePoint {
		pSat = bubblePoint
	}

	rs := SolutionGOR(pSat, tempF, api, gasGravity)
	bo := OilFVF(rs, tempF, api, gasGravity)
	mu := LiveOilViscosity(DeadOilViscosity(tempF, api), rs)

	return OilProperties{Rs: rs, Bo: bo, MuO: mu}, nil
}
