package pvt

import (
	"fmt"
	"math"
)

// Gas-phase correlations. Sutton pseudo-criticals from gas gravity, a
// Hall-Yarborough Z-factor solve, Lee-Gonzalez-Eakin viscosity.

// GasProperties bundles the gas-phase estimate at one pressure and
// temperature. Warnings records any reduced-coordinate clamps applied
// during the Z-factor solve.
type GasProperties struct {
	Z        float64  // compressibility factor
	RhoG     float64  // density (lb/ft³)
	MuG      float64  // viscosity (cp)
	Bg       float64  // gas formation volume factor (ft³/scf)
	Warnings []string // non-empty when the correlation envelope was left
}

// PseudoCritical returns the Sutton pseudo-critical temperature (°R) and
// pressure (psia) for a gas of the given gravity.
func PseudoCritical(gasGravity float64) (tpc, ppc float64) {
	tpc = 169.2 + 349.5*gasGravity - 74.0*gasGravity*gasGravity
	ppc = 756.8 - 131.0*gasGravity - 3.6*gasGravity*gasGravity
	return tpc, ppc
}

// ZFactor solves for the gas compressibility factor using the
// Hall-Yarborough formulation. Outside the valid reduced envelope
// (TprMin ≤ Tpr ≤ TprMax, 0 < Ppr ≤ PprMax) it degrades gracefully:
// Z = 1.0 plus a warning, never an error or an unphysical value.
func ZFactor(p, tempF, gasGravity float64) (float64, []string, error) {
	if p <= 0 {
		return 0, nil, fmt.Errorf("pvt: non-positive pressure %.2f psia", p)
	}
	if gasGravity <= 0 {
		return 0, nil, fmt.Errorf("pvt: non-positive gas gravity %.3f", gasGravity)
	}

	tpc, ppc := PseudoCritical(gasGravity)
	tpr := Rankine(tempF) / tpc
	ppr := p / ppc

	if tpr < TprMin || tpr > TprMax || ppr > PprMax {
		warn := fmt.Sprintf(
			"pvt: reduced state Tpr=%.2f Ppr=%.2f outside correlation envelope; Z clamped to 1.0",
			tpr, ppr)
		return 1.0, []string{warn}, nil
	}

	z, ok := hallYarborough(tpr, ppr)
	if !ok {
		warn := fmt.Sprintf(
			"pvt: Z-factor iteration did not converge at Tpr=%.2f Ppr=%.2f; Z clamped to 1.0",
			tpr, ppr)
		return 1.0, []string{warn}, nil
	}
	return z, nil, nil
}

// hallYarborough iterates the reduced-density equation with Newton's
// method. Returns ok=false when the iteration fails to settle.
func hallYarborough(tpr, ppr float64) (float64, bool) {
	t := 1.0 / tpr
	a := 0.06125 * t * math.Exp(-1.2*(1-t)*(1-t))
	b := 14.76*t - 9.76*t*t + 4.58*t*t*t
	c := 90.7*t - 242.2*t*t + 42.4*t*t*t
	d := 2.18 + 2.82*t

	y := 0.001
	for i := 0; i < 50; i++ {
		f := -a*ppr + (y+y*y+y*y*y-y*y*y*y)/math.Pow(1-y, 3) -
			b*y*y + c*math.Pow(y, d)
		df := (1+4*y+4*y*y-4*y*y*y+y*y*y*y)/math.Pow(1-y, 4) -
			2*b*y + c*d*math.Pow(y, d-1)
		if df == 0 {
			return 0, false
		}
		next := y - f/df
		if next <= 0 || next >= 1 {
			next = (y + math.Min(math.Max(next, 1e-8), 0.99)) / 2
		}
		if math.Abs(next-y) < 1e-10 {
			y = next
			break
		}
		y = next
	}

	if y <= 0 || y >= 1 {
		return 0, false
	}
	z := a * ppr / y
	if z <= 0 || math.IsNaN(z) || math.IsInf(z, 0) {
		return 0, false
	}
	return z, true
}

// GasDensity returns the real-gas density in lb/ft³.
func GasDensity(p, tempF, gasGravity, z float64) float64 {
	mw := AirMolWeight * gasGravity
	return p * mw / (z * GasConstant * Rankine(tempF))
}

// GasViscosity estimates gas viscosity (cp) by Lee-Gonzalez-Eakin.
// Density in lb/ft³ is converted to g/cc internally.
func GasViscosity(tempF, gasGravity, rhoG float64) float64 {
	mw := AirMolWeight * gasGravity
	tr := Rankine(tempF)
	k := (9.4 + 0.02*mw) * math.Pow(tr, 1.5) / (209 + 19*mw + tr)
	x := 3.5 + 986/tr + 0.01*mw
	y := 2.4 - 0.2*x
	rhoGcc := rhoG * 0.0160185
	return k * 1e-4 * math.Exp(x*math.Pow(rhoGcc, y))
}

// GasFVF returns the gas formation volume factor in ft³/scf.
func GasFVF(p, tempF, z float64) float64 {
	return 0.02827 * z * Rankine(tempF) / p
}

// EstimateGas computes the {Z, ρg, μg, Bg} bundle at the given pressure
// and temperature, carrying forward any clamp warnings from the Z solve.
func EstimateGas(p, tempF, gasGravity float64) (GasProperties, error) {
	z, warnings, err := ZFactor(p, tempF, gasGravity)
	if err != nil {
		return GasProperties{}, err
	}
	rho := GasDensity(p, tempF, gasGravity, z)
	return GasProperties{
		Z:        z,
		RhoG:     rho,
		MuG:      GasViscosity(tempF, gasGravity, rho),
		Bg:       GasFVF(p, tempF, z),
		Warnings: warnings,
	}, nil
}
