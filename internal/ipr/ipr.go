package ipr

import (
	"fmt"
	"math"
)

// ModelType selects the inflow performance relationship variant.
type ModelType string

const (
	Vogel             ModelType = "vogel"
	Fetkovich         ModelType = "fetkovich"
	DarcyLinear       ModelType = "darcy-linear"
	GasDeliverability ModelType = "gas-deliverability"
)

// Model holds the parameter record for one inflow model. Only the fields
// relevant to Type are consulted; the rest may stay zero.
type Model struct {
	Type ModelType `yaml:"type"`

	ReservoirPressure float64 `yaml:"reservoir_pressure"` // psia
	ProductivityIndex float64 `yaml:"productivity_index,omitempty"`
	BubblePoint       float64 `yaml:"bubble_point,omitempty"` // vogel
	Exponent          float64 `yaml:"n,omitempty"`            // fetkovich / gas n
	A                 float64 `yaml:"a,omitempty"`            // gas back-pressure
	B                 float64 `yaml:"b,omitempty"`            // gas back-pressure
	C                 float64 `yaml:"c,omitempty"`            // gas back-pressure (reserved)

	Skin           float64 `yaml:"skin,omitempty"`
	Permeability   float64 `yaml:"permeability,omitempty"` // md
	Thickness      float64 `yaml:"thickness,omitempty"`    // ft
	DrainageRadius float64 `yaml:"drainage_radius,omitempty"`
	WellboreRadius float64 `yaml:"wellbore_radius,omitempty"`
}

// Result is an inflow curve: parallel rate and pressure arrays.
type Result struct {
	Rates     []float64
	Pressures []float64
}

// Validate checks the parameter record for structural problems. Physical
// edge cases (rates past AOF, pressures at zero) are handled by Pressure
// itself and are not errors.
func (m Model) Validate() error {
	switch m.Type {
	case Vogel:
		if m.ReservoirPressure <= 0 {
			return fmt.Errorf("ipr: vogel reservoir pressure must be positive, got %.2f", m.ReservoirPressure)
		}
		if m.ProductivityIndex <= 0 {
			return fmt.Errorf("ipr: vogel productivity index must be positive, got %.4f", m.ProductivityIndex)
		}
		if m.BubblePoint <= 0 || m.BubblePoint > m.ReservoirPressure {
			return fmt.Errorf("ipr: vogel bubble point %.2f must lie in (0, reservoir pressure]", m.BubblePoint)
		}
	case Fetkovich:
		if m.ReservoirPressure <= 0 {
			return fmt.Errorf("ipr: fetkovich reservoir pressure must be positive, got %.2f", m.ReservoirPressure)
		}
		if m.ProductivityIndex <= 0 {
			return fmt.Errorf("ipr: fetkovich productivity index must be positive, got %.4f", m.ProductivityIndex)
		}
		if m.Exponent <= 0 {
			return fmt.Errorf("ipr: fetkovich exponent must be positive, got %.3f", m.Exponent)
		}
	case DarcyLinear:
		if m.ReservoirPressure <= 0 {
			return fmt.Errorf("ipr: darcy-linear reservoir pressure must be positive, got %.2f", m.ReservoirPressure)
		}
		if m.ProductivityIndex <= 0 {
			return fmt.Errorf("ipr: darcy-linear productivity index must be positive, got %.4f", m.ProductivityIndex)
		}
	case GasDeliverability:
		if m.A <= 0 {
			return fmt.Errorf("ipr: gas-deliverability coefficient a must be positive, got %.2f", m.A)
		}
		if m.B >= 0 {
			return fmt.Errorf("ipr: gas-deliverability coefficient b must be negative, got %.4f", m.B)
		}
		if m.Exponent <= 0 {
			return fmt.Errorf("ipr: gas-deliverability exponent must be positive, got %.3f", m.Exponent)
		}
	default:
		return fmt.Errorf("ipr: unknown model type %q", m.Type)
	}
	return nil
}

// MaxRate returns the absolute open flow potential for the model: the
// rate at which flowing bottomhole pressure reaches its floor.
func (m Model) MaxRate() float64 {
	switch m.Type {
	case Vogel:
		// Linear drawdown to the bubble point plus the Vogel tail.
		return m.ProductivityIndex*(m.ReservoirPressure-m.BubblePoint) +
			m.ProductivityIndex*m.BubblePoint/1.8
	case Fetkovich:
		return m.ProductivityIndex * math.Pow(m.ReservoirPressure, m.Exponent)
	case DarcyLinear:
		return m.ProductivityIndex * m.ReservoirPressure
	case GasDeliverability:
		if m.B < 0 {
			return math.Pow(-m.A/m.B, 1/m.Exponent)
		}
		return 0
	}
	return 0
}

// Pressure returns the flowing bottomhole pressure predicted for one
// rate. Pure: no state is carried between calls, so rates may be
// evaluated in any order or concurrently.
func (m Model) Pressure(q float64) float64 {
	switch m.Type {
	case Vogel:
		return vogelPressure(m, q)
	case Fetkovich:
		return fetkovichPressure(m, q)
	case DarcyLinear:
		return math.Max(m.ReservoirPressure-q/m.ProductivityIndex, 0)
	case GasDeliverability:
		return gasDeliverabilityPressure(m, q)
	}
	return 0
}

// Curve evaluates the model over a rate array. Elements are independent.
func (m Model) Curve(rates []float64) Result {
	pressures := make([]float64, len(rates))
	for i, q := range rates {
		pressures[i] = m.Pressure(q)
	}
	out := Result{Rates: make([]float64, len(rates)), Pressures: pressures}
	copy(out.Rates, rates)
	return out
}

// vogelPressure applies the quadratic Vogel shape between reservoir
// pressure at q=0 and the bubble point at q=qmax. The curve is floored
// at the bubble point: no predicted pwf falls below it.
func vogelPressure(m Model, q float64) float64 {
	qmax := m.MaxRate()
	if q >= qmax {
		return m.BubblePoint
	}
	frac := q / qmax
	shape := 0.125 * (math.Sqrt(81-80*frac) - 1)
	return m.BubblePoint + (m.ReservoirPressure-m.BubblePoint)*shape
}

// fetkovichPressure inverts q = PI·(Pr^n − pwf^n). At n = 1 this reduces
// to the linear drawdown model. Rates at or past AOF report pwf = 0.
func fetkovichPressure(m Model, q float64) float64 {
	if q >= m.MaxRate() {
		return 0
	}
	inner := math.Pow(m.ReservoirPressure, m.Exponent) - q/m.ProductivityIndex
	if inner <= 0 {
		return 0
	}
	return math.Pow(inner, 1/m.Exponent)
}

// gasDeliverabilityPressure evaluates the back-pressure form
// pwf = a + b·q^n with b < 0. The curve reaches zero exactly at AOF;
// only rates strictly past AOF report the coefficient a, keeping the
// curve monotone non-increasing over [0, qmax].
func gasDeliverabilityPressure(m Model, q float64) float64 {
	qmax := m.MaxRate()
	if qmax > 0 && q > qmax {
		return m.A
	}
	return math.Max(m.A+m.B*math.Pow(q, m.Exponent), 0)
}
