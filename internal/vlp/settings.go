package vlp

import "fmt"

// Correlation selects the friction correlation for the traverse.
type Correlation string

const (
	BeggsBrill    Correlation = "beggs-brill"
	HagedornBrown Correlation = "hagedorn-brown"
	DunsRos       Correlation = "duns-ros"
	SinglePhase   Correlation = "single-phase"
)

// TempModelKind selects how temperature evolves along the traverse.
type TempModelKind string

const (
	TempSimple TempModelKind = "simple" // linear gradient × segment length
	TempTable  TempModelKind = "table"  // depth-keyed lookup
)

// TempPoint is one entry of a depth-keyed temperature table.
type TempPoint struct {
	Depth float64 `yaml:"depth"` // MD (ft)
	Temp  float64 `yaml:"temp"`  // °F
}

// TemperatureModel configures the traverse temperature update.
type TemperatureModel struct {
	Kind     TempModelKind `yaml:"kind"`
	Gradient float64       `yaml:"gradient,omitempty"` // °F per ft of segment length
	Table    []TempPoint   `yaml:"table,omitempty"`
}

// Settings configures one pressure traverse. The three bias multipliers
// are the calibration knobs: they scale the friction drop, the holdup
// estimate, and the temperature increment respectively. Zero means
// "unset" and is treated as 1.0.
type Settings struct {
	Correlation         Correlation      `yaml:"correlation"`
	WellheadPressure    float64          `yaml:"wellhead_pressure"`    // psia
	WellheadTemperature float64          `yaml:"wellhead_temperature"` // °F
	Temperature         TemperatureModel `yaml:"temperature"`

	RoughnessFactor   float64 `yaml:"roughness_factor,omitempty"` // friction bias
	HoldupTuning      float64 `yaml:"holdup_tuning,omitempty"`
	TemperatureTuning float64 `yaml:"temperature_tuning,omitempty"`
}

// Validate checks the settings for structural problems.
func (s Settings) Validate() error {
	switch s.Correlation {
	case BeggsBrill, HagedornBrown, DunsRos, SinglePhase:
	default:
		return fmt.Errorf("vlp: unknown correlation %q", s.Correlation)
	}
	if s.WellheadPressure <= 0 {
		return fmt.Errorf("vlp: wellhead pressure must be positive, got %.2f", s.WellheadPressure)
	}
	if s.Temperature.Kind == TempTable && len(s.Temperature.Table) == 0 {
		return fmt.Errorf("vlp: temperature table model requires at least one entry")
	}
	return nil
}

// FrictionBias returns the effective friction multiplier.
func (s Settings) FrictionBias() float64 { return orUnit(s.RoughnessFactor) }

// HoldupBias returns the effective holdup multiplier.
func (s Settings) HoldupBias() float64 { return orUnit(s.HoldupTuning) }

// TemperatureBias returns the effective temperature-increment multiplier.
func (s Settings) TemperatureBias() float64 { return orUnit(s.TemperatureTuning) }

func orUnit(v float64) float64 {
	if v <= 0 {
		return 1
	}
	return v
}
