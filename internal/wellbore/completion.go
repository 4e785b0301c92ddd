package wellbore

import "fmt"

// Device is a typed conduit or restriction element occupying a depth
// interval. Its bore overrides the tubing inner diameter across that
// interval when segments are built.
type Device struct {
	Kind     string  `yaml:"kind"` // e.g. "ssd", "nipple", "liner"
	TopMD    float64 `yaml:"top_md"`
	BottomMD float64 `yaml:"bottom_md"`
	Bore     float64 `yaml:"bore"` // inner diameter (in)
}

// PerforationInterval describes a perforated zone and its skin terms.
type PerforationInterval struct {
	TopMD       float64 `yaml:"top_md"`
	BottomMD    float64 `yaml:"bottom_md"`
	ShotDensity float64 `yaml:"shot_density,omitempty"` // shots/ft
	Phasing     float64 `yaml:"phasing,omitempty"`      // degrees
	Skin        float64 `yaml:"skin,omitempty"`
}

// Completion describes the production conduit.
type Completion struct {
	TubingID     float64               `yaml:"tubing_id"`            // in
	Roughness    float64               `yaml:"roughness,omitempty"`  // absolute roughness (in)
	Devices      []Device              `yaml:"devices,omitempty"`
	Perforations []PerforationInterval `yaml:"perforations,omitempty"`
}

// DefaultRoughness is used when the completion does not supply one.
// Commercial tubing, in inches.
const DefaultRoughness = 0.0006

// Validate checks the completion for structural problems.
func (c Completion) Validate() error {
	if c.TubingID <= 0 {
		return fmt.Errorf("wellbore: tubing inner diameter must be positive, got %.3f", c.TubingID)
	}
	for i, d := range c.Devices {
		if d.BottomMD <= d.TopMD {
			return fmt.Errorf("wellbore: device %d (%s) has inverted depth interval", i, d.Kind)
		}
		if d.Bore <= 0 {
			return fmt.Errorf("wellbore: device %d (%s) bore must be positive", i, d.Kind)
		}
	}
	for i, p := range c.Perforations {
		if p.BottomMD <= p.TopMD {
			return fmt.Errorf("wellbore: perforation interval %d has inverted depth interval", i)
		}
	}
	return nil
}

// TotalSkin sums the skin contributions of all perforation intervals.
func (c Completion) TotalSkin() float64 {
	var s float64
	for _, p := range c.Perforations {
		s += p.Skin
	}
	return s
}
