package wellbore

import "fmt"

// SurveyPoint is one station of a deviation survey. Depths in ft,
// angles in degrees.
type SurveyPoint struct {
	MD          float64 `yaml:"md"`  // measured depth
	TVD         float64 `yaml:"tvd"` // true vertical depth
	Inclination float64 `yaml:"inc"`
	Azimuth     float64 `yaml:"azi"`
}

// Survey is an ordered deviation survey. Invariants: measured depth
// strictly increasing, true vertical depth non-decreasing.
type Survey struct {
	Points []SurveyPoint `yaml:"points"`
}

// Validate enforces the survey ordering invariants.
func (s Survey) Validate() error {
	if len(s.Points) < 2 {
		return fmt.Errorf("wellbore: survey needs at least 2 points, got %d", len(s.Points))
	}
	for i := 1; i < len(s.Points); i++ {
		prev, curr := s.Points[i-1], s.Points[i]
		if curr.MD <= prev.MD {
			return fmt.Errorf("wellbore: measured depth must be strictly increasing at point %d (%.1f → %.1f)",
				i, prev.MD, curr.MD)
		}
		if curr.TVD < prev.TVD {
			return fmt.Errorf("wellbore: true vertical depth must be non-decreasing at point %d (%.1f → %.1f)",
				i, prev.TVD, curr.TVD)
		}
	}
	return nil
}

// TotalDepth returns the measured depth of the last station.
func (s Survey) TotalDepth() float64 {
	if len(s.Points) == 0 {
		return 0
	}
	return s.Points[len(s.Points)-1].MD
}

// Vertical builds a two-point vertical survey down to the given depth.
// Handy for quick single-well runs where no real survey exists.
func Vertical(depth float64) Survey {
	return Survey{Points: []SurveyPoint{
		{MD: 0, TVD: 0},
		{MD: depth, TVD: depth},
	}}
}
