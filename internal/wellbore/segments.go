package wellbore

import "fmt"

// Segment is one discretized conduit interval, immutable once built.
// Lengths and depths in ft, diameters in inches.
type Segment struct {
	StartMD     float64
	EndMD       float64
	Length      float64 // ΔMD
	DeltaTVD    float64 // vertical rise
	Inclination float64 // mean of the bounding stations (degrees)
	InnerDiam   float64 // in
	Roughness   float64 // in
}

// BuildSegments zips consecutive survey stations into segments carrying
// the completion geometry for each interval. The list is ordered
// top-down; traversal direction is the integrator's decision, the
// builder is direction-agnostic. Segment count is always point count − 1.
func BuildSegments(survey Survey, completion Completion) ([]Segment, error) {
	if err := survey.Validate(); err != nil {
		return nil, err
	}
	if err := completion.Validate(); err != nil {
		return nil, err
	}

	roughness := completion.Roughness
	if roughness <= 0 {
		roughness = DefaultRoughness
	}

	segments := make([]Segment, 0, len(survey.Points)-1)
	for i := 1; i < len(survey.Points); i++ {
		top, bottom := survey.Points[i-1], survey.Points[i]
		seg := Segment{
			StartMD:     top.MD,
			EndMD:       bottom.MD,
			Length:      bottom.MD - top.MD,
			DeltaTVD:    bottom.TVD - top.TVD,
			Inclination: (top.Inclination + bottom.Inclination) / 2,
			InnerDiam:   boreAt(completion, (top.MD+bottom.MD)/2),
			Roughness:   roughness,
		}
		if seg.InnerDiam <= 0 {
			return nil, fmt.Errorf("wellbore: non-positive conduit diameter at MD %.1f", seg.StartMD)
		}
		segments = append(segments, seg)
	}
	return segments, nil
}

// boreAt resolves the conduit inner diameter at a measured depth: the
// tightest device bore covering that depth, otherwise the tubing ID.
func boreAt(c Completion, md float64) float64 {
	id := c.TubingID
	for _, d := range c.Devices {
		if md >= d.TopMD && md <= d.BottomMD && d.Bore < id {
			id = d.Bore
		}
	}
	return id
}
