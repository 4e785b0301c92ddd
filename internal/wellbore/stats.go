package wellbore

import "math"

// SurveyStats summarizes a deviation survey: trajectory extent, dog-leg
// severity, and closure of the horizontal displacement path.
type SurveyStats struct {
	TotalDepth     float64 // final MD (ft)
	TVD            float64 // final TVD (ft)
	MaxInclination float64 // degrees
	MaxDLS         float64 // °/100 ft
	AvgDLS         float64 // °/100 ft
	Displacement   float64 // total horizontal displacement (ft)
	ClosureAzimuth float64 // degrees from north
	PointCount     int
}

// Stats computes trajectory statistics over the survey. Dog-leg severity
// uses the angle between consecutive station tangents with azimuth
// wrap-around handled at ±180°; north/east offsets use the average-angle
// method.
func (s Survey) Stats() SurveyStats {
	stats := SurveyStats{PointCount: len(s.Points)}
	if len(s.Points) == 0 {
		return stats
	}

	last := s.Points[len(s.Points)-1]
	stats.TotalDepth = last.MD
	stats.TVD = last.TVD

	var north, east float64
	var dlsSum float64
	var dlsCount int

	for i, p := range s.Points {
		if p.Inclination > stats.MaxInclination {
			stats.MaxInclination = p.Inclination
		}
		if i == 0 {
			continue
		}
		prev := s.Points[i-1]
		dMD := p.MD - prev.MD
		if dMD <= 0 {
			continue
		}

		dls := doglegAngle(prev, p) / dMD * 100
		dlsSum += dls
		dlsCount++
		if dls > stats.MaxDLS {
			stats.MaxDLS = dls
		}

		// Average-angle horizontal displacement increment.
		incAvg := radians((prev.Inclination + p.Inclination) / 2)
		aziAvg := radians(meanAzimuth(prev, p))
		north += dMD * math.Sin(incAvg) * math.Cos(aziAvg)
		east += dMD * math.Sin(incAvg) * math.Sin(aziAvg)
	}

	if dlsCount > 0 {
		stats.AvgDLS = dlsSum / float64(dlsCount)
	}
	stats.Displacement = math.Hypot(north, east)
	if north != 0 || east != 0 {
		stats.ClosureAzimuth = math.Mod(degrees(math.Atan2(east, north))+360, 360)
	}
	return stats
}

// doglegAngle returns the total angle change (degrees) between two
// stations.
func doglegAngle(a, b SurveyPoint) float64 {
	dInc := radians(b.Inclination - a.Inclination)
	dAzi := b.Azimuth - a.Azimuth
	// Wrap azimuth change into [-180, 180].
	for dAzi > 180 {
		dAzi -= 360
	}
	for dAzi < -180 {
		dAzi += 360
	}
	cosB := math.Cos(dInc) -
		math.Sin(radians(a.Inclination))*math.Sin(radians(b.Inclination))*
			(1-math.Cos(radians(dAzi)))
	cosB = math.Max(-1, math.Min(1, cosB))
	return degrees(math.Acos(cosB))
}

// meanAzimuth averages the station azimuths along the shortest arc. A
// near-vertical station carries no meaningful azimuth, so the other
// station's azimuth is used alone across kickoff intervals.
func meanAzimuth(a, b SurveyPoint) float64 {
	const verticalInc = 1e-3 // degrees
	switch {
	case a.Inclination < verticalInc && b.Inclination < verticalInc:
		return 0
	case a.Inclination < verticalInc:
		return b.Azimuth
	case b.Inclination < verticalInc:
		return a.Azimuth
	}
	dAzi := b.Azimuth - a.Azimuth
	for dAzi > 180 {
		dAzi -= 360
	}
	for dAzi < -180 {
		dAzi += 360
	}
	return math.Mod(a.Azimuth+dAzi/2+360, 360)
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }
