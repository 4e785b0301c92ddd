package pvt

// Physical constants and standard conditions (field units)

const (
	// Standard conditions used for every standard-to-actual volume
	// conversion within a run. Fixed, never configurable mid-calculation.
	StandardPressure    = 14.696 // psia
	StandardTemperature = 60.0   // °F

	// Gravitational acceleration and the lbm/lbf conversion constant
	Gravity = 32.174 // ft/s²
	Gc      = 32.174 // lbm·ft/(lbf·s²)

	// Universal gas constant
	GasConstant = 10.7316 // psia·ft³/(lb-mol·°R)

	// Molecular weight of air
	AirMolWeight = 28.9647 // lb/lb-mol

	// Density of fresh water at standard conditions
	FreshWaterDensity = 62.428 // lb/ft³

	// Rankine offset for Fahrenheit temperatures
	RankineOffset = 459.67

	// Validity envelope for the Z-factor correlation, in reduced
	// coordinates. Outside this range the estimator clamps to Z = 1
	// and attaches a warning instead of extrapolating.
	TprMin = 1.0
	TprMax = 3.0
	PprMax = 15.0
)

// Rankine converts a Fahrenheit temperature to Rankine.
func Rankine(tempF float64) float64 {
	return tempF + RankineOffset
}

// OilSpecificGravity converts API gravity to specific gravity (water = 1).
func OilSpecificGravity(api float64) float64 {
	return 141.5 / (131.5 + api)
}
