package pvt

// Kind identifies the produced fluid family. It drives which PVT fields
// the validator requires and how the traverse estimates liquid holdup.
type Kind string

const (
	Oil           Kind = "oil"
	Gas           Kind = "gas"
	OilGas        Kind = "oil-gas"
	GasCondensate Kind = "gas-condensate"
)

// Properties is the optional PVT bag. A zero value means "not supplied";
// physically meaningful values are always positive, so zero is unambiguous.
type Properties struct {
	Rs   float64 `yaml:"rs,omitempty"`    // solution GOR (scf/STB)
	Bo   float64 `yaml:"bo,omitempty"`    // oil formation volume factor (bbl/STB)
	MuO  float64 `yaml:"mu_o,omitempty"`  // oil viscosity (cp)
	RhoO float64 `yaml:"rho_o,omitempty"` // oil density (lb/ft³)
	Z    float64 `yaml:"z,omitempty"`     // gas compressibility factor
	K    float64 `yaml:"k,omitempty"`     // gas specific-heat ratio Cp/Cv
	MW   float64 `yaml:"mw,omitempty"`    // gas molecular weight (lb/lb-mol)
	MuG  float64 `yaml:"mu_g,omitempty"`  // gas viscosity (cp)
	RhoG float64 `yaml:"rho_g,omitempty"` // gas density (lb/ft³)
	Bw   float64 `yaml:"bw,omitempty"`    // water formation volume factor (bbl/STB)
	MuW  float64 `yaml:"mu_w,omitempty"`  // water viscosity (cp)
	RhoW float64 `yaml:"rho_w,omitempty"` // water density (lb/ft³)
}

// Fluid describes the produced stream and the reservoir reference state.
// It is an immutable value object; the engine never mutates it.
type Fluid struct {
	Kind        Kind       `yaml:"kind"`
	API         float64    `yaml:"api,omitempty"`         // oil API gravity
	GasGravity  float64    `yaml:"gas_gravity,omitempty"` // air = 1
	GOR         float64    `yaml:"gor,omitempty"`         // producing GOR (scf/STB)
	WaterCut    float64    `yaml:"watercut,omitempty"`    // fraction 0..1
	BubblePoint float64    `yaml:"bubble_point,omitempty"`
	Temperature float64    `yaml:"temperature"` // reservoir temperature (°F)
	Pressure    float64    `yaml:"pressure"`    // reservoir pressure (psia)
	PVT         Properties `yaml:"pvt,omitempty"`
}

// IsGasWell reports whether the stream is gas-dominated. Holdup and
// density handling in the traverse branch on this.
func (f Fluid) IsGasWell() bool {
	return f.Kind == Gas || f.Kind == GasCondensate
}

// OilDensity returns the oil density, preferring the supplied PVT value
// and falling back to the stock-tank density implied by API gravity.
func (f Fluid) OilDensity() float64 {
	if f.PVT.RhoO > 0 {
		return f.PVT.RhoO
	}
	return FreshWaterDensity * OilSpecificGravity(f.API)
}

// WaterDensity returns the water density, defaulting to fresh water.
func (f Fluid) WaterDensity() float64 {
	if f.PVT.RhoW > 0 {
		return f.PVT.RhoW
	}
	return FreshWaterDensity
}

// WaterViscosity returns the water viscosity in cp, defaulting to 0.5.
func (f Fluid) WaterViscosity() float64 {
	if f.PVT.MuW > 0 {
		return f.PVT.MuW
	}
	return 0.5
}
