package nodal

import (
	"fmt"
	"strings"

	"github.com/petrolab/gonodal/internal/ipr"
	"github.com/petrolab/gonodal/internal/pvt"
	"github.com/petrolab/gonodal/internal/wellbore"
)

// ValidationResult is the structured outcome of the pre-flight checks.
// Errors block the analysis; warnings are advisory and callers decide
// whether to proceed.
type ValidationResult struct {
	Valid    bool
	Errors   []string
	Warnings []string
}

// ValidationError wraps a failed ValidationResult. It is the only error
// the solver raises before curve computation begins.
type ValidationError struct {
	Result ValidationResult
}

func (e *ValidationError) Error() string {
	return "nodal: invalid inputs: " + strings.Join(e.Result.Errors, "; ")
}

// ValidateCase runs the structural and physical pre-flight checks on a
// full analysis case. Stateless; never raises for recoverable issues.
func ValidateCase(fluid pvt.Fluid, survey wellbore.Survey, completion wellbore.Completion, model ipr.Model) ValidationResult {
	var res ValidationResult

	switch fluid.Kind {
	case pvt.Oil, pvt.Gas, pvt.OilGas, pvt.GasCondensate:
	default:
		res.Errors = append(res.Errors, fmt.Sprintf("fluid.kind: unknown kind %q", fluid.Kind))
	}

	if fluid.Pressure <= 0 {
		res.Errors = append(res.Errors, "fluid.pressure: reservoir pressure must be positive")
	}
	if fluid.Temperature <= 0 {
		res.Errors = append(res.Errors, "fluid.temperature: reservoir temperature must be positive")
	}

	// PVT completeness for the declared kind.
	switch fluid.Kind {
	case pvt.Oil, pvt.OilGas:
		if fluid.PVT.RhoO <= 0 {
			res.Errors = append(res.Errors, "fluid.pvt.rho_o: oil density is required for oil wells")
		}
		if fluid.GOR <= 0 && fluid.Kind == pvt.OilGas {
			res.Warnings = append(res.Warnings, "fluid.gor: zero GOR on an oil-gas well")
		}
	case pvt.Gas, pvt.GasCondensate:
		if fluid.GasGravity <= 0 {
			res.Warnings = append(res.Warnings, "fluid.gas_gravity: unset, defaulting to 0.65")
		}
	}
	if fluid.WaterCut < 0 || fluid.WaterCut > 1 {
		res.Errors = append(res.Errors, "fluid.watercut: must lie in [0, 1]")
	}

	if err := survey.Validate(); err != nil {
		res.Errors = append(res.Errors, err.Error())
	}
	if err := completion.Validate(); err != nil {
		res.Errors = append(res.Errors, err.Error())
	}
	if completion.Roughness <= 0 {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("completion.roughness: unset, defaulting to %.4f in", wellbore.DefaultRoughness))
	}
	if err := model.Validate(); err != nil {
		res.Errors = append(res.Errors, err.Error())
	}

	res.Valid = len(res.Errors) == 0
	return res
}
