package config

import (
	"fmt"

	"github.com/aqualog/aqualog/internal/apperrors"
)

// Parameter identifies one of the water-quality parameters tracked by
// AquaLog. The set is closed; anything else is rejected before it can
// reach storage.
type Parameter string

const (
	ParameterPH          Parameter = "ph"
	ParameterTemperature Parameter = "temperature"
	ParameterAmmonia     Parameter = "ammonia"
	ParameterNitrite     Parameter = "nitrite"
	ParameterNitrate     Parameter = "nitrate"
	ParameterKH          Parameter = "kh"
	ParameterGH          Parameter = "gh"
)

// Parameters returns the fixed parameter set in display order.
func Parameters() []Parameter {
	return []Parameter{
		ParameterPH,
		ParameterTemperature,
		ParameterAmmonia,
		ParameterNitrite,
		ParameterNitrate,
		ParameterKH,
		ParameterGH,
	}
}

func (p Parameter) Valid() bool {
	switch p {
	case ParameterPH, ParameterTemperature, ParameterAmmonia,
		ParameterNitrite, ParameterNitrate, ParameterKH, ParameterGH:
		return true
	}
	return false
}

func (p Parameter) String() string {
	return string(p)
}

// Unit returns the canonical unit for the parameter. pH is unitless.
func (p Parameter) Unit() string {
	switch p {
	case ParameterTemperature:
		return "°C"
	case ParameterAmmonia, ParameterNitrite, ParameterNitrate:
		return "ppm"
	case ParameterKH:
		return "°dKH"
	case ParameterGH:
		return "°dGH"
	}
	return ""
}

// ParseParameter converts user input into a Parameter.
func ParseParameter(s string) (Parameter, error) {
	p := Parameter(s)
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q is not one of the known parameters %v",
			apperrors.ErrInvalidParameter, s, Parameters())
	}
	return p, nil
}

// CO2 drop-checker colors. These are categorical readings, not part of
// the numeric parameter set.
const (
	CO2IndicatorGreen  = "Green"
	CO2IndicatorBlue   = "Blue"
	CO2IndicatorYellow = "Yellow"
)

// ValidCO2Indicator reports whether color is a known drop-checker state.
func ValidCO2Indicator(color string) bool {
	switch color {
	case CO2IndicatorGreen, CO2IndicatorBlue, CO2IndicatorYellow:
		return true
	}
	return false
}
