package chemistry

import (
	"fmt"

	"github.com/aqualog/aqualog/internal/apperrors"
	"github.com/aqualog/aqualog/internal/config"
)

// Status classifies a reading against its effective safe range.
//
// Only the documented calibrations escalate to Danger: unionized
// ammonia above the NH3 threshold, and a yellow CO2 drop checker.
// Every other out-of-range reading is a Warning; any further banding
// belongs in the configured range table, not here.
type Status int

const (
	StatusSafe Status = iota
	StatusWarning
	StatusDanger
)

func (s Status) String() string {
	switch s {
	case StatusSafe:
		return "safe"
	case StatusWarning:
		return "warning"
	case StatusDanger:
		return "danger"
	}
	return "unknown"
}

// Classify checks a reading against a safe range, bounds inclusive.
func Classify(value float64, r config.Range) Status {
	if r.Contains(value) {
		return StatusSafe
	}
	return StatusWarning
}

// ClassifyAmmonia classifies a unionized NH3 concentration. The danger
// threshold applies to the toxic NH3 fraction, not raw total ammonia:
// a tank at pH 7 can hold measurable total ammonia with a harmless NH3
// share.
func ClassifyAmmonia(nh3Ppm float64) Status {
	if nh3Ppm > config.NH3DangerThresholdPpm {
		return StatusDanger
	}
	return StatusSafe
}

// ClassifyNitrate classifies a nitrate reading. A reading of exactly 0
// is always safe: the low bound exists to prompt fertilizer dosing in
// planted tanks, and a nitrate-free tank must never raise a phantom
// low warning.
func ClassifyNitrate(value float64, r config.Range) Status {
	if value == 0 {
		return StatusSafe
	}
	return Classify(value, r)
}

// ClassifyCO2Indicator classifies a drop-checker color. Blue (low CO2)
// is only an advisory; yellow (excess CO2) suffocates livestock.
func ClassifyCO2Indicator(color string) (Status, error) {
	switch color {
	case config.CO2IndicatorGreen:
		return StatusSafe, nil
	case config.CO2IndicatorBlue:
		return StatusWarning, nil
	case config.CO2IndicatorYellow:
		return StatusDanger, nil
	}
	return StatusSafe, fmt.Errorf("%w: unknown CO2 indicator color %q", apperrors.ErrInvalidInput, color)
}

// EvaluateParameter classifies a single reading against its effective
// safe range, applying the per-parameter special cases. Ammonia is not
// handled here: its classification runs through UnionizedAmmonia and
// ClassifyAmmonia, which need pH and temperature.
func EvaluateParameter(param config.Parameter, value float64, r config.Range) Status {
	if param == config.ParameterNitrate {
		return ClassifyNitrate(value, r)
	}
	return Classify(value, r)
}
