package chemistry

import (
	"fmt"
	"math"

	"github.com/aqualog/aqualog/internal/apperrors"
	"github.com/aqualog/aqualog/internal/config"
)

// ValidateReading sanity-checks a reading against the hard physical
// limits for its parameter. These limits catch data-entry errors (a pH
// of 70, a 400°C tank); they are independent of any safe range.
func ValidateReading(param config.Parameter, value float64) error {
	if !param.Valid() {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidParameter, param)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%w: %s reading must be a finite number", apperrors.ErrInvalidInput, param)
	}

	limits, ok := config.HardLimits()[param]
	if !ok {
		return nil
	}
	if !limits.Contains(value) {
		return fmt.Errorf("%w: %s reading %g is outside the plausible range %g–%g",
			apperrors.ErrInvalidInput, param, value, limits.Low, limits.High)
	}
	return nil
}
