// Package chemistry implements the water-chemistry calculations behind
// AquaLog's warnings and dosing recommendations: the toxic unionized
// ammonia fraction, safe-range classification, and supplement dosing.
package chemistry

import (
	"fmt"
	"math"

	"github.com/aqualog/aqualog/internal/apperrors"
)

const absoluteZeroC = -273.15

// Beyond this decimal exponent 10^x overflows or underflows a float64,
// so the Henderson-Hasselbalch term is clamped instead of computed.
const maxDecimalExponent = 300

// UnionizedAmmonia computes the concentration of toxic unionized NH3
// (in ppm) from a total ammonia reading, based on water pH and
// temperature. Only the unionized fraction is toxic to fish; its share
// of total ammonia grows with pH and temperature.
//
// pKa is approximated as 0.09018 + 2729.92/(273.15 + tempC), valid for
// typical aquarium temperatures. pH is expected in a plausible aquarium
// range but is not rejected outside it; downstream classification
// handles out-of-range readings.
func UnionizedAmmonia(totalAmmoniaPpm, ph, tempC float64) (float64, error) {
	if math.IsNaN(tempC) || tempC <= absoluteZeroC {
		return 0, fmt.Errorf("%w: temperature %v°C is at or below absolute zero", apperrors.ErrInvalidInput, tempC)
	}
	if math.IsNaN(totalAmmoniaPpm) || math.IsNaN(ph) {
		return 0, fmt.Errorf("%w: total ammonia and pH must be numeric", apperrors.ErrInvalidInput)
	}
	if totalAmmoniaPpm < 0 {
		return 0, fmt.Errorf("%w: total ammonia cannot be negative (%g)", apperrors.ErrInvalidInput, totalAmmoniaPpm)
	}

	pka := 0.09018 + 2729.92/(273.15+tempC)

	// 10^(pKa-pH) can overflow at extreme pH values. A huge exponent
	// means essentially none of the ammonia is unionized; a hugely
	// negative one means essentially all of it is.
	exponent := pka - ph
	switch {
	case exponent > maxDecimalExponent:
		return 0, nil
	case exponent < -maxDecimalExponent:
		return totalAmmoniaPpm, nil
	}

	return totalAmmoniaPpm / (1 + math.Pow(10, exponent)), nil
}
