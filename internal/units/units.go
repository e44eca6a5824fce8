// Package units converts between the measurement units used by liquid
// aquarium test kits and the canonical units everything is stored in
// (ppm, °C, litres).
package units

import (
	"fmt"

	"github.com/aqualog/aqualog/internal/apperrors"
)

const (
	// One drop of a KH/GH reagent kit equals one degree of hardness,
	// which is 17.86 ppm as CaCO3.
	PpmPerDrop = 17.86

	GallonsPerLiter          = 0.264172
	LitersPerCubicInch       = 0.0163871
	MillilitersPerFluidOunce = 29.5735
)

// DropsToPpm converts a KH/GH drop count to ppm. Negative drop counts
// are physically meaningless and rejected.
func DropsToPpm(drops float64) (float64, error) {
	if drops < 0 {
		return 0, fmt.Errorf("%w: drop count cannot be negative (%g)", apperrors.ErrInvalidInput, drops)
	}
	return drops * PpmPerDrop, nil
}

func LitersToGallons(liters float64) float64 {
	return liters * GallonsPerLiter
}

func GallonsToLiters(gallons float64) float64 {
	return gallons / GallonsPerLiter
}

func CelsiusToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}

func FahrenheitToCelsius(f float64) float64 {
	return (f - 32) * 5 / 9
}

func MillilitersToFluidOunces(ml float64) float64 {
	return ml / MillilitersPerFluidOunce
}
