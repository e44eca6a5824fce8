package chemistry

import (
	"fmt"

	"github.com/aqualog/aqualog/internal/apperrors"
	"github.com/aqualog/aqualog/internal/units"
)

// Dosing rates follow the manufacturers' product instructions. They are
// recommendations, not guarantees; hardness chemistry drifts with the
// source water.

// AlkalineBufferDose returns the grams of Seachem Alkaline Buffer
// needed to raise KH by deltaKH dKH in a tank of volumeL litres.
// 1 teaspoon (6 g) raises 80 L by 2.8 dKH.
func AlkalineBufferDose(volumeL, deltaKH float64) float64 {
	const tspPerLiterPerDKH = 1.0 / (80.0 * 2.8)
	const gramsPerTsp = 6.0
	return volumeL * deltaKH * tspPerLiterPerDKH * gramsPerTsp
}

// EquilibriumDose returns the grams of Seachem Equilibrium needed to
// raise GH by deltaGH dGH in a tank of volumeL litres. 16 g raises
// 80 L by 3 dGH.
func EquilibriumDose(volumeL, deltaGH float64) float64 {
	const gramsPerLiterPerDGH = 16.0 / (80.0 * 3.0)
	return volumeL * deltaGH * gramsPerLiterPerDGH
}

// FritzZyme7Dose returns the dose of FritzZyme 7 nitrifying bacteria in
// millilitres and fluid ounces. New (cycling) systems take 119 ml per
// 38 L; established systems take 60 ml per 38 L.
func FritzZyme7Dose(volumeL float64, newSystem bool) (ml, flOz float64) {
	if newSystem {
		ml = (volumeL / 38.0) * 119.0
	} else {
		ml = (volumeL / 38.0) * 60.0
	}
	return ml, units.MillilitersToFluidOunces(ml)
}

// WaterChangePercentage returns the percentage of water to change to
// dilute a parameter from current down to target. Returns 0 when no
// reduction is needed or possible.
func WaterChangePercentage(current, target float64) float64 {
	if current <= 0 {
		return 0
	}
	if target >= current {
		return 0
	}
	return (current - target) / current * 100
}

// TankVolume computes the volume of a rectangular tank from its
// dimensions, in litres and US gallons. unit is "cm" or "inches".
func TankVolume(length, width, height float64, unit string) (liters, gallons float64, err error) {
	switch unit {
	case "cm":
		liters = length * width * height / 1000
	case "in", "inches":
		liters = length * width * height * units.LitersPerCubicInch
	default:
		return 0, 0, fmt.Errorf("%w: unsupported dimension unit %q (want cm or inches)", apperrors.ErrInvalidInput, unit)
	}
	return liters, units.LitersToGallons(liters), nil
}
