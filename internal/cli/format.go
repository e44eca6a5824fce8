package cli

import (
	"fmt"

	"github.com/aqualog/aqualog/internal/config"
	"github.com/aqualog/aqualog/internal/globals"
	"github.com/aqualog/aqualog/internal/units"
)

// displayUnitSystem returns the user's preferred unit system. Stored
// values are always canonical (litres, °C); the preference only affects
// presentation.
func displayUnitSystem() string {
	if globals.Settings != nil && globals.Settings.UnitSystem == config.UnitSystemImperial {
		return config.UnitSystemImperial
	}
	return config.UnitSystemMetric
}

// formatVolume renders a canonical litre value in the preferred unit
// system, with the other system in parentheses.
func formatVolume(liters float64, system string) string {
	if system == config.UnitSystemImperial {
		return fmt.Sprintf("%.1f US gal (%.1f L)", units.LitersToGallons(liters), liters)
	}
	return fmt.Sprintf("%.1f L (%.1f US gal)", liters, units.LitersToGallons(liters))
}

// formatTemperature renders a canonical °C value in the preferred unit
// system.
func formatTemperature(celsius float64, system string) string {
	if system == config.UnitSystemImperial {
		return fmt.Sprintf("%.1f °F", units.CelsiusToFahrenheit(celsius))
	}
	return fmt.Sprintf("%.1f °C", celsius)
}

// resolveTankID returns the tank id from the first positional argument,
// falling back to the configured default tank when the argument is
// omitted.
func resolveTankID(args []string) int64 {
	if len(args) > 0 {
		return parseID(args[0])
	}
	if globals.Settings != nil && globals.Settings.DefaultTankID != nil {
		return *globals.Settings.DefaultTankID
	}
	fail("no tank id given and no default tank configured (see 'aqualog settings default-tank')")
	return 0
}

// splitTankArgs resolves the optional leading tank id of a command
// whose remaining positional arguments number rest.
func splitTankArgs(args []string, rest int) (int64, []string) {
	if len(args) > rest {
		return parseID(args[0]), args[1:]
	}
	return resolveTankID(nil), args
}
