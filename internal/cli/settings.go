package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aqualog/aqualog/internal/config"
	"github.com/aqualog/aqualog/internal/globals"
)

// settingsCmd represents the settings command
var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "View and edit user preferences",
	Long: `Commands for the settings file (display unit system, default tank).
Preferences only affect presentation and command defaults; stored
readings always stay in canonical units.`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current settings as JSON",
	Args:  cobra.NoArgs,
	Run:   runSettingsShow,
}

var settingsUnitCmd = &cobra.Command{
	Use:   "unit <metric|imperial>",
	Short: "Set the display unit system",
	Args:  cobra.ExactArgs(1),
	Run:   runSettingsUnit,
}

var settingsDefaultTankCmd = &cobra.Command{
	Use:   "default-tank <tank_id>",
	Short: "Set the tank used when a command omits its tank argument",
	Args:  cobra.ExactArgs(1),
	Run:   runSettingsDefaultTank,
}

func runSettingsShow(cmd *cobra.Command, args []string) {
	output, err := json.MarshalIndent(globals.Settings, "", "  ")
	if err != nil {
		fail("failed to format settings: %v", err)
	}
	fmt.Println(string(output))
}

func runSettingsUnit(cmd *cobra.Command, args []string) {
	system := args[0]
	if system != config.UnitSystemMetric && system != config.UnitSystemImperial {
		fail("invalid unit system %q (expected metric or imperial)", system)
	}

	globals.Settings.UnitSystem = system
	if err := globals.Settings.Save(); err != nil {
		fail("failed to save settings: %v", err)
	}
	fmt.Printf("Display unit system set to %s\n", system)
}

func runSettingsDefaultTank(cmd *cobra.Command, args []string) {
	id := parseID(args[0])

	tank, err := globals.Tanks.GetByID(id)
	if err != nil {
		fail("failed to fetch tank: %v", err)
	}
	if tank == nil {
		fail("no tank with id %d", id)
	}

	globals.Settings.DefaultTankID = &tank.ID
	if err := globals.Settings.Save(); err != nil {
		fail("failed to save settings: %v", err)
	}
	fmt.Printf("Default tank set to %d (%s)\n", tank.ID, tank.Name)
}

func init() {
	rootCmd.AddCommand(settingsCmd)

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsUnitCmd)
	settingsCmd.AddCommand(settingsDefaultTankCmd)
}
