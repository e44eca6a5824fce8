package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aqualog/aqualog/internal/chemistry"
	"github.com/aqualog/aqualog/internal/units"
)

var (
	toolsVolumeUnit     string
	toolsBacteriaMature bool
)

// toolsCmd represents the tools command
var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Chemistry and dosing calculators",
	Long:  `Stand-alone calculators for tank volume, supplement dosing, and water changes.`,
}

var toolsVolumeCmd = &cobra.Command{
	Use:   "volume <length> <width> <height>",
	Short: "Compute tank volume from dimensions",
	Long: `Compute the volume of a rectangular tank in liters and US gallons.

Examples:
  aqualog tools volume 100 50 40
  aqualog tools volume 36 18 20 --unit inches`,
	Args: cobra.ExactArgs(3),
	Run:  runToolsVolume,
}

var toolsDoseKHCmd = &cobra.Command{
	Use:   "dose-kh <volume_l> <delta_kh>",
	Short: "Alkaline Buffer dose to raise KH",
	Args:  cobra.ExactArgs(2),
	Run:   runToolsDoseKH,
}

var toolsDoseGHCmd = &cobra.Command{
	Use:   "dose-gh <volume_l> <delta_gh>",
	Short: "Equilibrium dose to raise GH",
	Args:  cobra.ExactArgs(2),
	Run:   runToolsDoseGH,
}

var toolsBacteriaCmd = &cobra.Command{
	Use:   "bacteria <volume_l>",
	Short: "FritzZyme 7 nitrifying bacteria dose",
	Args:  cobra.ExactArgs(1),
	Run:   runToolsBacteria,
}

var toolsWaterChangeCmd = &cobra.Command{
	Use:   "water-change <current> <target>",
	Short: "Water change percentage to dilute a parameter",
	Args:  cobra.ExactArgs(2),
	Run:   runToolsWaterChange,
}

var toolsDropsCmd = &cobra.Command{
	Use:   "drops <count>",
	Short: "Convert a KH/GH drop count to ppm",
	Args:  cobra.ExactArgs(1),
	Run:   runToolsDrops,
}

func runToolsVolume(cmd *cobra.Command, args []string) {
	length := parseFloat(args[0], "length")
	width := parseFloat(args[1], "width")
	height := parseFloat(args[2], "height")

	liters, gallons, err := chemistry.TankVolume(length, width, height, toolsVolumeUnit)
	if err != nil {
		fail("%v", err)
	}
	fmt.Printf("%.1f L (%.1f US gal)\n", liters, gallons)
}

func runToolsDoseKH(cmd *cobra.Command, args []string) {
	volumeL := parseFloat(args[0], "volume")
	deltaKH := parseFloat(args[1], "KH delta")

	grams := chemistry.AlkalineBufferDose(volumeL, deltaKH)
	fmt.Printf("Dose %.2f g of Alkaline Buffer to raise KH by %g dKH in %g L\n", grams, deltaKH, volumeL)
}

func runToolsDoseGH(cmd *cobra.Command, args []string) {
	volumeL := parseFloat(args[0], "volume")
	deltaGH := parseFloat(args[1], "GH delta")

	grams := chemistry.EquilibriumDose(volumeL, deltaGH)
	fmt.Printf("Dose %.2f g of Equilibrium to raise GH by %g dGH in %g L\n", grams, deltaGH, volumeL)
}

func runToolsBacteria(cmd *cobra.Command, args []string) {
	volumeL := parseFloat(args[0], "volume")

	ml, flOz := chemistry.FritzZyme7Dose(volumeL, !toolsBacteriaMature)
	system := "new"
	if toolsBacteriaMature {
		system = "established"
	}
	fmt.Printf("Dose %.0f ml (%.1f fl oz) of FritzZyme 7 for a %s %g L system\n", ml, flOz, system, volumeL)
}

func runToolsWaterChange(cmd *cobra.Command, args []string) {
	current := parseFloat(args[0], "current value")
	target := parseFloat(args[1], "target value")

	pct := chemistry.WaterChangePercentage(current, target)
	if pct == 0 {
		fmt.Println("No water change needed.")
		return
	}
	fmt.Printf("Change %.0f%% of the water to get from %g to %g\n", pct, current, target)
}

func runToolsDrops(cmd *cobra.Command, args []string) {
	drops := parseFloat(args[0], "drop count")

	ppm, err := units.DropsToPpm(drops)
	if err != nil {
		fail("%v", err)
	}
	fmt.Printf("%g drops = %g dKH/dGH = %.1f ppm\n", drops, drops, ppm)
}

func init() {
	rootCmd.AddCommand(toolsCmd)

	toolsVolumeCmd.Flags().StringVar(&toolsVolumeUnit, "unit", "cm", "Dimension unit (cm or inches)")
	toolsBacteriaCmd.Flags().BoolVar(&toolsBacteriaMature, "established", false, "Dose for an established system instead of a new one")

	toolsCmd.AddCommand(toolsVolumeCmd)
	toolsCmd.AddCommand(toolsDoseKHCmd)
	toolsCmd.AddCommand(toolsDoseGHCmd)
	toolsCmd.AddCommand(toolsBacteriaCmd)
	toolsCmd.AddCommand(toolsWaterChangeCmd)
	toolsCmd.AddCommand(toolsDropsCmd)
}
