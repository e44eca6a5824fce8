package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aqualog/aqualog/internal/chemistry"
	"github.com/aqualog/aqualog/internal/config"
	"github.com/aqualog/aqualog/internal/globals"
	"github.com/aqualog/aqualog/internal/models"
	"github.com/aqualog/aqualog/internal/ranges"
	"github.com/aqualog/aqualog/internal/units"
)

var (
	testReadings = map[config.Parameter]*float64{}
	testCO2Color string
	testNotes    string
	testKHDrops  float64
	testGHDrops  float64
)

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:     "test",
	Aliases: []string{"tests"},
	Short:   "Record and evaluate water tests",
	Long:    `Commands for recording water test readings and classifying them against each tank's safe ranges.`,
}

var testRecordCmd = &cobra.Command{
	Use:   "record [tank_id]",
	Short: "Record a water test",
	Long: `Record a set of test-kit readings for a tank. Only the provided
flags are stored; an absent reading is distinct from a reading of zero.
KH and GH may be given directly in degrees or as reagent drop counts.
When the tank id is omitted, the configured default tank is used.

Examples:
  aqualog test record 1 --ph 7.0 --ammonia 0.25 --temperature 24
  aqualog test record --kh-drops 5 --gh-drops 8 --co2 Green`,
	Args: cobra.MaximumNArgs(1),
	Run:  runTestRecord,
}

var testLatestCmd = &cobra.Command{
	Use:   "latest [tank_id]",
	Short: "Show the latest water test for a tank",
	Args:  cobra.MaximumNArgs(1),
	Run:   runTestLatest,
}

var testEvaluateCmd = &cobra.Command{
	Use:     "evaluate [tank_id]",
	Aliases: []string{"eval"},
	Short:   "Classify the latest water test against the tank's safe ranges",
	Long: `Classify every reading of the tank's most recent water test against
the effective safe ranges (custom overrides first, global defaults
otherwise). Ammonia toxicity is judged on the unionized NH3 fraction
computed from total ammonia, pH, and temperature, not on the raw
total.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runTestEvaluate,
}

func runTestRecord(cmd *cobra.Command, args []string) {
	test := &models.WaterTest{TankID: resolveTankID(args), Notes: testNotes}

	for param, value := range testReadings {
		if cmd.Flags().Changed(string(param)) {
			test.SetReading(param, *value)
		}
	}
	// One reagent drop equals one degree of hardness, so a drop count
	// is stored as the dKH/dGH value directly.
	if cmd.Flags().Changed("kh-drops") {
		if _, err := units.DropsToPpm(testKHDrops); err != nil {
			fail("invalid KH drop count: %v", err)
		}
		test.SetReading(config.ParameterKH, testKHDrops)
	}
	if cmd.Flags().Changed("gh-drops") {
		if _, err := units.DropsToPpm(testGHDrops); err != nil {
			fail("invalid GH drop count: %v", err)
		}
		test.SetReading(config.ParameterGH, testGHDrops)
	}
	if cmd.Flags().Changed("co2") {
		test.CO2Indicator = &testCO2Color
	}

	saved, err := globals.WaterTests.Save(test)
	if err != nil {
		fail("failed to record test: %v", err)
	}

	globals.Logger.Debug("Water test recorded", "id", saved.ID, "tank_id", saved.TankID)
	fmt.Printf("Recorded water test %d for tank %d at %s\n",
		saved.ID, saved.TankID, saved.Date.Format("2006-01-02T15:04:05Z07:00"))

	if saved.KH != nil {
		ppm, _ := units.DropsToPpm(*saved.KH)
		fmt.Printf("KH: %.1f ppm\n", ppm)
	}
	if saved.GH != nil {
		ppm, _ := units.DropsToPpm(*saved.GH)
		fmt.Printf("GH: %.1f ppm\n", ppm)
	}
}

func runTestLatest(cmd *cobra.Command, args []string) {
	tankID := resolveTankID(args)

	test, err := globals.WaterTests.LatestForTank(tankID)
	if err != nil {
		fail("failed to fetch test: %v", err)
	}
	if test == nil {
		fail("no water tests recorded for tank %d", tankID)
	}

	output, err := json.MarshalIndent(test, "", "  ")
	if err != nil {
		fail("failed to format test: %v", err)
	}
	fmt.Println(string(output))
}

func runTestEvaluate(cmd *cobra.Command, args []string) {
	tankID := resolveTankID(args)

	tank, err := globals.Tanks.GetByID(tankID)
	if err != nil {
		fail("failed to fetch tank: %v", err)
	}
	if tank == nil {
		fail("no tank with id %d", tankID)
	}

	test, err := globals.WaterTests.LatestForTank(tankID)
	if err != nil {
		fail("failed to fetch test: %v", err)
	}
	if test == nil {
		fail("no water tests recorded for tank %d", tankID)
	}

	system := displayUnitSystem()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "Tank %d (%s), tested %s\n\n", tank.ID, tank.Name, test.Date.Format("2006-01-02 15:04"))
	fmt.Fprintln(w, "PARAMETER\tVALUE\tSAFE RANGE\tSTATUS")
	fmt.Fprintln(w, "---------\t-----\t----------\t------")

	for _, param := range config.Parameters() {
		value := test.Reading(param)
		if value == nil {
			continue
		}

		rng, err := globals.Ranges.EffectiveRange(tankID, param)
		if err != nil {
			fail("failed to resolve %s range: %v", param, err)
		}

		status := chemistry.EvaluateParameter(param, *value, rng)
		if param == config.ParameterAmmonia {
			status = evaluateAmmonia(test, *value)
		}

		// Classification always runs on canonical units; only the
		// printed value and range follow the display preference.
		valueStr := strconv.FormatFloat(*value, 'f', -1, 64) + " " + param.Unit()
		rangeStr := fmt.Sprintf("%g–%g", rng.Low, rng.High)
		if param == config.ParameterTemperature && system == config.UnitSystemImperial {
			valueStr = formatTemperature(*value, system)
			rangeStr = fmt.Sprintf("%.1f–%.1f", units.CelsiusToFahrenheit(rng.Low), units.CelsiusToFahrenheit(rng.High))
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", param, valueStr, rangeStr, status)
	}

	if test.CO2Indicator != nil {
		status, err := chemistry.ClassifyCO2Indicator(*test.CO2Indicator)
		if err != nil {
			fail("%v", err)
		}
		// A blue drop checker outside the CO2 on-period is expected,
		// not a warning.
		if status == chemistry.StatusWarning {
			onHour, offHour := ranges.CO2Schedule(tank)
			if !ranges.CO2On(onHour, offHour, test.Date.Hour()) {
				status = chemistry.StatusSafe
			}
		}
		fmt.Fprintf(w, "co2_indicator\t%s\t%s\t%s\n", *test.CO2Indicator, config.CO2IndicatorGreen, status)
	}
}

// evaluateAmmonia classifies an ammonia reading on its toxic unionized
// fraction when pH and temperature were recorded alongside it, falling
// back to the plain range check otherwise.
func evaluateAmmonia(test *models.WaterTest, totalPpm float64) chemistry.Status {
	if test.PH == nil || test.Temperature == nil {
		rng, err := globals.Ranges.EffectiveRange(test.TankID, config.ParameterAmmonia)
		if err != nil {
			return chemistry.StatusWarning
		}
		return chemistry.Classify(totalPpm, rng)
	}

	nh3, err := chemistry.UnionizedAmmonia(totalPpm, *test.PH, *test.Temperature)
	if err != nil {
		fail("failed to compute NH3 fraction: %v", err)
	}
	return chemistry.ClassifyAmmonia(nh3)
}

func init() {
	rootCmd.AddCommand(testCmd)

	for _, param := range config.Parameters() {
		if param == config.ParameterKH || param == config.ParameterGH {
			continue
		}
		value := new(float64)
		testReadings[param] = value
		testRecordCmd.Flags().Float64Var(value, string(param),
			0, fmt.Sprintf("%s reading (%s)", param, param.Unit()))
	}
	khValue, ghValue := new(float64), new(float64)
	testReadings[config.ParameterKH] = khValue
	testReadings[config.ParameterGH] = ghValue
	testRecordCmd.Flags().Float64Var(khValue, "kh", 0, "KH reading (°dKH)")
	testRecordCmd.Flags().Float64Var(ghValue, "gh", 0, "GH reading (°dGH)")
	testRecordCmd.Flags().Float64Var(&testKHDrops, "kh-drops", 0, "KH test-kit drop count")
	testRecordCmd.Flags().Float64Var(&testGHDrops, "gh-drops", 0, "GH test-kit drop count")
	testRecordCmd.Flags().StringVar(&testCO2Color, "co2", "", "CO2 drop checker color (Green, Blue, Yellow)")
	testRecordCmd.Flags().StringVar(&testNotes, "notes", "", "Free-form notes")

	testCmd.AddCommand(testRecordCmd)
	testCmd.AddCommand(testLatestCmd)
	testCmd.AddCommand(testEvaluateCmd)
}
