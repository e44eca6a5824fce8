package cli

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aqualog/aqualog/internal/config"
	"github.com/aqualog/aqualog/internal/globals"
)

// rangeCmd represents the range command
var rangeCmd = &cobra.Command{
	Use:     "range",
	Aliases: []string{"r", "ranges"},
	Short:   "Manage per-tank safe-range overrides",
	Long: `Commands for viewing and editing the safe ranges used to classify
water test readings. Each tank can override the global default range
per parameter; readings are judged against the override when one
exists.`,
}

var rangeSetCmd = &cobra.Command{
	Use:   "set [tank_id] <parameter> <low> <high>",
	Short: "Set a custom safe range for a tank",
	Long: `Set or replace the custom safe range for one parameter of a tank.
When the tank id is omitted, the configured default tank is used.

Examples:
  aqualog range set 1 ph 6.4 7.2
  aqualog range set nitrate 10 30`,
	Args: cobra.RangeArgs(3, 4),
	Run:  runRangeSet,
}

var rangeGetCmd = &cobra.Command{
	Use:   "get [tank_id] <parameter>",
	Short: "Show the effective range for a tank parameter",
	Args:  cobra.RangeArgs(1, 2),
	Run:   runRangeGet,
}

var rangeListCmd = &cobra.Command{
	Use:     "list [tank_id]",
	Aliases: []string{"ls"},
	Short:   "List the effective ranges for a tank",
	Args:    cobra.MaximumNArgs(1),
	Run:     runRangeList,
}

var rangeClearCmd = &cobra.Command{
	Use:   "clear [tank_id] <parameter>",
	Short: "Remove a custom range, restoring the default",
	Args:  cobra.RangeArgs(1, 2),
	Run:   runRangeClear,
}

func parseParameterArg(arg string) config.Parameter {
	param, err := config.ParseParameter(arg)
	if err != nil {
		fail("%v", err)
	}
	return param
}

func runRangeSet(cmd *cobra.Command, args []string) {
	tankID, rest := splitTankArgs(args, 3)
	param := parseParameterArg(rest[0])
	low := parseFloat(rest[1], "low bound")
	high := parseFloat(rest[2], "high bound")

	record, err := globals.CustomRanges.Set(tankID, param, low, high)
	if err != nil {
		fail("failed to set range: %v", err)
	}

	globals.Logger.Debug("Custom range stored", "tank_id", tankID, "parameter", param)
	fmt.Printf("Tank %d %s safe range set to %g–%g %s\n",
		record.TankID, record.Parameter, record.SafeLow, record.SafeHigh, param.Unit())
}

func runRangeGet(cmd *cobra.Command, args []string) {
	tankID, rest := splitTankArgs(args, 1)
	param := parseParameterArg(rest[0])

	rng, err := globals.Ranges.EffectiveRange(tankID, param)
	if err != nil {
		fail("failed to resolve range: %v", err)
	}

	custom, err := globals.CustomRanges.Get(tankID, param)
	if err != nil {
		fail("failed to fetch override: %v", err)
	}

	source := "default"
	if custom != nil {
		source = "custom"
	}
	fmt.Printf("%s: %g–%g %s (%s)\n", param, rng.Low, rng.High, param.Unit(), source)
}

func runRangeList(cmd *cobra.Command, args []string) {
	tankID := resolveTankID(args)

	table, custom, err := globals.Ranges.EffectiveRanges(tankID)
	if err != nil {
		fail("failed to resolve ranges: %v", err)
	}

	params := make([]config.Parameter, 0, len(table))
	for param := range table {
		params = append(params, param)
	}
	sort.Slice(params, func(i, j int) bool { return params[i] < params[j] })

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "PARAMETER\tLOW\tHIGH\tUNIT\tSOURCE")
	fmt.Fprintln(w, "---------\t---\t----\t----\t------")

	for _, param := range params {
		rng := table[param]
		source := "default"
		if custom[param] {
			source = "custom"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			param,
			strconv.FormatFloat(rng.Low, 'f', -1, 64),
			strconv.FormatFloat(rng.High, 'f', -1, 64),
			param.Unit(),
			source,
		)
	}
}

func runRangeClear(cmd *cobra.Command, args []string) {
	tankID, rest := splitTankArgs(args, 1)
	param := parseParameterArg(rest[0])

	if err := globals.CustomRanges.Delete(tankID, param); err != nil {
		fail("failed to clear range: %v", err)
	}
	fmt.Printf("Cleared custom %s range for tank %d\n", param, tankID)
}

func init() {
	rootCmd.AddCommand(rangeCmd)

	rangeCmd.AddCommand(rangeSetCmd)
	rangeCmd.AddCommand(rangeGetCmd)
	rangeCmd.AddCommand(rangeListCmd)
	rangeCmd.AddCommand(rangeClearCmd)
}
