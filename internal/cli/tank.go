package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aqualog/aqualog/internal/globals"
)

var (
	tankAddVolume float64
	tankAddNotes  string
)

// tankCmd represents the tank command
var tankCmd = &cobra.Command{
	Use:     "tank",
	Aliases: []string{"t", "tanks"},
	Short:   "Manage tank profiles",
	Long:    `Commands for creating, listing, and editing aquarium tank profiles.`,
}

var tankAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a new tank",
	Long: `Create a new tank profile.

Examples:
  aqualog tank add "Living room 180L" --volume 180
  aqualog tank add Quarantine --notes "bare bottom"`,
	Args: cobra.ExactArgs(1),
	Run:  runTankAdd,
}

var tankListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all tanks",
	Run:     runTankList,
}

var tankShowCmd = &cobra.Command{
	Use:   "show <tank_id>",
	Short: "Show a tank as JSON",
	Args:  cobra.ExactArgs(1),
	Run:   runTankShow,
}

var tankRenameCmd = &cobra.Command{
	Use:   "rename <tank_id> <new_name>",
	Short: "Rename a tank",
	Args:  cobra.ExactArgs(2),
	Run:   runTankRename,
}

var tankVolumeCmd = &cobra.Command{
	Use:   "volume <tank_id> <liters>",
	Short: "Update a tank's volume",
	Args:  cobra.ExactArgs(2),
	Run:   runTankVolume,
}

var tankRemoveCmd = &cobra.Command{
	Use:   "remove <tank_id>",
	Short: "Delete a tank and all of its records",
	Long: `Delete a tank. All of the tank's water tests, custom ranges, and
maintenance entries are deleted with it. This cannot be undone.`,
	Args: cobra.ExactArgs(1),
	Run:  runTankRemove,
}

func parseID(arg string) int64 {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		fail("invalid tank id %q", arg)
	}
	return id
}

func parseFloat(arg, what string) float64 {
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		fail("invalid %s %q", what, arg)
	}
	return v
}

func runTankAdd(cmd *cobra.Command, args []string) {
	var volume *float64
	if cmd.Flags().Changed("volume") {
		volume = &tankAddVolume
	}

	tank, err := globals.Tanks.Add(args[0], volume, tankAddNotes)
	if err != nil {
		fail("failed to add tank: %v", err)
	}

	globals.Logger.Debug("Tank created", "id", tank.ID, "name", tank.Name)
	fmt.Printf("Created tank %d (%s)\n", tank.ID, tank.Name)
}

func runTankList(cmd *cobra.Command, args []string) {
	tanks, err := globals.Tanks.List()
	if err != nil {
		fail("failed to fetch tanks: %v", err)
	}

	if len(tanks) == 0 {
		fmt.Println("No tanks found.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	system := displayUnitSystem()

	fmt.Fprintln(w, "ID\tNAME\tVOLUME\tCREATED")
	fmt.Fprintln(w, "--\t----\t------\t-------")

	for _, tank := range tanks {
		volume := "-"
		if tank.VolumeL != nil {
			volume = formatVolume(*tank.VolumeL, system)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
			tank.ID,
			tank.Name,
			volume,
			tank.CreatedAt.Format("2006-01-02"),
		)
	}
}

func runTankShow(cmd *cobra.Command, args []string) {
	tank, err := globals.Tanks.GetByID(parseID(args[0]))
	if err != nil {
		fail("failed to fetch tank: %v", err)
	}
	if tank == nil {
		fail("no tank with id %s", args[0])
	}

	output, err := json.MarshalIndent(tank, "", "  ")
	if err != nil {
		fail("failed to format tank: %v", err)
	}
	fmt.Println(string(output))
}

func runTankRename(cmd *cobra.Command, args []string) {
	tank, err := globals.Tanks.Rename(parseID(args[0]), args[1])
	if err != nil {
		fail("failed to rename tank: %v", err)
	}
	fmt.Printf("Renamed tank %d to %s\n", tank.ID, tank.Name)
}

func runTankVolume(cmd *cobra.Command, args []string) {
	tank, err := globals.Tanks.UpdateVolume(parseID(args[0]), parseFloat(args[1], "volume"))
	if err != nil {
		fail("failed to update volume: %v", err)
	}
	fmt.Printf("Tank %d volume set to %s\n", tank.ID, formatVolume(*tank.VolumeL, displayUnitSystem()))
}

func runTankRemove(cmd *cobra.Command, args []string) {
	id := parseID(args[0])
	if err := globals.Tanks.Remove(id); err != nil {
		fail("failed to remove tank: %v", err)
	}

	globals.Logger.Debug("Tank removed", "id", id)
	fmt.Printf("Removed tank %d and all of its records\n", id)
}

func init() {
	rootCmd.AddCommand(tankCmd)

	tankAddCmd.Flags().Float64Var(&tankAddVolume, "volume", 0, "Tank volume in liters")
	tankAddCmd.Flags().StringVar(&tankAddNotes, "notes", "", "Free-form notes")

	tankCmd.AddCommand(tankAddCmd)
	tankCmd.AddCommand(tankListCmd)
	tankCmd.AddCommand(tankShowCmd)
	tankCmd.AddCommand(tankRenameCmd)
	tankCmd.AddCommand(tankVolumeCmd)
	tankCmd.AddCommand(tankRemoveCmd)
}
