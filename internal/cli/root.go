package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aqualog/aqualog/internal/globals"
	"github.com/aqualog/aqualog/internal/version"
)

var (
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "aqualog",
	Short: "Local aquarium water-quality logger",
	Long: `AquaLog records water test results for your aquariums, keeps per-tank
safe-range overrides, and derives chemistry-based warnings and dosing
recommendations from stored readings.

All data lives in a single local SQLite file; there is no server and no
network access.`,
	Version: version.GetVersion(),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := globals.Initialize(verbose); err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
			os.Exit(1)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose (debug) logging")
}

// fail prints an error and exits. Validation failures carry actionable
// messages; storage failures read as generic retry-later errors.
func fail(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
