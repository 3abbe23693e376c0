package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "trainctl",
	Short: "Upcoming trains in your terminal",
	Long: `trainctl shows a "Trains" tile in a terminal dashboard. Opening the tile
brings up a schedule dialog listing the next departures for your saved
trips, fetched from the SNCF journeys API.

Run without a subcommand to start the dashboard, or use 'trainctl journeys'
to print the schedule without the interface.`,
	Args: cobra.NoArgs,
	RunE: runTile,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. failed requests, invalid configuration)
	SilenceUsage: true,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "trainctl version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newTileCmd())
	rootCmd.AddCommand(newJourneysCmd())
	rootCmd.AddCommand(newProviderCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())

	addTileFlags(rootCmd)
}
