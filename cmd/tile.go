package cmd

import (
	"context"
	"fmt"

	"trainctl/internal/app"

	"github.com/spf13/cobra"
)

// tileNoAnim opens the schedule dialog in place instead of growing it out of the tile.
var tileNoAnim bool

// tileDebug enables verbose logging in the activity log overlay.
var tileDebug bool

func newTileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tile",
		Short: "Start the Trains dashboard (default command)",
		Long: `Starts the terminal dashboard with the Trains tile.

Press enter on the tile to open the schedule dialog. Inside the dialog,
'n' or tab switches to the next saved trip, 'y' copies the journeys and
esc closes it. 'L' shows the activity log and 'q' quits.

Configuration:
  trainctl loads ~/.config/trainctl/config.yaml and then .trainctl/config.yaml
  in the current directory. The API token is read from TRAINCTL_API_TOKEN or
  from a .env file.`,
		Args: cobra.NoArgs,
		RunE: runTile,
	}
	addTileFlags(cmd)
	return cmd
}

func addTileFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&tileNoAnim, "no-anim", false, "Open the schedule dialog without the expand animation")
	cmd.Flags().BoolVar(&tileDebug, "debug", false, "Enable debug logging")
}

// runTile is the main entry point for the tile command
func runTile(cmd *cobra.Command, args []string) error {
	cfg := app.NewConfig(tileNoAnim, tileDebug)

	application, err := app.NewApplication(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return application.Run(ctx)
}
