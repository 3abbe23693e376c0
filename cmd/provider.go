package cmd

import (
	"fmt"
	"os"

	"trainctl/internal/app"
	"trainctl/internal/binding"
	"trainctl/pkg/logging"

	"github.com/spf13/cobra"
)

var providerDebug bool

func newProviderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "provider",
		Short: "Serve the schedule provider over stdio",
		Long: `Runs the schedule provider as an MCP server on stdin/stdout.

The dashboard starts this command itself when binding.mode is "process".
It exposes a single request_journeys tool. Logs go to stderr so they never
mix with the protocol stream.`,
		Args: cobra.NoArgs,
		RunE: runProvider,
	}
	cmd.Flags().BoolVar(&providerDebug, "debug", false, "Enable debug logging")
	return cmd
}

func runProvider(cmd *cobra.Command, args []string) error {
	logging.InitForCLI(levelFor(providerDebug), os.Stderr)

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load trainctl configuration: %w", err)
	}
	return binding.ServeProvider(app.NewProviderService(cfg.Provider))
}

func levelFor(debug bool) logging.LogLevel {
	if debug {
		return logging.LevelDebug
	}
	return logging.LevelInfo
}
