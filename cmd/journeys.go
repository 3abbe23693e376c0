package cmd

import (
	"context"
	"fmt"
	"time"

	"trainctl/internal/app"
	"trainctl/internal/cli"
	"trainctl/internal/config"
	"trainctl/internal/provider"
	"trainctl/pkg/logging"

	"github.com/spf13/cobra"
)

// Replaced in tests.
var (
	loadConfig          = config.LoadConfig
	newJourneysProvider = func(cfg config.ProviderConfig) provider.Provider {
		return app.NewProviderService(cfg)
	}
)

type journeysOptions struct {
	plan     int
	all      bool
	from     string
	to       string
	datetime string
	output   string
	debug    bool
}

func newJourneysCmd() *cobra.Command {
	opts := &journeysOptions{}

	cmd := &cobra.Command{
		Use:   "journeys",
		Short: "Print upcoming journeys without the dashboard",
		Long: `Fetches upcoming journeys and prints them, one per line.

By default the first saved trip is used. Pick another one with --plan,
fetch all of them at once with --all, or ask for any pair of stops with
--from and --to.

Examples:
  trainctl journeys
  trainctl journeys --plan 2
  trainctl journeys --all -o table
  trainctl journeys --from admin:fr:35184 --to admin:fr:35238 --datetime 20240304T070000 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJourneys(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.plan, "plan", 1, "Saved trip to fetch, starting at 1")
	cmd.Flags().BoolVar(&opts.all, "all", false, "Fetch every saved trip")
	cmd.Flags().StringVar(&opts.from, "from", "", "Departure stop area id (requires --to)")
	cmd.Flags().StringVar(&opts.to, "to", "", "Arrival stop area id (requires --from)")
	cmd.Flags().StringVar(&opts.datetime, "datetime", "", "Earliest departure, as yyyyMMddTHHmmss in local time")
	cmd.Flags().StringVarP(&opts.output, "output", "o", string(cli.OutputFormatText), "Output format: text, table, json or yaml")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	cmd.MarkFlagsRequiredTogether("from", "to")
	cmd.MarkFlagsMutuallyExclusive("all", "plan")
	cmd.MarkFlagsMutuallyExclusive("all", "from")
	cmd.MarkFlagsMutuallyExclusive("plan", "from")

	return cmd
}

func runJourneys(cmd *cobra.Command, opts *journeysOptions) error {
	logging.InitForCLI(levelFor(opts.debug), cmd.ErrOrStderr())

	format, err := cli.ParseOutputFormat(opts.output)
	if err != nil {
		return err
	}

	var at *time.Time
	if opts.datetime != "" {
		t, err := provider.ParseQueryTime(opts.datetime)
		if err != nil {
			return fmt.Errorf("invalid --datetime: %w", err)
		}
		at = &t
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load trainctl configuration: %w", err)
	}

	plans, err := selectPlans(cfg.Plans, opts)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	results := app.FetchPlans(ctx, newJourneysProvider(cfg.Provider), plans, at)
	if err := cli.NewPrinter(cmd.OutOrStdout(), format).Print(results); err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			logging.Error("CLI", r.Err, "Fetching %s failed", r.Plan.Title())
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d trips could not be fetched", failed, len(results))
	}
	return nil
}

func selectPlans(saved []config.Plan, opts *journeysOptions) ([]config.Plan, error) {
	switch {
	case opts.from != "" || opts.to != "":
		return []config.Plan{{From: opts.from, To: opts.to}}, nil
	case opts.all:
		return saved, nil
	case opts.plan < 1 || opts.plan > len(saved):
		return nil, fmt.Errorf("--plan must be between 1 and %d, got %d", len(saved), opts.plan)
	default:
		return []config.Plan{saved[opts.plan-1]}, nil
	}
}
