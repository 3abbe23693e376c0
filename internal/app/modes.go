package app

import (
	"context"

	"trainctl/internal/color"
	"trainctl/internal/tui/controller"
	"trainctl/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// runTUIMode executes the interactive terminal UI mode
func runTUIMode(ctx context.Context, config *Config, services *Services) error {
	logging.Info("CLI", "Starting TUI mode...")

	// dark mode by default
	color.Initialize(true)

	// Switch logging to channel-based system for TUI integration
	logChan := logging.InitForTUI(config.LogLevel())
	defer logging.CloseTUIChannel()

	p := controller.NewProgram(controller.ProgramOptions{
		Config:      *config.Trainctl,
		Binder:      services.Binder,
		DebugMode:   config.Debug,
		NoAnimation: config.NoAnimation,
		LogChannel:  logChan,
		TeaOptions:  []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)},
	})

	// Run the TUI until user exits
	if err := p.Run(); err != nil {
		logging.Error("TUI-Lifecycle", err, "Error running TUI program")
		return err
	}
	logging.Info("TUI-Lifecycle", "TUI exited.")

	return nil
}
