package app

import (
	"context"
	"fmt"
	"os"

	"trainctl/internal/config"
	"trainctl/pkg/logging"
)

// Application is the main application structure that bootstraps and runs the tile
type Application struct {
	config   *Config
	services *Services
}

// NewApplication loads the configuration and wires the services.
func NewApplication(cfg *Config) (*Application, error) {
	// Replaced by the TUI channel once the program starts.
	logging.InitForCLI(cfg.LogLevel(), os.Stderr)

	if cfg.Trainctl == nil {
		loaded, err := config.LoadConfig()
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load trainctl configuration")
			return nil, fmt.Errorf("failed to load trainctl configuration: %w", err)
		}
		cfg.Trainctl = &loaded
	}

	services, err := InitializeServices(cfg)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to initialize services")
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &Application{
		config:   cfg,
		services: services,
	}, nil
}

// Run runs the tile until the user quits or ctx is cancelled.
func (a *Application) Run(ctx context.Context) error {
	defer a.services.Close()
	return runTUIMode(ctx, a.config, a.services)
}
