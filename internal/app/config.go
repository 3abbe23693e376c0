package app

import (
	"trainctl/internal/config"
	"trainctl/pkg/logging"
)

// Config holds the application configuration
type Config struct {
	// UI settings
	NoAnimation bool

	// Debug settings
	Debug bool

	// Trainctl configuration, filled by NewApplication
	Trainctl *config.Config
}

// NewConfig creates a new application configuration
func NewConfig(noAnimation, debug bool) *Config {
	return &Config{
		NoAnimation: noAnimation,
		Debug:       debug,
	}
}

// LogLevel is the level matching the debug flag.
func (c *Config) LogLevel() logging.LogLevel {
	if c.Debug {
		return logging.LevelDebug
	}
	return logging.LevelInfo
}
