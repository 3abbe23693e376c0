package config

import (
	"time"
)

// Config is the top-level configuration structure for trainctl.
type Config struct {
	Provider ProviderConfig `yaml:"provider"`
	Binding  BindingConfig  `yaml:"binding"`
	Plans    []Plan         `yaml:"plans,omitempty"`
	Tile     TileConfig     `yaml:"tile"`
}

// ProviderConfig configures the HTTP journey provider.
type ProviderConfig struct {
	Endpoint string        `yaml:"endpoint,omitempty"` // Journeys endpoint of the navitia coverage
	Token    string        `yaml:"token,omitempty"`    // Sent verbatim as the Authorization header
	Count    int           `yaml:"count,omitempty"`    // Number of journeys requested per plan
	Timeout  time.Duration `yaml:"timeout,omitempty"`  // Per-request timeout
}

// BindingMode selects how the tile reaches the provider.
type BindingMode string

const (
	// BindingModeLocal runs the provider inside the tile process.
	BindingModeLocal BindingMode = "local"
	// BindingModeProcess spawns the provider as a child process and talks MCP over stdio.
	BindingModeProcess BindingMode = "process"
)

// BindingConfig configures the bind mechanism.
type BindingConfig struct {
	Mode         BindingMode   `yaml:"mode,omitempty"`
	Command      []string      `yaml:"command,omitempty"`      // Provider command for process mode, e.g. ["trainctl", "provider"]
	PingInterval time.Duration `yaml:"pingInterval,omitempty"` // Liveness ping period for process mode
}

// Plan is one origin/destination pair the schedule dialog can show.
type Plan struct {
	From     string `yaml:"from"`
	FromName string `yaml:"fromName,omitempty"`
	To       string `yaml:"to"`
	ToName   string `yaml:"toName,omitempty"`
}

// Title renders the plan as "From → To", falling back to the place ids.
func (p Plan) Title() string {
	from, to := p.FromName, p.ToName
	if from == "" {
		from = p.From
	}
	if to == "" {
		to = p.To
	}
	return from + " → " + to
}

// TileConfig configures the launcher tile.
type TileConfig struct {
	Label   string `yaml:"label,omitempty"`
	Animate *bool  `yaml:"animate,omitempty"` // nil means the default (enabled)
}

// AnimateEnabled reports whether the dialog should expand from the tile.
func (t TileConfig) AnimateEnabled() bool {
	return t.Animate == nil || *t.Animate
}
