package config

import "time"

const (
	DefaultEndpoint     = "https://api.sncf.com/v1/coverage/sncf/journeys"
	DefaultCount        = 15
	DefaultTimeout      = 15 * time.Second
	DefaultPingInterval = 30 * time.Second
	DefaultTileLabel    = "Trains"
)

// DefaultPlans returns the built-in plans: Montauban and Montfort, both ways
// to and from Rennes.
func DefaultPlans() []Plan {
	return []Plan{
		{From: "admin:fr:35184", FromName: "Montauban", To: "admin:fr:35238", ToName: "Rennes"},
		{From: "admin:fr:35238", FromName: "Rennes", To: "admin:fr:35184", ToName: "Montauban"},
		{From: "admin:fr:35188", FromName: "Montfort", To: "admin:fr:35238", ToName: "Rennes"},
		{From: "admin:fr:35238", FromName: "Rennes", To: "admin:fr:35188", ToName: "Montfort"},
	}
}

// GetDefaultConfig returns the configuration used when no file overrides it.
func GetDefaultConfig() Config {
	return Config{
		Provider: ProviderConfig{
			Endpoint: DefaultEndpoint,
			Count:    DefaultCount,
			Timeout:  DefaultTimeout,
		},
		Binding: BindingConfig{
			Mode:         BindingModeLocal,
			Command:      []string{"trainctl", "provider"},
			PingInterval: DefaultPingInterval,
		},
		Plans: DefaultPlans(),
		Tile: TileConfig{
			Label: DefaultTileLabel,
		},
	}
}
