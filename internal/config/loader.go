package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"trainctl/pkg/logging"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/trainctl"
	projectConfigDir = ".trainctl"
	configFileName   = "config.yaml"
	envFileName      = ".env"

	// TokenEnvVar overrides provider.token when set.
	TokenEnvVar = "TRAINCTL_API_TOKEN"

	subsystem = "Config"
)

// LoadConfig loads the trainctl configuration by layering default, user, and
// project settings, then resolves the API token from the environment.
func LoadConfig() (Config, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// user config is optional
		logging.Warn(subsystem, "Could not determine user config path: %v", err)
	} else {
		config, err = overlayFile(config, userConfigPath)
		if err != nil {
			return Config{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
		}
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		logging.Warn(subsystem, "Could not determine project config path: %v", err)
	} else {
		config, err = overlayFile(config, projectConfigPath)
		if err != nil {
			return Config{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
		}
	}

	token, err := resolveToken()
	if err != nil {
		return Config{}, err
	}
	if token != "" {
		config.Provider.Token = token
	}

	if err := Validate(config); err != nil {
		return Config{}, err
	}
	return config, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

var getEnvFilePath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, envFileName), nil
}

func overlayFile(base Config, path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return base, nil
	}
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return Config{}, err
	}
	logging.Debug(subsystem, "Loaded %s", path)
	return mergeConfigs(base, overlay), nil
}

// loadConfigFromFile loads a Config from a YAML file.
func loadConfigFromFile(filePath string) (Config, error) {
	var config Config
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, err
	}
	return config, nil
}

// resolveToken prefers the process environment over the working directory's
// .env file. The .env file is read without touching the environment.
func resolveToken() (string, error) {
	if token := os.Getenv(TokenEnvVar); token != "" {
		return token, nil
	}

	envPath, err := getEnvFilePath()
	if err != nil {
		logging.Warn(subsystem, "Could not determine .env path: %v", err)
		return "", nil
	}
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		return "", nil
	}

	values, err := godotenv.Read(envPath)
	if err != nil {
		return "", fmt.Errorf("error reading %s: %w", envPath, err)
	}
	return values[TokenEnvVar], nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Zero values in the
// overlay leave the base untouched; a non-empty plan list replaces the base
// list as a whole.
func mergeConfigs(base, overlay Config) Config {
	merged := base

	if overlay.Provider.Endpoint != "" {
		merged.Provider.Endpoint = overlay.Provider.Endpoint
	}
	if overlay.Provider.Token != "" {
		merged.Provider.Token = overlay.Provider.Token
	}
	if overlay.Provider.Count != 0 {
		merged.Provider.Count = overlay.Provider.Count
	}
	if overlay.Provider.Timeout != 0 {
		merged.Provider.Timeout = overlay.Provider.Timeout
	}

	if overlay.Binding.Mode != "" {
		merged.Binding.Mode = overlay.Binding.Mode
	}
	if len(overlay.Binding.Command) > 0 {
		merged.Binding.Command = append([]string(nil), overlay.Binding.Command...)
	}
	if overlay.Binding.PingInterval != 0 {
		merged.Binding.PingInterval = overlay.Binding.PingInterval
	}

	if len(overlay.Plans) > 0 {
		merged.Plans = append([]Plan(nil), overlay.Plans...)
	}

	if overlay.Tile.Label != "" {
		merged.Tile.Label = overlay.Tile.Label
	}
	if overlay.Tile.Animate != nil {
		animate := *overlay.Tile.Animate
		merged.Tile.Animate = &animate
	}

	return merged
}

// Validate reports every problem that would make config unusable.
func Validate(config Config) error {
	var errs []error

	switch config.Binding.Mode {
	case BindingModeLocal:
	case BindingModeProcess:
		if len(config.Binding.Command) == 0 {
			errs = append(errs, errors.New("binding.command is required in process mode"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown binding.mode %q", config.Binding.Mode))
	}

	if config.Provider.Count < 0 {
		errs = append(errs, fmt.Errorf("provider.count must not be negative, got %d", config.Provider.Count))
	}
	if len(config.Plans) == 0 {
		errs = append(errs, errors.New("at least one plan is required"))
	}
	for i, plan := range config.Plans {
		if plan.From == "" || plan.To == "" {
			errs = append(errs, fmt.Errorf("plans[%d] needs both from and to", i))
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
