package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every lookup into dir so no real config leaks into a test.
func isolate(t *testing.T, dir string) {
	t.Helper()

	originalHome := osUserHomeDir
	originalGetwd := osGetwd
	t.Cleanup(func() {
		osUserHomeDir = originalHome
		osGetwd = originalGetwd
	})

	osUserHomeDir = func() (string, error) { return filepath.Join(dir, "home"), nil }
	osGetwd = func() (string, error) { return filepath.Join(dir, "project"), nil }
	t.Setenv(TokenEnvVar, "")
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadConfig_DefaultOnly(t *testing.T) {
	isolate(t, t.TempDir())

	loaded, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, GetDefaultConfig(), loaded)
	assert.Len(t, loaded.Plans, 4)
	assert.Equal(t, "Trains", loaded.Tile.Label)
	assert.True(t, loaded.Tile.AnimateEnabled())
	assert.Equal(t, BindingModeLocal, loaded.Binding.Mode)
	assert.Equal(t, 15, loaded.Provider.Count)
}

func TestLoadConfig_UserOverride(t *testing.T) {
	dir := t.TempDir()
	isolate(t, dir)

	writeFile(t, filepath.Join(dir, "home", userConfigDir, configFileName), `
provider:
  count: 5
  timeout: 3s
tile:
  animate: false
`)

	loaded, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 5, loaded.Provider.Count)
	assert.Equal(t, 3*time.Second, loaded.Provider.Timeout)
	assert.Equal(t, DefaultEndpoint, loaded.Provider.Endpoint)
	assert.False(t, loaded.Tile.AnimateEnabled())
	assert.Equal(t, DefaultPlans(), loaded.Plans)
}

func TestLoadConfig_ProjectOverridesUser(t *testing.T) {
	dir := t.TempDir()
	isolate(t, dir)

	writeFile(t, filepath.Join(dir, "home", userConfigDir, configFileName), `
binding:
  mode: process
tile:
  label: Mine
`)
	writeFile(t, filepath.Join(dir, "project", projectConfigDir, configFileName), `
binding:
  command: ["./bin/trainctl", "provider"]
plans:
  - from: "admin:fr:1"
    to: "admin:fr:2"
tile:
  label: Team
`)

	loaded, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, BindingModeProcess, loaded.Binding.Mode)
	assert.Equal(t, []string{"./bin/trainctl", "provider"}, loaded.Binding.Command)
	assert.Equal(t, "Team", loaded.Tile.Label)
	require.Len(t, loaded.Plans, 1)
	assert.Equal(t, "admin:fr:1 → admin:fr:2", loaded.Plans[0].Title())
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	isolate(t, dir)

	writeFile(t, filepath.Join(dir, "project", projectConfigDir, configFileName), "provider: [unterminated")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error loading project config")
}

func TestLoadConfig_InvalidMode(t *testing.T) {
	dir := t.TempDir()
	isolate(t, dir)

	writeFile(t, filepath.Join(dir, "home", userConfigDir, configFileName), "binding:\n  mode: carrier-pigeon\n")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "carrier-pigeon")
}

func TestLoadConfig_Token(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		dotenv   string
		yamlFile string
		want     string
	}{
		{
			name: "no token anywhere",
			want: "",
		},
		{
			name:     "from config file",
			yamlFile: "provider:\n  token: from-yaml\n",
			want:     "from-yaml",
		},
		{
			name:     "dotenv beats config file",
			dotenv:   TokenEnvVar + "=from-dotenv\n",
			yamlFile: "provider:\n  token: from-yaml\n",
			want:     "from-dotenv",
		},
		{
			name:   "environment beats dotenv",
			env:    "from-env",
			dotenv: TokenEnvVar + "=from-dotenv\n",
			want:   "from-env",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			isolate(t, dir)
			t.Setenv(TokenEnvVar, tt.env)

			if tt.dotenv != "" {
				writeFile(t, filepath.Join(dir, "project", envFileName), tt.dotenv)
			}
			if tt.yamlFile != "" {
				writeFile(t, filepath.Join(dir, "project", projectConfigDir, configFileName), tt.yamlFile)
			}

			loaded, err := LoadConfig()
			require.NoError(t, err)
			assert.Equal(t, tt.want, loaded.Provider.Token)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(c *Config) {}},
		{
			name:    "process mode needs a command",
			mutate:  func(c *Config) { c.Binding.Mode = BindingModeProcess; c.Binding.Command = nil },
			wantErr: "binding.command is required",
		},
		{
			name:    "negative count",
			mutate:  func(c *Config) { c.Provider.Count = -1 },
			wantErr: "provider.count must not be negative",
		},
		{
			name:    "no plans",
			mutate:  func(c *Config) { c.Plans = nil },
			wantErr: "at least one plan is required",
		},
		{
			name:    "plan without destination",
			mutate:  func(c *Config) { c.Plans[2].To = "" },
			wantErr: "plans[2] needs both from and to",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := GetDefaultConfig()
			tt.mutate(&c)

			err := Validate(c)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestPlanTitle(t *testing.T) {
	assert.Equal(t, "Montauban → Rennes", DefaultPlans()[0].Title())
	assert.Equal(t, "a → Rennes", Plan{From: "a", To: "b", ToName: "Rennes"}.Title())
}

func TestGetUserConfigDir(t *testing.T) {
	isolate(t, "/tmp/x")

	dir, err := GetUserConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/x", "home", ".config", "trainctl"), dir)
}
