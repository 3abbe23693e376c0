package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetVersion(t *testing.T) {
	original := rootCmd.Version
	defer func() { rootCmd.Version = original }()

	SetVersion("1.2.3-test")

	assert.Equal(t, "1.2.3-test", rootCmd.Version)
}

func TestRootCommand(t *testing.T) {
	assert.Equal(t, "trainctl", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
	assert.True(t, rootCmd.SilenceUsage)
	assert.NotNil(t, rootCmd.RunE, "running without a subcommand starts the tile")
}

func TestVersionTemplate(t *testing.T) {
	testCmd := &cobra.Command{
		Use:     "test",
		Version: "1.0.0",
	}
	testCmd.SetVersionTemplate(`{{printf "trainctl version %s\n" .Version}}`)

	var buf bytes.Buffer
	testCmd.SetOut(&buf)
	testCmd.SetArgs([]string{"--version"})

	require.NoError(t, testCmd.Execute())
	assert.Equal(t, "trainctl version 1.0.0\n", buf.String())
}

func TestVersionCommand(t *testing.T) {
	original := rootCmd.Version
	defer func() { rootCmd.Version = original }()
	rootCmd.Version = "0.4.0"

	cmd := newVersionCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "trainctl version 0.4.0\n", buf.String())
}

func TestSubcommands(t *testing.T) {
	found := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		found[c.Name()] = true
	}

	for _, name := range []string{"tile", "journeys", "provider", "version", "self-update"} {
		assert.True(t, found[name], "expected subcommand %s to be registered", name)
	}
}

func TestTileFlags(t *testing.T) {
	for _, c := range []*cobra.Command{rootCmd, newTileCmd()} {
		assert.NotNil(t, c.Flags().Lookup("no-anim"), c.Name())
		assert.NotNil(t, c.Flags().Lookup("debug"), c.Name())
	}
}

func TestJourneysHelp(t *testing.T) {
	cmd := newJourneysCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--help"})

	require.NoError(t, cmd.Execute())
	out := buf.String()
	assert.Contains(t, out, "--plan")
	assert.Contains(t, out, "--output")
	assert.Contains(t, out, "text, table, json or yaml")
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, "DEBUG", levelFor(true).String())
	assert.Equal(t, "INFO", levelFor(false).String())
}
