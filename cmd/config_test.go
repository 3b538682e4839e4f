package cmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/k0ns0l/configdrift/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigInitCommand(t *testing.T) {
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(oldWd) })

	buf := &bytes.Buffer{}
	configInitCmd.SetOut(buf)
	defer configInitCmd.SetOut(nil)

	require.NoError(t, configInitCmd.RunE(configInitCmd, nil))
	assert.Contains(t, buf.String(), "Created configuration file")
	assert.True(t, config.ConfigExists(config.DefaultConfigFileName))

	// A second init without --force refuses to overwrite.
	err = configInitCmd.RunE(configInitCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestConfigShowCommand_YAML(t *testing.T) {
	buf := &bytes.Buffer{}
	configShowCmd.SetOut(buf)
	defer configShowCmd.SetOut(nil)

	require.NoError(t, configShowCmd.RunE(configShowCmd, nil))
	assert.Contains(t, buf.String(), "logging:")
	assert.Contains(t, buf.String(), "output:")
}

func TestConfigShowCommand_UnsupportedFormat(t *testing.T) {
	require.NoError(t, configShowCmd.Flags().Set("output", "toml"))
	defer configShowCmd.Flags().Set("output", "yaml") //nolint:errcheck

	err := configShowCmd.RunE(configShowCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}
