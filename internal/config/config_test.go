package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/k0ns0l/configdrift/internal/errors"
	"github.com/k0ns0l/configdrift/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	// Run from an empty directory so no local config file is picked up.
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(oldWd) })

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, logging.LogLevelInfo, cfg.Logging.Level)
	assert.Equal(t, logging.LogFormatText, cfg.Logging.Format)
	assert.False(t, cfg.Output.Quiet)
}

func TestLoadConfig_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "configdrift.yaml")
	content := `
logging:
  level: debug
  format: json
output:
  quiet: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, logging.LogLevelDebug, cfg.Logging.Level)
	assert.Equal(t, logging.LogFormatJSON, cfg.Logging.Format)
	assert.True(t, cfg.Output.Quiet)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeConfig, errors.GetErrorType(err))
}

func TestLoadConfig_InvalidLevel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "configdrift.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: loud\n"), 0o600))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid logging level")
}

func TestLoadConfig_InvalidFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "configdrift.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  format: xml\n"), 0o600))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid logging format")
}

func TestSaveAndReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultConfigFileName)

	original := DefaultConfig()
	original.Logging.Level = logging.LogLevelWarn
	original.Output.Quiet = true
	require.NoError(t, original.Save(path))
	assert.True(t, ConfigExists(path))

	reloaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, logging.LogLevelWarn, reloaded.Logging.Level)
	assert.True(t, reloaded.Output.Quiet)
}

func TestConfigExists(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, ConfigExists(filepath.Join(dir, "absent.yaml")))
	assert.False(t, ConfigExists(dir))

	path := filepath.Join(dir, "present.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  quiet: false\n"), 0o600))
	assert.True(t, ConfigExists(path))
}

func TestGetConfigFilePath_Explicit(t *testing.T) {
	assert.Equal(t, "/etc/cd.yaml", GetConfigFilePath("/etc/cd.yaml"))
}
