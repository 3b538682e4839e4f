package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/k0ns0l/configdrift/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultLoggerConfig()
	cfg.Level = LogLevelWarn

	logger := NewLogger(cfg, &buf)
	logger.Info("should be filtered")
	logger.Warn("should appear")

	out := buf.String()
	assert.NotContains(t, out, "should be filtered")
	assert.Contains(t, out, "should appear")
}

func TestNewLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultLoggerConfig()
	cfg.Format = LogFormatJSON

	logger := NewLogger(cfg, &buf)
	logger.Info("hello", "key", "value")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "value", entry["key"])
}

func TestLogError_StructuredFields(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultLoggerConfig()
	cfg.Format = LogFormatJSON

	logger := NewLogger(cfg, &buf)
	err := errors.ErrFileNotFound.WithContext("path", "/tmp/missing.json")
	logger.LogError(context.Background(), err, "load failed")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "load failed", entry["msg"])
	assert.Equal(t, "INPUT", entry["error_type"])
	assert.Equal(t, "FILE_NOT_FOUND", entry["error_code"])
	assert.Equal(t, "/tmp/missing.json", entry["ctx_path"])
	assert.NotEmpty(t, entry["guidance"])
}

func TestLogError_PlainError(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(DefaultLoggerConfig(), &buf)
	logger.LogError(context.Background(), assert.AnError, "something failed")
	assert.Contains(t, buf.String(), "something failed")
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultLoggerConfig()
	cfg.Format = LogFormatJSON

	logger := NewLogger(cfg, &buf).WithComponent("compare")
	logger.Info("running")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "compare", entry["component"])
}

func TestIsDebugEnabled(t *testing.T) {
	cfg := DefaultLoggerConfig()
	assert.False(t, NewLogger(cfg, &bytes.Buffer{}).IsDebugEnabled())

	cfg.Level = LogLevelDebug
	assert.True(t, NewLogger(cfg, &bytes.Buffer{}).IsDebugEnabled())
}

func TestGetGlobalLogger_Default(t *testing.T) {
	globalLogger = nil
	logger := GetGlobalLogger()
	require.NotNil(t, logger)
	assert.Equal(t, LogLevelInfo, logger.GetLevel())
}
