package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriftError_Error(t *testing.T) {
	err := NewError(ErrorTypeInput, "FILE_NOT_FOUND", "input file not found")
	assert.Equal(t, "[INPUT:FILE_NOT_FOUND] input file not found", err.Error())

	wrapped := WrapError(fmt.Errorf("no such file"), ErrorTypeInput, "FILE_NOT_FOUND", "input file not found")
	assert.Equal(t, "[INPUT:FILE_NOT_FOUND] input file not found caused by: no such file", wrapped.Error())
}

func TestDriftError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("permission denied")
	err := WrapError(cause, ErrorTypeOutput, "EXPORT_FAILED", "failed to write drift report")
	assert.Equal(t, cause, stderrors.Unwrap(err))
}

func TestDriftError_Is(t *testing.T) {
	err := ErrFileNotFound.WithContext("path", "/tmp/missing.json")
	assert.True(t, stderrors.Is(err, ErrFileNotFound))
	assert.False(t, stderrors.Is(err, ErrJSONInvalid))
}

func TestWithContext_DoesNotMutateSentinel(t *testing.T) {
	err := ErrFileNotFound.WithContext("path", "/tmp/a.json")
	require.NotNil(t, err.Context)
	assert.Equal(t, "/tmp/a.json", err.Context["path"])
	assert.Empty(t, ErrFileNotFound.Context)
}

func TestGetErrorType(t *testing.T) {
	assert.Equal(t, ErrorTypeInput, GetErrorType(ErrFileNotFound))
	assert.Equal(t, ErrorTypeOutput, GetErrorType(ErrExportFailed))
	assert.Equal(t, ErrorTypeSystem, GetErrorType(fmt.Errorf("plain error")))
}

func TestGetGuidance(t *testing.T) {
	assert.Contains(t, GetGuidance(ErrFileNotFound), "--baseline")
	assert.NotEmpty(t, GetGuidance(fmt.Errorf("plain error")))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitCodeClean, ExitCode(nil))
	assert.Equal(t, ExitCodeError, ExitCode(ErrFileNotFound))
	assert.Equal(t, ExitCodeError, ExitCode(fmt.Errorf("anything")))
}
