// Package errors provides structured error handling for configdrift
package errors

import (
	"fmt"
	"strings"
)

// ErrorType represents the category of error
type ErrorType string

const (
	ErrorTypeInput  ErrorType = "INPUT"
	ErrorTypeOutput ErrorType = "OUTPUT"
	ErrorTypeConfig ErrorType = "CONFIG"
	ErrorTypeSystem ErrorType = "SYSTEM"
)

// Process exit codes. Drift detection is not an error, but it shares the
// exit-code table with the error path: a clean run exits 0, detected drift
// exits 1, and every failure before or after comparison exits 2.
const (
	ExitCodeClean = 0
	ExitCodeDrift = 1
	ExitCodeError = 2
)

// DriftError represents a structured error with context and recovery guidance
type DriftError struct {
	Type     ErrorType              `json:"type"`
	Code     string                 `json:"code"`
	Message  string                 `json:"message"`
	Guidance string                 `json:"guidance,omitempty"`
	Cause    error                  `json:"cause,omitempty"`
	Context  map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *DriftError) Error() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("[%s:%s]", e.Type, e.Code))
	parts = append(parts, e.Message)

	if e.Cause != nil {
		parts = append(parts, fmt.Sprintf("caused by: %v", e.Cause))
	}

	return strings.Join(parts, " ")
}

// Unwrap returns the underlying cause error
func (e *DriftError) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error type
func (e *DriftError) Is(target error) bool {
	if t, ok := target.(*DriftError); ok {
		return e.Type == t.Type && e.Code == t.Code
	}
	return false
}

// WithContext returns a copy of the error with added context information.
// Copying keeps the package-level sentinel errors immutable.
func (e *DriftError) WithContext(key string, value interface{}) *DriftError {
	clone := *e
	clone.Context = make(map[string]interface{}, len(e.Context)+1)
	for k, v := range e.Context {
		clone.Context[k] = v
	}
	clone.Context[key] = value
	return &clone
}

// WithGuidance adds recovery guidance to the error
func (e *DriftError) WithGuidance(guidance string) *DriftError {
	e.Guidance = guidance
	return e
}

// NewError creates a new DriftError
func NewError(errorType ErrorType, code, message string) *DriftError {
	return &DriftError{
		Type:    errorType,
		Code:    code,
		Message: message,
	}
}

// WrapError wraps an existing error with configdrift error context
func WrapError(err error, errorType ErrorType, code, message string) *DriftError {
	return &DriftError{
		Type:    errorType,
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Input errors: anything that prevents the comparison from starting
var (
	ErrFileNotFound = NewError(ErrorTypeInput, "FILE_NOT_FOUND", "input file not found").
			WithGuidance("Check that the --baseline and --target paths exist")

	ErrJSONInvalid = NewError(ErrorTypeInput, "JSON_INVALID", "input file is not valid JSON").
			WithGuidance("Validate the file with a JSON linter before comparing")
)

// Output errors: export destinations that cannot be written
var (
	ErrExportFailed = NewError(ErrorTypeOutput, "EXPORT_FAILED", "failed to write drift report").
			WithGuidance("Check permissions and free space on the destination directory")
)

// Configuration errors
var (
	ErrConfigInvalid = NewError(ErrorTypeConfig, "CONFIG_INVALID", "configuration file is invalid").
				WithGuidance("Run 'configdrift config init' to regenerate a default configuration file")
)

// GetErrorType returns the type of an error
func GetErrorType(err error) ErrorType {
	if de, ok := err.(*DriftError); ok {
		return de.Type
	}
	return ErrorTypeSystem
}

// GetGuidance returns recovery guidance for an error
func GetGuidance(err error) string {
	if de, ok := err.(*DriftError); ok {
		return de.Guidance
	}
	return "Check the error message and logs for more information"
}

// ExitCode maps an error to the process exit code. All execution errors are
// terminal and map to the same code.
func ExitCode(err error) int {
	if err == nil {
		return ExitCodeClean
	}
	return ExitCodeError
}
