// Package errors provides structured error types and exit codes for rexharness.
package errors

import (
	"errors"
	"fmt"
)

// Exit codes returned by the harness.
const (
	ExitSuccess          = 0 // All comparisons passed
	ExitRuntimeError     = 1 // Runtime error or at least one failed comparison
	ExitConfigError      = 2 // Configuration error (invalid rexharness.yaml, bad arguments)
	ExitEnvironmentError = 3 // Environment error (ground truth or test directory missing)
	ExitCrash            = 4 // A child process was killed by a signal
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindConfig
	KindNotFound
	KindEnvironment
	KindCrash
)

// HarnessError is the base error type for rexharness.
type HarnessError struct {
	Kind    ErrorKind
	Message string
	Case    string // Regex case name if applicable
	Stage   string // Pipeline stage if applicable
	Cause   error  // Underlying error
}

func (e *HarnessError) Error() string {
	if e.Case != "" && e.Stage != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Case, e.Stage, e.Message)
	}
	if e.Case != "" {
		return fmt.Sprintf("[%s] %s", e.Case, e.Message)
	}
	return e.Message
}

func (e *HarnessError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *HarnessError) ExitCode() int {
	switch e.Kind {
	case KindConfig:
		return ExitConfigError
	case KindNotFound, KindEnvironment:
		return ExitEnvironmentError
	case KindCrash:
		return ExitCrash
	default:
		return ExitRuntimeError
	}
}

// Config creates a configuration error from its cause.
func Config(cause error) *HarnessError {
	return &HarnessError{
		Kind:    KindConfig,
		Message: cause.Error(),
		Cause:   cause,
	}
}

// Environment creates an error for a broken project layout.
func Environment(cause error) *HarnessError {
	return &HarnessError{
		Kind:    KindEnvironment,
		Message: cause.Error(),
		Cause:   cause,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) *HarnessError {
	return &HarnessError{
		Kind:    KindRuntime,
		Message: message,
		Cause:   err,
	}
}

// StageError creates an error for a specific case and pipeline stage.
func StageError(caseName, stage string, cause error) *HarnessError {
	return &HarnessError{
		Kind:    KindRuntime,
		Case:    caseName,
		Stage:   stage,
		Message: cause.Error(),
		Cause:   cause,
	}
}

// Crash creates an error for a child process terminated by a signal.
// The message is taken from the cause, which names the program and signal.
func Crash(caseName, stage string, cause error) *HarnessError {
	e := StageError(caseName, stage, cause)
	e.Kind = KindCrash
	return e
}

// NotFound creates an error for a required input that does not exist.
func NotFound(what, path string, cause error) *HarnessError {
	return &HarnessError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found at %s", what, path),
		Cause:   cause,
	}
}

// GetExitCode returns the exit code for an error.
// Wrapped HarnessErrors are honored.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var he *HarnessError
	if errors.As(err, &he) {
		return he.ExitCode()
	}
	return ExitRuntimeError
}
