package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestHarnessError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *HarnessError
		expected string
	}{
		{
			name:     "message only",
			err:      &HarnessError{Message: "something failed"},
			expected: "something failed",
		},
		{
			name:     "with case",
			err:      &HarnessError{Case: "a.txt", Message: "discovery failed"},
			expected: "[a.txt] discovery failed",
		},
		{
			name:     "with case and stage",
			err:      &HarnessError{Case: "a.txt", Stage: "run", Message: "crashed"},
			expected: "[a.txt] run: crashed",
		},
		{
			name:     "stage without case not included",
			err:      &HarnessError{Stage: "compile", Message: "something failed"},
			expected: "something failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestHarnessError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := &HarnessError{
		Message: "wrapper",
		Cause:   cause,
	}

	if got := err.Unwrap(); got != cause {
		t.Errorf("Unwrap() = %v, want %v", got, cause)
	}

	errNoCause := &HarnessError{Message: "no cause"}
	if got := errNoCause.Unwrap(); got != nil {
		t.Errorf("Unwrap() = %v, want nil", got)
	}
}

func TestHarnessError_ExitCode(t *testing.T) {
	tests := []struct {
		name     string
		kind     ErrorKind
		expected int
	}{
		{"runtime", KindRuntime, ExitRuntimeError},
		{"config", KindConfig, ExitConfigError},
		{"not found", KindNotFound, ExitEnvironmentError},
		{"environment", KindEnvironment, ExitEnvironmentError},
		{"crash", KindCrash, ExitCrash},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &HarnessError{Kind: tt.kind}
			if got := err.ExitCode(); got != tt.expected {
				t.Errorf("ExitCode() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestConfig(t *testing.T) {
	cause := fmt.Errorf("rexharness.yaml: %w", errors.New("unknown key \"timeout\""))
	err := Config(cause)

	if err.Kind != KindConfig {
		t.Errorf("Kind = %v, want %v", err.Kind, KindConfig)
	}
	expected := `rexharness.yaml: unknown key "timeout"`
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is() should find the cause")
	}
	if err.ExitCode() != ExitConfigError {
		t.Errorf("ExitCode() = %d, want %d", err.ExitCode(), ExitConfigError)
	}
}

func TestEnvironment(t *testing.T) {
	cause := errors.New("permission denied")
	err := Environment(cause)

	if err.Kind != KindEnvironment {
		t.Errorf("Kind = %v, want %v", err.Kind, KindEnvironment)
	}
	if err.Error() != "permission denied" {
		t.Errorf("Error() = %q", err.Error())
	}
	if err.ExitCode() != ExitEnvironmentError {
		t.Errorf("ExitCode() = %d, want %d", err.ExitCode(), ExitEnvironmentError)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("original error")
	err := Wrap(cause, "wrapped message")

	if err.Kind != KindRuntime {
		t.Errorf("Kind = %v, want %v", err.Kind, KindRuntime)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is() should find the original cause")
	}
}

func TestCrash(t *testing.T) {
	cause := errors.New("process ./rexec crashed on SIGSEGV (11)")
	err := Crash("b.txt", "run", cause)

	if err.Kind != KindCrash {
		t.Errorf("Kind = %v, want %v", err.Kind, KindCrash)
	}
	expected := "[b.txt] run: process ./rexec crashed on SIGSEGV (11)"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
	if err.ExitCode() != ExitCrash {
		t.Errorf("ExitCode() = %d, want %d", err.ExitCode(), ExitCrash)
	}
}

func TestNotFound(t *testing.T) {
	cause := errors.New("no such file")
	err := NotFound("groundtruth.txt", "/proj/tests/groundtruth.txt", cause)

	if err.Kind != KindNotFound {
		t.Errorf("Kind = %v, want %v", err.Kind, KindNotFound)
	}
	expected := "groundtruth.txt not found at /proj/tests/groundtruth.txt"
	if err.Message != expected {
		t.Errorf("Message = %q, want %q", err.Message, expected)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is() should find the cause")
	}
	if err.ExitCode() != ExitEnvironmentError {
		t.Errorf("ExitCode() = %d, want %d", err.ExitCode(), ExitEnvironmentError)
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil error", nil, ExitSuccess},
		{"runtime", Wrap(errors.New("disk full"), "write failed"), ExitRuntimeError},
		{"config", Config(errors.New("bad key")), ExitConfigError},
		{"environment", Environment(errors.New("no root")), ExitEnvironmentError},
		{"not found", NotFound("regex directory", "tests/regex", nil), ExitEnvironmentError},
		{"wrapped crash", fmt.Errorf("abort: %w", Crash("a.txt", "run", errors.New("boom"))), ExitCrash},
		{"generic error", errors.New("generic"), ExitRuntimeError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.expected {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.expected)
			}
		})
	}
}
