// Package proc runs external executables and reports how they terminated.
//
// Every invocation ends in exactly one of two ways: the child exited on its
// own (possibly with a non-zero code), or it was killed by a signal. The two
// are kept apart in Result.Termination instead of folding signals into the
// exit code range, so callers have to handle both explicitly.
package proc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// Termination tells how a child process ended.
type Termination int

const (
	// Exited means the child returned an exit code.
	Exited Termination = iota
	// Signaled means the child was terminated by an uncaught signal.
	Signaled
)

func (t Termination) String() string {
	switch t {
	case Exited:
		return "exited"
	case Signaled:
		return "signaled"
	default:
		return fmt.Sprintf("termination(%d)", int(t))
	}
}

// Command describes one child process invocation.
type Command struct {
	Path string   // Executable path or name looked up on PATH
	Args []string // Arguments, not including the executable
	Dir  string   // Working directory; empty means the current one
}

// String renders the command line for diagnostics.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Path
	}
	return c.Path + " " + strings.Join(c.Args, " ")
}

// Result is the captured outcome of a finished child process.
// ExitCode is meaningful only for Exited; Signal and SignalNumber only for Signaled.
type Result struct {
	Termination  Termination
	ExitCode     int
	Signal       string // Symbolic name, e.g. "SIGSEGV"
	SignalNumber int
	Stdout       string
	Stderr       string
}

// Success reports whether the child exited normally with code 0.
func (r Result) Success() bool {
	return r.Termination == Exited && r.ExitCode == 0
}

// Diagnostic returns stderr, or stdout when stderr is empty, trimmed.
func (r Result) Diagnostic() string {
	if s := strings.TrimSpace(r.Stderr); s != "" {
		return s
	}
	return strings.TrimSpace(r.Stdout)
}

// Exec starts the command, waits for it and captures its output.
// The returned error is non-nil only when the process could not be started
// or waited on; a non-zero exit or a signal is reported through Result.
func Exec(ctx context.Context, c Command) (Result, error) {
	cmd := exec.CommandContext(ctx, c.Path, c.Args...)
	cmd.Dir = c.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err == nil {
		return res, nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return res, fmt.Errorf("start %s: %w", c.Path, err)
	}

	if num, name, ok := signalOf(exitErr.ProcessState); ok {
		res.Termination = Signaled
		res.Signal = name
		res.SignalNumber = num
		return res, nil
	}

	res.ExitCode = exitErr.ExitCode()
	return res, nil
}

// CrashError reports a child process terminated by a signal.
type CrashError struct {
	Program      string
	Signal       string
	SignalNumber int
	Output       string // Captured stderr, or stdout if stderr was empty
}

func (e *CrashError) Error() string {
	msg := fmt.Sprintf("process %s crashed on %s (%d)", e.Program, e.Signal, e.SignalNumber)
	if e.Output != "" {
		msg += ": " + e.Output
	}
	return msg
}

// IsCrash returns true if the error is or wraps a CrashError.
func IsCrash(err error) bool {
	var crashErr *CrashError
	return errors.As(err, &crashErr)
}

// Runner executes commands for the pipeline.
// A signal-terminated child is returned as a *CrashError rather than a Result,
// so an ordinary non-zero exit can never be mistaken for a crash.
type Runner struct{}

// NewRunner creates a process Runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Run executes the command and returns its result if it exited on its own.
func (r *Runner) Run(ctx context.Context, c Command) (Result, error) {
	res, err := Exec(ctx, c)
	if err != nil {
		return res, err
	}
	if res.Termination == Signaled {
		return res, &CrashError{
			Program:      filepath.Base(c.Path),
			Signal:       res.Signal,
			SignalNumber: res.SignalNumber,
			Output:       res.Diagnostic(),
		}
	}
	return res, nil
}
