// Package mocks provides shared test doubles for rexharness packages.
package mocks

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/AndreyAkinshin/rexharness/internal/proc"
)

// Executor implements runner.Executor for testing.
// Responses are keyed by the base name of the executable; use NewExecutor()
// and the With* methods to script them.
type Executor struct {
	responses map[string]func(proc.Command) (proc.Result, error)

	// Fallback is used for executables without a scripted response.
	// If nil, such calls exit 0 with no output.
	Fallback func(proc.Command) (proc.Result, error)

	mu    sync.Mutex
	calls []proc.Command
}

// NewExecutor creates an executor where every command exits 0 silently.
func NewExecutor() *Executor {
	return &Executor{
		responses: make(map[string]func(proc.Command) (proc.Result, error)),
	}
}

// WithResponse scripts the response for an executable base name.
func (m *Executor) WithResponse(program string, fn func(proc.Command) (proc.Result, error)) *Executor {
	m.responses[program] = fn
	return m
}

// WithExit scripts a fixed exit code and stdout for an executable.
func (m *Executor) WithExit(program string, code int, stdout string) *Executor {
	return m.WithResponse(program, func(proc.Command) (proc.Result, error) {
		return Exit(code, stdout, ""), nil
	})
}

// WithCrash scripts a signal termination for an executable, reported the way
// proc.Runner reports it.
func (m *Executor) WithCrash(program, signal string, number int) *Executor {
	return m.WithResponse(program, func(c proc.Command) (proc.Result, error) {
		return Crash(c, signal, number)
	})
}

// Run records the call and returns the scripted response.
func (m *Executor) Run(_ context.Context, c proc.Command) (proc.Result, error) {
	m.mu.Lock()
	m.calls = append(m.calls, c)
	fn, ok := m.responses[filepath.Base(c.Path)]
	m.mu.Unlock()

	if ok {
		return fn(c)
	}
	if m.Fallback != nil {
		return m.Fallback(c)
	}
	return proc.Result{}, nil
}

// Calls returns a copy of every command run so far, in order.
func (m *Executor) Calls() []proc.Command {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]proc.Command, len(m.calls))
	copy(result, m.calls)
	return result
}

// CallsTo returns the recorded commands for one executable base name.
func (m *Executor) CallsTo(program string) []proc.Command {
	var result []proc.Command
	for _, c := range m.Calls() {
		if filepath.Base(c.Path) == program {
			result = append(result, c)
		}
	}
	return result
}

// Exit builds a Result for a process that exited on its own.
func Exit(code int, stdout, stderr string) proc.Result {
	return proc.Result{
		Termination: proc.Exited,
		ExitCode:    code,
		Stdout:      stdout,
		Stderr:      stderr,
	}
}

// Crash builds the Result and CrashError for a signal-terminated process.
func Crash(c proc.Command, signal string, number int) (proc.Result, error) {
	res := proc.Result{
		Termination:  proc.Signaled,
		Signal:       signal,
		SignalNumber: number,
	}
	return res, &proc.CrashError{
		Program:      filepath.Base(c.Path),
		Signal:       signal,
		SignalNumber: number,
	}
}
