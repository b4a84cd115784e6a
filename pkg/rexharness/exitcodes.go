// Package rexharness provides public constants for external tools
// integrating with the rexharness CLI.
package rexharness

// Exit codes returned by the rexharness CLI.
// These constants allow CI scripts and wrappers to check exit codes
// symbolically rather than using magic numbers.
const (
	// ExitSuccess indicates every comparison record passed.
	ExitSuccess = 0

	// ExitFailure indicates at least one comparison failed, or a runtime error.
	ExitFailure = 1

	// ExitConfigError indicates a configuration error (invalid rexharness.yaml, unknown argument).
	ExitConfigError = 2

	// ExitEnvError indicates a missing input (ground truth file, regex directory).
	ExitEnvError = 3

	// ExitCrash indicates that the generator, compiler or a produced binary was
	// terminated by a signal. Logs written up to that point are left in place.
	ExitCrash = 4
)
