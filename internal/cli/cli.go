// Package cli provides the command-line interface for rexharness.
package cli

import (
	"fmt"

	"github.com/AndreyAkinshin/rexharness/internal/errors"
	"github.com/AndreyAkinshin/rexharness/internal/output"
)

// Version is set at build time.
var Version = "dev"

// Options holds parsed command-line flags.
type Options struct {
	Help    bool
	Version bool
	Quiet   bool
	Verbose bool
}

// Run executes the CLI with the given arguments and returns an exit code.
func Run(args []string) int {
	return RunWithWriter(args, output.New())
}

// RunWithWriter is Run with an explicit output writer.
func RunWithWriter(args []string, w *output.Writer) int {
	opts, err := parseFlags(args)
	if err != nil {
		w.ErrorPrefix("%v", err)
		w.Errorln("Run 'rexharness --help' for usage.")
		return errors.ExitConfigError
	}

	switch {
	case opts.Help:
		printUsage(w)
		return errors.ExitSuccess
	case opts.Version:
		w.Println("rexharness %s", Version)
		return errors.ExitSuccess
	}

	w.SetQuiet(opts.Quiet)
	w.SetVerbose(opts.Verbose)
	return runHarness(w)
}

// parseFlags parses the few supported flags. The harness takes no
// positional arguments, so anything else is a usage error.
func parseFlags(args []string) (*Options, error) {
	opts := &Options{}
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			opts.Help = true
		case "--version":
			opts.Version = true
		case "-q", "--quiet":
			opts.Quiet = true
		case "-v", "--verbose":
			opts.Verbose = true
		default:
			return nil, fmt.Errorf("unexpected argument %q", arg)
		}
	}

	if opts.Quiet && opts.Verbose {
		return nil, fmt.Errorf("--quiet and --verbose are mutually exclusive")
	}
	return opts, nil
}
