// Package output provides formatted console output for the harness CLI.
package output

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Writer handles CLI output formatting.
type Writer struct {
	out     io.Writer
	err     io.Writer
	color   bool
	quiet   bool
	verbose bool
}

// stageTitle title-cases a stage name ("compile" -> "Compile").
// A Caser is stateful and must not be shared between goroutines.
func stageTitle(stage string) string {
	return cases.Title(language.English).String(stage)
}

// New creates a new Writer with default settings.
func New() *Writer {
	return &Writer{
		out:   os.Stdout,
		err:   os.Stderr,
		color: isTerminal(),
	}
}

// NewWithWriters creates a Writer with custom io.Writers (for testing).
func NewWithWriters(out, err io.Writer, color bool) *Writer {
	return &Writer{
		out:   out,
		err:   err,
		color: color,
	}
}

// SetQuiet enables or disables quiet mode.
func (w *Writer) SetQuiet(quiet bool) {
	w.quiet = quiet
}

// SetVerbose enables or disables verbose mode.
func (w *Writer) SetVerbose(verbose bool) {
	w.verbose = verbose
}

// Verbose reports whether verbose mode is on.
func (w *Writer) Verbose() bool {
	return w.verbose && !w.quiet
}

// Print writes to stdout.
func (w *Writer) Print(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format, args...)
}

// Println writes a line to stdout.
func (w *Writer) Println(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

// Errorln writes a line to stderr.
func (w *Writer) Errorln(format string, args ...interface{}) {
	fmt.Fprintf(w.err, format+"\n", args...)
}

// Info prints an info message (skipped in quiet mode).
func (w *Writer) Info(format string, args ...interface{}) {
	if w.quiet {
		return
	}
	w.Println(format, args...)
}

// Debug prints a message only in verbose mode.
func (w *Writer) Debug(format string, args ...interface{}) {
	if !w.Verbose() {
		return
	}
	if w.color {
		w.Println(dim+format+reset, args...)
	} else {
		w.Println(format, args...)
	}
}

// Warning prints a warning message to stderr.
func (w *Writer) Warning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if w.color {
		w.Errorln("%swarning:%s %s", yellow, reset, msg)
	} else {
		w.Errorln("warning: %s", msg)
	}
}

// ErrorPrefix prints an error message with rexharness prefix to stderr.
func (w *Writer) ErrorPrefix(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if w.color {
		w.Errorln("%srexharness:%s %s", red, reset, msg)
	} else {
		w.Errorln("rexharness: %s", msg)
	}
}

// StageStart prints the start of a pipeline stage in verbose mode.
func (w *Writer) StageStart(caseName, stage string) {
	if !w.Verbose() {
		return
	}
	label := fmt.Sprintf("[%s] %s", caseName, stageTitle(stage))
	if w.color {
		w.Println("%s%s%s", cyan, label, reset)
	} else {
		w.Println("%s", label)
	}
}

// StageFailed prints a stage failure in verbose mode.
func (w *Writer) StageFailed(caseName, stage, tag string) {
	if !w.Verbose() {
		return
	}
	if w.color {
		w.Println("%s[%s] %s failed:%s %s", red, caseName, stageTitle(stage), reset, tag)
	} else {
		w.Println("[%s] %s failed: %s", caseName, stageTitle(stage), tag)
	}
}

// Result prints one scored string run in verbose mode.
func (w *Writer) Result(caseName, stringName, status string) {
	if !w.Verbose() {
		return
	}
	if !w.color {
		w.Println("  %s %s", stringName, status)
		return
	}
	c := green
	if status != "PASS" {
		c = red
	}
	w.Println("  %s %s%s%s", stringName, c, status, reset)
}

// SummaryHeader prints a summary section header.
func (w *Writer) SummaryHeader(title string) {
	w.Println("")
	if w.color {
		w.Println("%s=== %s ===%s", bold+cyan, title, reset)
	} else {
		w.Println("=== %s ===", title)
	}
	w.Println("")
}

// FinalSuccess prints a final success message.
func (w *Writer) FinalSuccess(format string, args ...interface{}) {
	w.Println("")
	msg := fmt.Sprintf(format, args...)
	if w.color {
		w.Println("%s%s%s", green, msg, reset)
	} else {
		w.Println("%s", msg)
	}
}

// FinalFailure prints a final failure message.
func (w *Writer) FinalFailure(format string, args ...interface{}) {
	w.Println("")
	msg := fmt.Sprintf(format, args...)
	if w.color {
		w.Println("%s%s%s", red, msg, reset)
	} else {
		w.Println("%s", msg)
	}
}

// isTerminal returns true if stdout is a terminal.
func isTerminal() bool {
	if fi, _ := os.Stdout.Stat(); fi != nil {
		return (fi.Mode() & os.ModeCharDevice) != 0
	}
	return false
}

// ANSI color codes.
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
)
