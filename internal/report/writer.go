// Package report writes the raw results log, the comparison log and the run summary.
package report

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/acarl005/stripansi"

	"github.com/AndreyAkinshin/rexharness/internal/tests"
)

// rawPlaceholder fills the string column of case-level raw result lines.
const rawPlaceholder = "--"

// Writer is the single-writer sink for one run. It is not safe for
// concurrent use; records must arrive in the order they should appear.
type Writer struct {
	resultsPath    string
	comparisonPath string

	resultsFile    *os.File
	comparisonFile *os.File
	results        *bufio.Writer
	comparison     *bufio.Writer

	summary Summary
}

// Open deletes both logs if they exist and creates them empty.
func Open(resultsPath, comparisonPath string) (*Writer, error) {
	for _, p := range []string{resultsPath, comparisonPath} {
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to remove old log: %w", err)
		}
	}

	resultsFile, err := create(resultsPath)
	if err != nil {
		return nil, err
	}
	comparisonFile, err := create(comparisonPath)
	if err != nil {
		_ = resultsFile.Close()
		return nil, err
	}

	return &Writer{
		resultsPath:    resultsPath,
		comparisonPath: comparisonPath,
		resultsFile:    resultsFile,
		comparisonFile: comparisonFile,
		results:        bufio.NewWriter(resultsFile),
		comparison:     bufio.NewWriter(comparisonFile),
	}, nil
}

func create(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create log: %w", err)
	}
	return f, nil
}

// ResultsPath returns the raw results log location.
func (w *Writer) ResultsPath() string { return w.resultsPath }

// ComparisonPath returns the comparison log location.
func (w *Writer) ComparisonPath() string { return w.comparisonPath }

// Report appends one outcome and its comparison record and updates the counters.
func (w *Writer) Report(o tests.Outcome, rec tests.Record) error {
	if _, err := w.results.WriteString(ResultLine(o) + "\n"); err != nil {
		return fmt.Errorf("write results log: %w", err)
	}
	if _, err := w.comparison.WriteString(ComparisonLine(rec) + "\n"); err != nil {
		return fmt.Errorf("write comparison log: %w", err)
	}
	w.summary.add(rec)
	return nil
}

// Summary returns the counters accumulated so far.
func (w *Writer) Summary() Summary {
	return w.summary.clone()
}

// Close flushes and closes both logs. It is safe to call more than once.
func (w *Writer) Close() error {
	var errs []error
	if w.results != nil {
		errs = append(errs, w.results.Flush(), w.resultsFile.Close())
		w.results = nil
	}
	if w.comparison != nil {
		errs = append(errs, w.comparison.Flush(), w.comparisonFile.Close())
		w.comparison = nil
	}
	return errors.Join(errs...)
}

// ResultLine formats a raw results log line.
//
//	<regex> <string> <actual>              string-level outcome
//	<regex> -- <TAG> -- <diagnostic>       case-level failure
func ResultLine(o tests.Outcome) string {
	if o.CaseLevel() {
		return fmt.Sprintf("%s %s %s %s %s", o.Regex, rawPlaceholder, o.Actual, rawPlaceholder, collapse(o.Detail))
	}
	return fmt.Sprintf("%s %s %s", o.Regex, o.String, o.Actual)
}

// ComparisonLine formats a comparison log line:
// <regex> <string|<no-string>> <expected|MISSING> <actual> <PASS|FAIL>.
func ComparisonLine(rec tests.Record) string {
	str := rec.String
	if str == "" {
		str = tests.NoString
	}
	return fmt.Sprintf("%s %s %s %s %s", rec.Regex, str, rec.Expected, rec.Actual, rec.Status)
}

// collapse joins multi-line tool diagnostics into one line.
// Compilers may color their diagnostics; escape sequences are dropped.
func collapse(s string) string {
	return strings.Join(strings.Fields(stripansi.Strip(s)), " ")
}
