// Package tests provides the case model, ground truth table and comparator
// for the regex harness.
package tests

// Tags recorded as the actual value when a stage fails.
const (
	TagGenerateError = "GENERATE_ERROR"
	TagCompileError  = "COMPILE_ERROR"
	TagRuntimeError  = "RUNTIME_ERROR"
)

// Literal sentinels written to the logs.
//
// NoOutput and Missing are plain strings. A matcher that prints exactly
// "<no output>" or "MISSING" is indistinguishable from the sentinel; the
// harness keeps them literal and does not try to escape genuine output.
const (
	NoOutput = "<no output>" // Actual value when a run exits 0 with empty stdout
	Missing  = "MISSING"     // Expected value when ground truth has no entry
	NoString = "<no-string>" // String column of case-level comparison records
)

// Stage identifies a pipeline stage.
type Stage string

const (
	StageGenerate Stage = "generate"
	StageCompile  Stage = "compile"
	StageRun      Stage = "run"
)

// RegexCase is one regex definition file and the string cases bound to it.
type RegexCase struct {
	Name    string       // File name, e.g. "b.txt"; the ground truth key
	Stem    string       // File name without extension, e.g. "b"
	Path    string       // Full path to the regex file
	Strings []StringCase // Associated string cases, sorted by name
}

// StringCase is one sample input file tested against a regex case.
type StringCase struct {
	Name  string // File name, e.g. "b_1.txt"
	Path  string // Full path to the string file
	Regex string // Name of the owning RegexCase
}

// Key identifies a ground truth entry. An empty String is the case-level key.
type Key struct {
	Regex  string
	String string
}

// GroundTruth maps (regex file, string file) to the expected output.
type GroundTruth map[Key]string

// Lookup returns the expected value for the key.
func (g GroundTruth) Lookup(regex, str string) (string, bool) {
	v, ok := g[Key{Regex: regex, String: str}]
	return v, ok
}

// Outcome is the raw captured result of one stage for one case.
// String is empty for case-level (generate or compile) failures.
type Outcome struct {
	Regex  string
	String string
	Stage  Stage
	Actual string // Trimmed stdout, NoOutput, or one of the Tag* values
	Detail string // Tool diagnostic for case-level failures
}

// CaseLevel reports whether the outcome stands for the whole regex case.
func (o Outcome) CaseLevel() bool {
	return o.String == ""
}

// Status is the verdict of a comparison.
type Status string

const (
	StatusPass Status = "PASS"
	StatusFail Status = "FAIL"
)

// Record is a scored comparison of one outcome against the ground truth.
type Record struct {
	Regex    string
	String   string // Empty for case-level records
	Expected string // Ground truth value, or Missing
	Actual   string
	Status   Status
	Found    bool // Whether ground truth had an entry
}

// Passed reports whether the record is a PASS.
func (r Record) Passed() bool {
	return r.Status == StatusPass
}
