// Package runner drives the generate, compile and run stages for each regex case.
package runner

import (
	"context"
	"io"
	"strings"

	harnesserrors "github.com/AndreyAkinshin/rexharness/internal/errors"
	"github.com/AndreyAkinshin/rexharness/internal/output"
	"github.com/AndreyAkinshin/rexharness/internal/proc"
	"github.com/AndreyAkinshin/rexharness/internal/tests"
)

// Executor runs one external command. A signal-terminated child must be
// reported as an error satisfying proc.IsCrash.
type Executor interface {
	Run(ctx context.Context, c proc.Command) (proc.Result, error)
}

// Reporter receives every outcome with its comparison record, in order.
type Reporter interface {
	Report(o tests.Outcome, rec tests.Record) error
}

// Tools are the external collaborators and the fixed file names they share.
type Tools struct {
	Generator       string   // Invoked as <Generator> <regex file>
	Compiler        string   // Invoked as <Compiler> <GeneratedSource> [CompilerFlags...] -o <Binary>
	CompilerFlags   []string // Extra flags between the source and -o
	GeneratedSource string   // Source file the generator writes
	Binary          string   // Matcher path; overwritten for every case
	WorkDir         string   // Working directory for every child
}

// CaseState is the pipeline position of one regex case.
type CaseState int

const (
	Pending CaseState = iota
	Generated
	Compiled
	GenerateFailed
	CompileFailed
)

func (s CaseState) String() string {
	switch s {
	case Pending:
		return "PENDING"
	case Generated:
		return "GENERATED"
	case Compiled:
		return "COMPILED"
	case GenerateFailed:
		return "GENERATE_FAILED"
	case CompileFailed:
		return "COMPILE_FAILED"
	default:
		return "UNKNOWN"
	}
}

// Runner processes regex cases strictly one after another.
//
// Case N+1 is never compiled before every string run of case N has finished,
// which is what makes reusing Tools.Binary across cases safe.
type Runner struct {
	exec     Executor
	tools    Tools
	reporter Reporter
	out      *output.Writer
}

// New creates a Runner. A nil out discards progress output.
func New(exec Executor, tools Tools, reporter Reporter, out *output.Writer) *Runner {
	if out == nil {
		out = output.NewWithWriters(io.Discard, io.Discard, false)
	}
	return &Runner{
		exec:     exec,
		tools:    tools,
		reporter: reporter,
		out:      out,
	}
}

// Run processes every case in the given order.
// Generate, compile and runtime failures become records; the first crash or
// reporting error stops the run and is returned.
func (r *Runner) Run(ctx context.Context, cases []tests.RegexCase, gt tests.GroundTruth) error {
	for _, rc := range cases {
		if _, err := r.RunCase(ctx, rc, gt); err != nil {
			return err
		}
	}
	return nil
}

// RunCase processes one regex case and returns the state it ended in:
// Compiled when every string case ran, or one of the failure states.
func (r *Runner) RunCase(ctx context.Context, rc tests.RegexCase, gt tests.GroundTruth) (CaseState, error) {
	state := Pending

	r.out.StageStart(rc.Name, string(tests.StageGenerate))
	res, err := r.exec.Run(ctx, r.generateCommand(rc))
	if err != nil {
		return state, r.fatal(rc.Name, tests.StageGenerate, err)
	}
	if !res.Success() {
		return GenerateFailed, r.caseFailure(rc, tests.StageGenerate, tests.TagGenerateError, res, gt)
	}
	state = Generated

	r.out.StageStart(rc.Name, string(tests.StageCompile))
	res, err = r.exec.Run(ctx, r.compileCommand())
	if err != nil {
		return state, r.fatal(rc.Name, tests.StageCompile, err)
	}
	if !res.Success() {
		return CompileFailed, r.caseFailure(rc, tests.StageCompile, tests.TagCompileError, res, gt)
	}
	state = Compiled

	if len(rc.Strings) > 0 {
		r.out.StageStart(rc.Name, string(tests.StageRun))
	}
	for _, sc := range rc.Strings {
		if err := r.runString(ctx, rc, sc, gt); err != nil {
			return state, err
		}
	}
	return state, nil
}

func (r *Runner) runString(ctx context.Context, rc tests.RegexCase, sc tests.StringCase, gt tests.GroundTruth) error {
	res, err := r.exec.Run(ctx, r.runCommand(sc))
	if err != nil {
		return r.fatal(rc.Name, tests.StageRun, err)
	}

	outcome := tests.Outcome{
		Regex:  rc.Name,
		String: sc.Name,
		Stage:  tests.StageRun,
		Actual: actualValue(res),
	}
	rec := tests.Compare(outcome, gt)
	r.out.Result(rc.Name, sc.Name, string(rec.Status))
	return r.report(outcome, rec)
}

// actualValue is the comparable result of one string run.
func actualValue(res proc.Result) string {
	if !res.Success() {
		return tests.TagRuntimeError
	}
	if out := strings.TrimSpace(res.Stdout); out != "" {
		return out
	}
	return tests.NoOutput
}

func (r *Runner) caseFailure(rc tests.RegexCase, stage tests.Stage, tag string, res proc.Result, gt tests.GroundTruth) error {
	r.out.StageFailed(rc.Name, string(stage), tag)
	r.out.Debug("  exit code %d: %s", res.ExitCode, res.Diagnostic())

	outcome := tests.Outcome{
		Regex:  rc.Name,
		Stage:  stage,
		Actual: tag,
		Detail: res.Diagnostic(),
	}
	return r.report(outcome, tests.Compare(outcome, gt))
}

func (r *Runner) report(o tests.Outcome, rec tests.Record) error {
	if err := r.reporter.Report(o, rec); err != nil {
		return harnesserrors.Wrap(err, "failed to write report: "+err.Error())
	}
	return nil
}

// fatal classifies an error that aborts the whole run.
func (r *Runner) fatal(caseName string, stage tests.Stage, err error) error {
	if proc.IsCrash(err) {
		return harnesserrors.Crash(caseName, string(stage), err)
	}
	return harnesserrors.StageError(caseName, string(stage), err)
}

func (r *Runner) generateCommand(rc tests.RegexCase) proc.Command {
	return proc.Command{
		Path: r.tools.Generator,
		Args: []string{rc.Path},
		Dir:  r.tools.WorkDir,
	}
}

func (r *Runner) compileCommand() proc.Command {
	args := make([]string, 0, len(r.tools.CompilerFlags)+3)
	args = append(args, r.tools.GeneratedSource)
	args = append(args, r.tools.CompilerFlags...)
	args = append(args, "-o", r.tools.Binary)
	return proc.Command{
		Path: r.tools.Compiler,
		Args: args,
		Dir:  r.tools.WorkDir,
	}
}

func (r *Runner) runCommand(sc tests.StringCase) proc.Command {
	return proc.Command{
		Path: r.tools.Binary,
		Args: []string{sc.Path},
		Dir:  r.tools.WorkDir,
	}
}
