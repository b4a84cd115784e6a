package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/AndreyAkinshin/rexharness/internal/config"
	"github.com/AndreyAkinshin/rexharness/internal/errors"
	"github.com/AndreyAkinshin/rexharness/internal/output"
	"github.com/AndreyAkinshin/rexharness/internal/proc"
	"github.com/AndreyAkinshin/rexharness/internal/project"
	"github.com/AndreyAkinshin/rexharness/internal/report"
	"github.com/AndreyAkinshin/rexharness/internal/runner"
	"github.com/AndreyAkinshin/rexharness/internal/tests"
)

// pass is one full run over every regex case under the root.
type pass struct {
	w       *output.Writer
	logs    *report.Writer
	aborted bool // The driver stopped early; logs hold partial results
}

// runHarness runs one pass and maps its outcome to an exit code.
func runHarness(w *output.Writer) int {
	p := &pass{w: w}
	summary, err := p.run()
	if err != nil {
		p.printError(err)
		return errors.GetExitCode(err)
	}
	if summary.Failed > 0 {
		return errors.ExitRuntimeError
	}
	return errors.ExitSuccess
}

func (p *pass) run() (report.Summary, error) {
	w := p.w

	root, err := project.FindRoot()
	if err != nil {
		return report.Summary{}, errors.Environment(err)
	}
	w.Debug("root: %s", root)

	cfg, err := config.LoadWithDefaults(root)
	if err != nil {
		return report.Summary{}, errors.Config(fmt.Errorf("%s: %w", config.FileName, err))
	}
	paths := cfg.Resolve(root)

	gt, err := tests.LoadGroundTruth(paths.GroundTruth)
	if err != nil {
		if stderrors.Is(err, tests.ErrGroundTruthNotFound) {
			return report.Summary{}, errors.NotFound(filepath.Base(paths.GroundTruth), paths.GroundTruth, err)
		}
		return report.Summary{}, errors.Wrap(err, err.Error())
	}
	w.Debug("ground truth: %d entries", len(gt))

	disc, err := tests.Discover(paths.RegexDir, paths.StringsDir, paths.Pattern)
	switch {
	case stderrors.Is(err, tests.ErrRegexDirNotFound):
		return report.Summary{}, errors.NotFound("regex directory", paths.RegexDir, err)
	case stderrors.Is(err, filepath.ErrBadPattern):
		return report.Summary{}, errors.Config(fmt.Errorf("%s: %w", config.FileName, err))
	case err != nil:
		return report.Summary{}, errors.Environment(err)
	}
	for _, name := range disc.Orphans {
		w.Warning("string case %s matches no regex case; skipped", name)
	}

	info := report.NewRunInfo(paths.Results, paths.Comparison)
	rw, err := report.Open(paths.Results, paths.Comparison)
	if err != nil {
		return report.Summary{}, errors.Wrap(err, err.Error())
	}
	p.logs = rw

	r := runner.New(proc.NewRunner(), toolsFrom(paths), rw, w)
	runErr := r.Run(context.Background(), disc.Cases, gt)
	closeErr := rw.Close()
	if runErr != nil {
		p.aborted = true
		return report.Summary{}, runErr
	}
	if closeErr != nil {
		return report.Summary{}, errors.Wrap(closeErr, closeErr.Error())
	}

	summary := rw.Summary()
	printSummary(w, rw, summary)

	if paths.SummaryJSON != "" {
		info.FinishedAt = time.Now().UTC()
		if err := report.WriteJSON(paths.SummaryJSON, info, summary); err != nil {
			return summary, errors.Wrap(err, err.Error())
		}
		w.Info("Summary: %s", paths.SummaryJSON)
	}
	return summary, nil
}

// printError reports a fatal error. Missing inputs use the plain
// "ERROR: <file> not found at <path>" line on stdout.
func (p *pass) printError(err error) {
	var he *errors.HarnessError
	if stderrors.As(err, &he) && he.Kind == errors.KindNotFound {
		p.w.Println("ERROR: %s", he.Message)
		return
	}
	p.w.ErrorPrefix("%v", err)
	if p.aborted && p.logs != nil {
		p.w.Errorln("Partial logs: %s, %s", p.logs.ResultsPath(), p.logs.ComparisonPath())
	}
}

func toolsFrom(p config.Paths) runner.Tools {
	return runner.Tools{
		Generator:       p.Generator,
		Compiler:        p.Compiler,
		CompilerFlags:   p.CompilerFlags,
		GeneratedSource: p.GeneratedSource,
		Binary:          p.Binary,
		WorkDir:         p.Root,
	}
}

func printSummary(w *output.Writer, rw *report.Writer, s report.Summary) {
	w.Println("Done.")
	w.Println("Results: %s", rw.ResultsPath())
	w.Println("Comparison: %s", rw.ComparisonPath())
	w.Println("Total: %d, Passed: %d, Failed: %d", s.Total, s.Passed, s.Failed)

	if !w.Verbose() {
		return
	}
	w.SummaryHeader("Per-case Summary")
	w.Print("%s", report.RenderTable(s))
	w.Println("")
	if s.Failed == 0 {
		w.FinalSuccess("All %d comparisons passed.", s.Total)
	} else {
		w.FinalFailure("%d of %d comparisons failed.", s.Failed, s.Total)
	}
}
