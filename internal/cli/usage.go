package cli

import (
	"github.com/AndreyAkinshin/rexharness/internal/config"
	"github.com/AndreyAkinshin/rexharness/internal/output"
	"github.com/AndreyAkinshin/rexharness/internal/project"
)

const (
	widthFlag   = 15
	widthEnvVar = 16
	widthLayout = 26
)

func printUsage(w *output.Writer) {
	w.HelpTitle("rexharness - test harness for the regex compilation pipeline")

	w.HelpSection("Usage:")
	w.HelpUsage("rexharness [flags]   Generate, compile and run every regex case")

	w.HelpSection("Flags:")
	w.HelpFlag("-q, --quiet", "Only print the final summary and errors", widthFlag)
	w.HelpFlag("-v, --verbose", "Show per-stage progress and a per-case table", widthFlag)
	w.HelpFlag("-h, --help", "Show this help", widthFlag)
	w.HelpFlag("--version", "Show version", widthFlag)

	w.HelpSection("Environment:")
	w.HelpEnvVar(project.RootEnvVar, "Project root (default: nearest ancestor with tests/regex)", widthEnvVar)

	w.HelpSection("Layout (relative to the root):")
	w.HelpLayout(config.FileName, "Optional configuration", widthLayout)
	w.HelpLayout(config.DefaultRegexDir+"/"+config.DefaultPattern, "Regex cases", widthLayout)
	w.HelpLayout(config.DefaultStringsDir+"/<stem>_*.txt", "String cases for regex <stem>.txt", widthLayout)
	w.HelpLayout(config.DefaultGroundTruth, "Expected outputs", widthLayout)
	w.HelpLayout(config.DefaultResults, "Raw results log (rewritten)", widthLayout)
	w.HelpLayout(config.DefaultComparison, "Comparison log (rewritten)", widthLayout)

	w.HelpSection("Exit Codes:")
	w.HelpFlag("0", "Every comparison passed", 3)
	w.HelpFlag("1", "At least one comparison failed, or a runtime error", 3)
	w.HelpFlag("2", "Usage or configuration error", 3)
	w.HelpFlag("3", "Ground truth or regex directory missing", 3)
	w.HelpFlag("4", "A child process was terminated by a signal", 3)
	w.Println("")
}
