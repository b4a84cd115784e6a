package config

// Default configuration values, relative to the project root.
const (
	DefaultGenerator       = "generate"
	DefaultCompiler        = "gcc"
	DefaultGeneratedSource = "tests/regex/rexec.c"
	DefaultBinary          = "rexec"
	DefaultRegexDir        = "tests/regex"
	DefaultStringsDir      = "tests/strings"
	DefaultGroundTruth     = "tests/groundtruth.txt"
	DefaultResults         = "tests/test_results.txt"
	DefaultComparison      = "tests/comparison.txt"
	DefaultPattern         = "*.txt"
)

// applyDefaults fills in default values for unset configuration fields.
func applyDefaults(cfg *Config) {
	applyToolDefaults(cfg)
	applyLayoutDefaults(cfg)
}

func applyToolDefaults(cfg *Config) {
	if cfg.Generator == "" {
		cfg.Generator = DefaultGenerator
	}
	if cfg.Compiler == "" {
		cfg.Compiler = DefaultCompiler
	}
	if cfg.GeneratedSource == "" {
		cfg.GeneratedSource = DefaultGeneratedSource
	}
	if cfg.Binary == "" {
		cfg.Binary = DefaultBinary
	}
}

func applyLayoutDefaults(cfg *Config) {
	if cfg.RegexDir == "" {
		cfg.RegexDir = DefaultRegexDir
	}
	if cfg.StringsDir == "" {
		cfg.StringsDir = DefaultStringsDir
	}
	if cfg.GroundTruth == "" {
		cfg.GroundTruth = DefaultGroundTruth
	}
	if cfg.Results == "" {
		cfg.Results = DefaultResults
	}
	if cfg.Comparison == "" {
		cfg.Comparison = DefaultComparison
	}
	if cfg.Pattern == "" {
		cfg.Pattern = DefaultPattern
	}
}
