package config

import (
	"path/filepath"
	"strings"
)

// Paths is a configuration resolved against a project root.
type Paths struct {
	Root            string
	Generator       string
	Compiler        string // Absolute, or a bare name for PATH lookup
	CompilerFlags   []string
	GeneratedSource string
	Binary          string
	RegexDir        string
	StringsDir      string
	GroundTruth     string
	Results         string
	Comparison      string
	Pattern         string
	SummaryJSON     string // Empty when disabled
}

// Resolve makes every configured path absolute relative to root.
// The compiler is left as-is when it is a bare command name.
func (c *Config) Resolve(root string) Paths {
	compiler := c.Compiler
	if strings.ContainsRune(compiler, '/') || strings.ContainsRune(compiler, filepath.Separator) {
		compiler = resolve(root, compiler)
	}

	p := Paths{
		Root:            root,
		Generator:       resolve(root, c.Generator),
		Compiler:        compiler,
		CompilerFlags:   append([]string(nil), c.CompilerFlags...),
		GeneratedSource: resolve(root, c.GeneratedSource),
		Binary:          resolve(root, c.Binary),
		RegexDir:        resolve(root, c.RegexDir),
		StringsDir:      resolve(root, c.StringsDir),
		GroundTruth:     resolve(root, c.GroundTruth),
		Results:         resolve(root, c.Results),
		Comparison:      resolve(root, c.Comparison),
		Pattern:         c.Pattern,
	}
	if c.SummaryJSON != "" {
		p.SummaryJSON = resolve(root, c.SummaryJSON)
	}
	return p
}

func resolve(root, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(root, path)
}
