// Package project locates the harness root directory.
package project

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/AndreyAkinshin/rexharness/internal/config"
)

// RootEnvVar overrides root discovery when set.
const RootEnvVar = "REXHARNESS_ROOT"

// ErrNoProjectRoot is returned when no ancestor holds a root marker.
var ErrNoProjectRoot = errors.New("rexharness.yaml or tests/regex not found in the current directory or any parent")

// FindRoot returns $REXHARNESS_ROOT if set, otherwise walks up from the
// current working directory. When nothing is found the working directory
// itself is the root, so a bare tests/ layout still runs and reports what is missing.
func FindRoot() (string, error) {
	if env := os.Getenv(RootEnvVar); env != "" {
		return filepath.Abs(env)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	root, err := FindRootFrom(cwd)
	if errors.Is(err, ErrNoProjectRoot) {
		return filepath.Abs(cwd)
	}
	return root, err
}

// FindRootFrom walks up from the given directory until it finds
// rexharness.yaml or a tests/regex directory.
func FindRootFrom(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if isRoot(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return "", ErrNoProjectRoot
		}
		dir = parent
	}
}

func isRoot(dir string) bool {
	if fi, err := os.Stat(filepath.Join(dir, config.FileName)); err == nil && !fi.IsDir() {
		return true
	}
	if fi, err := os.Stat(filepath.Join(dir, config.DefaultRegexDir)); err == nil && fi.IsDir() {
		return true
	}
	return false
}
