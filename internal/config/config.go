// Package config provides loading and validation for rexharness.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/AndreyAkinshin/rexharness/internal/schema"
)

// FileName is the optional configuration file at the project root.
const FileName = "rexharness.yaml"

// Config represents rexharness.yaml. Every field is optional; unset fields
// take the defaults that reproduce the fixed tests/ layout.
type Config struct {
	Generator       string   `yaml:"generator,omitempty"`
	Compiler        string   `yaml:"compiler,omitempty"`
	CompilerFlags   []string `yaml:"compiler_flags,omitempty"`
	GeneratedSource string   `yaml:"generated_source,omitempty"`
	Binary          string   `yaml:"binary,omitempty"`
	RegexDir        string   `yaml:"regex_dir,omitempty"`
	StringsDir      string   `yaml:"strings_dir,omitempty"`
	GroundTruth     string   `yaml:"ground_truth,omitempty"`
	Results         string   `yaml:"results,omitempty"`
	Comparison      string   `yaml:"comparison,omitempty"`
	Pattern         string   `yaml:"pattern,omitempty"`
	SummaryJSON     string   `yaml:"summary_json,omitempty"`
}

// Load reads, validates and parses a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse validates YAML data against the embedded schema and decodes it.
func Parse(data []byte) (*Config, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if doc == nil {
		// Empty file or comments only
		doc = map[string]interface{}{}
	}
	if err := schema.ValidateDocument(doc); err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &cfg, nil
}

// LoadWithDefaults reads root/rexharness.yaml if present and applies defaults.
// A missing file is not an error.
func LoadWithDefaults(root string) (*Config, error) {
	path := filepath.Join(root, FileName)

	cfg, err := Load(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		cfg = &Config{}
	}

	applyDefaults(cfg)
	return cfg, nil
}
