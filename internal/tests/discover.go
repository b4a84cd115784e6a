package tests

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultPattern selects regex and string case files.
const DefaultPattern = "*.txt"

// ErrRegexDirNotFound is returned when the regex directory does not exist.
var ErrRegexDirNotFound = errors.New("regex directory not found")

// Discovery is the result of scanning the regex and strings directories.
type Discovery struct {
	Cases []RegexCase // Sorted by name
	// Orphans are string files that match no regex case stem.
	Orphans []string
}

// Discover loads regex cases from regexDir and binds string cases from stringsDir.
//
// A string file "<stem>_<suffix>" is run against every regex case with that
// stem. When several stems fit (stems "a" and "a_b" both prefix "a_b_1.txt"),
// the file is bound to each of those cases.
// A missing regexDir is an error; a missing stringsDir yields cases with no strings.
func Discover(regexDir, stringsDir, pattern string) (*Discovery, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("invalid case pattern %q: %w", pattern, err)
	}

	regexFiles, err := listFiles(regexDir, pattern)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrRegexDirNotFound, regexDir)
		}
		return nil, err
	}

	stringFiles, err := listFiles(stringsDir, pattern)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	cases := make([]RegexCase, 0, len(regexFiles))
	byStem := make(map[string]int, len(regexFiles))
	for _, name := range regexFiles {
		stem := strings.TrimSuffix(name, filepath.Ext(name))
		byStem[stem] = len(cases)
		cases = append(cases, RegexCase{
			Name: name,
			Stem: stem,
			Path: filepath.Join(regexDir, name),
		})
	}

	d := &Discovery{}
	for _, name := range stringFiles {
		idxs := owners(name, byStem)
		if len(idxs) == 0 {
			d.Orphans = append(d.Orphans, name)
			continue
		}
		for _, idx := range idxs {
			cases[idx].Strings = append(cases[idx].Strings, StringCase{
				Name:  name,
				Path:  filepath.Join(stringsDir, name),
				Regex: cases[idx].Name,
			})
		}
	}

	// listFiles returns sorted names, so each Strings slice is already sorted.
	d.Cases = cases
	return d, nil
}

// owners returns the index of every case whose stem is a "<stem>_" prefix of name.
func owners(name string, byStem map[string]int) []int {
	var idxs []int
	for i := strings.Index(name, "_"); i >= 0; {
		if idx, ok := byStem[name[:i]]; ok {
			idxs = append(idxs, idx)
		}
		next := strings.Index(name[i+1:], "_")
		if next < 0 {
			break
		}
		i += next + 1
	}
	return idxs
}

// listFiles returns the sorted names of regular files in dir matching pattern.
func listFiles(dir, pattern string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		matched, err := filepath.Match(pattern, entry.Name())
		if err != nil {
			return nil, err
		}
		if matched {
			names = append(names, entry.Name())
		}
	}

	sort.Strings(names)
	return names, nil
}
