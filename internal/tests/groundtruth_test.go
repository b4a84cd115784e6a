package tests

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseGroundTruth_SkipsShortLines(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"b.txt b_1.txt MATCHED",
		"",
		"   ",
		"only-one",
		"two tokens",
		"c.txt\tc_1.txt\tNOMATCH extra tokens",
	}, "\n")

	gt, err := ParseGroundTruth(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseGroundTruth() error = %v", err)
	}

	if len(gt) != 2 {
		t.Fatalf("len(gt) = %d, want 2", len(gt))
	}
	if got, ok := gt.Lookup("b.txt", "b_1.txt"); !ok || got != "MATCHED" {
		t.Errorf("Lookup(b.txt, b_1.txt) = %q, %v; want MATCHED, true", got, ok)
	}
	if got, ok := gt.Lookup("c.txt", "c_1.txt"); !ok || got != "NOMATCH" {
		t.Errorf("Lookup(c.txt, c_1.txt) = %q, %v; want NOMATCH, true", got, ok)
	}
}

func TestParseGroundTruth_LastWriteWins(t *testing.T) {
	t.Parallel()

	input := "a.txt a_1.txt FIRST\nb.txt b_1.txt OTHER\na.txt a_1.txt SECOND\n"

	gt, err := ParseGroundTruth(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseGroundTruth() error = %v", err)
	}

	if len(gt) != 2 {
		t.Errorf("len(gt) = %d, want 2 (one entry per unique key)", len(gt))
	}
	if got := gt[Key{Regex: "a.txt", String: "a_1.txt"}]; got != "SECOND" {
		t.Errorf("gt[a.txt a_1.txt] = %q, want %q", got, "SECOND")
	}
}

func TestParseGroundTruth_NoCaseLevelKeys(t *testing.T) {
	t.Parallel()

	// Fields never yields empty tokens, so the case-level key cannot be loaded.
	gt, err := ParseGroundTruth(strings.NewReader("a.txt  GENERATE_ERROR\n"))
	if err != nil {
		t.Fatalf("ParseGroundTruth() error = %v", err)
	}
	if _, ok := gt.Lookup("a.txt", ""); ok {
		t.Error("Lookup(a.txt, \"\") found an entry, want none")
	}
}

func TestLoadGroundTruth_MissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "groundtruth.txt")
	_, err := LoadGroundTruth(path)
	if err == nil {
		t.Fatal("LoadGroundTruth() expected error for missing file")
	}
	if !errors.Is(err, ErrGroundTruthNotFound) {
		t.Errorf("errors.Is(err, ErrGroundTruthNotFound) = false; err = %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q should name the path", err)
	}
}

func TestLoadGroundTruth_ReadsFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "groundtruth.txt")
	if err := os.WriteFile(path, []byte("b.txt b_1.txt MATCHED\n"), 0644); err != nil {
		t.Fatal(err)
	}

	gt, err := LoadGroundTruth(path)
	if err != nil {
		t.Fatalf("LoadGroundTruth() error = %v", err)
	}
	if len(gt) != 1 {
		t.Errorf("len(gt) = %d, want 1", len(gt))
	}
}
