package tests

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrGroundTruthNotFound is returned when the ground truth file does not exist.
var ErrGroundTruthNotFound = errors.New("ground truth not found")

// LoadGroundTruth reads the ground truth table from path.
func LoadGroundTruth(path string) (GroundTruth, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrGroundTruthNotFound, path)
		}
		return nil, fmt.Errorf("failed to read ground truth: %w", err)
	}
	defer func() { _ = f.Close() }()

	gt, err := ParseGroundTruth(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read ground truth %s: %w", path, err)
	}
	return gt, nil
}

// ParseGroundTruth parses whitespace-delimited "<regex> <string> <expected>" lines.
//
// Lines with fewer than three tokens are skipped. Tokens after the third are
// ignored. A later line with the same (regex, string) pair replaces the earlier one.
func ParseGroundTruth(r io.Reader) (GroundTruth, error) {
	gt := make(GroundTruth)

	scanner := bufio.NewScanner(r)
	// Expected outputs can be long match dumps.
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		parts := strings.Fields(scanner.Text())
		if len(parts) < 3 {
			continue
		}
		gt[Key{Regex: parts[0], String: parts[1]}] = parts[2]
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return gt, nil
}
