package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/AndreyAkinshin/rexharness/internal/tests"
)

// RunInfo identifies one harness run in the JSON summary.
type RunInfo struct {
	ID             string
	StartedAt      time.Time
	FinishedAt     time.Time
	ResultsPath    string
	ComparisonPath string
}

// NewRunInfo starts a RunInfo with a fresh random ID.
func NewRunInfo(resultsPath, comparisonPath string) RunInfo {
	return RunInfo{
		ID:             uuid.NewString(),
		StartedAt:      time.Now().UTC(),
		ResultsPath:    resultsPath,
		ComparisonPath: comparisonPath,
	}
}

type jsonSummary struct {
	RunID      string       `json:"run_id"`
	StartedAt  time.Time    `json:"started_at"`
	FinishedAt time.Time    `json:"finished_at"`
	Results    string       `json:"results"`
	Comparison string       `json:"comparison"`
	Total      int          `json:"total"`
	Passed     int          `json:"passed"`
	Failed     int          `json:"failed"`
	Cases      []jsonCase   `json:"cases"`
	Records    []jsonRecord `json:"records"`
}

type jsonCase struct {
	Regex  string `json:"regex"`
	Total  int    `json:"total"`
	Passed int    `json:"passed"`
	Failed int    `json:"failed"`
	Tag    string `json:"tag,omitempty"`
}

type jsonRecord struct {
	Regex    string       `json:"regex"`
	String   string       `json:"string,omitempty"`
	Expected string       `json:"expected"`
	Actual   string       `json:"actual"`
	Status   tests.Status `json:"status"`
	Found    bool         `json:"found"`
}

// WriteJSON writes a machine-readable summary of the run to path.
func WriteJSON(path string, info RunInfo, s Summary) error {
	doc := jsonSummary{
		RunID:      info.ID,
		StartedAt:  info.StartedAt,
		FinishedAt: info.FinishedAt,
		Results:    info.ResultsPath,
		Comparison: info.ComparisonPath,
		Total:      s.Total,
		Passed:     s.Passed,
		Failed:     s.Failed,
		Cases:      make([]jsonCase, 0, len(s.Cases)),
		Records:    make([]jsonRecord, 0, len(s.Records)),
	}
	for _, c := range s.Cases {
		doc.Cases = append(doc.Cases, jsonCase(c))
	}
	for _, r := range s.Records {
		doc.Records = append(doc.Records, jsonRecord(r))
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create summary directory: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}
