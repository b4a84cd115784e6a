package tests

import "testing"

func TestCompare(t *testing.T) {
	gt := GroundTruth{
		{Regex: "b.txt", String: "b_1.txt"}: "MATCHED",
	}

	tests := []struct {
		name     string
		outcome  Outcome
		expected Record
	}{
		{
			name:    "exact match passes",
			outcome: Outcome{Regex: "b.txt", String: "b_1.txt", Stage: StageRun, Actual: "MATCHED"},
			expected: Record{
				Regex: "b.txt", String: "b_1.txt", Expected: "MATCHED", Actual: "MATCHED",
				Status: StatusPass, Found: true,
			},
		},
		{
			name:    "different output fails",
			outcome: Outcome{Regex: "b.txt", String: "b_1.txt", Stage: StageRun, Actual: "NOMATCH"},
			expected: Record{
				Regex: "b.txt", String: "b_1.txt", Expected: "MATCHED", Actual: "NOMATCH",
				Status: StatusFail, Found: true,
			},
		},
		{
			name:    "comparison is case sensitive",
			outcome: Outcome{Regex: "b.txt", String: "b_1.txt", Stage: StageRun, Actual: "matched"},
			expected: Record{
				Regex: "b.txt", String: "b_1.txt", Expected: "MATCHED", Actual: "matched",
				Status: StatusFail, Found: true,
			},
		},
		{
			name:    "missing ground truth fails",
			outcome: Outcome{Regex: "c.txt", String: "c_1.txt", Stage: StageRun, Actual: "MATCHED"},
			expected: Record{
				Regex: "c.txt", String: "c_1.txt", Expected: Missing, Actual: "MATCHED",
				Status: StatusFail, Found: false,
			},
		},
		{
			name:    "case level failure is missing",
			outcome: Outcome{Regex: "b.txt", Stage: StageGenerate, Actual: TagGenerateError},
			expected: Record{
				Regex: "b.txt", Expected: Missing, Actual: TagGenerateError,
				Status: StatusFail, Found: false,
			},
		},
		{
			name:    "runtime error tag fails",
			outcome: Outcome{Regex: "b.txt", String: "b_1.txt", Stage: StageRun, Actual: TagRuntimeError},
			expected: Record{
				Regex: "b.txt", String: "b_1.txt", Expected: "MATCHED", Actual: TagRuntimeError,
				Status: StatusFail, Found: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.outcome, gt); got != tt.expected {
				t.Errorf("Compare() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

// TestCompare_MissingSentinelCollision documents that the MISSING sentinel is
// a plain string: an actual value of exactly "MISSING" compares equal to it.
func TestCompare_MissingSentinelCollision(t *testing.T) {
	rec := Compare(Outcome{Regex: "c.txt", String: "c_1.txt", Actual: Missing}, GroundTruth{})

	if rec.Found {
		t.Error("Found = true, want false")
	}
	if rec.Status != StatusPass {
		t.Errorf("Status = %v, want %v", rec.Status, StatusPass)
	}
}
