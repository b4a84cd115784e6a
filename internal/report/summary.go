package report

import (
	"github.com/AndreyAkinshin/rexharness/internal/tests"
)

// Summary holds the run counters and per-case breakdown.
// Counters only grow; they are final once the pass completes.
type Summary struct {
	Total   int
	Passed  int
	Failed  int
	Cases   []CaseSummary
	Records []tests.Record
}

// CaseSummary counts comparison records for one regex case.
type CaseSummary struct {
	Regex  string
	Total  int
	Passed int
	Failed int
	// Tag is GENERATE_ERROR or COMPILE_ERROR for a case that never reached the run stage.
	Tag string
}

func (s *Summary) add(rec tests.Record) {
	s.Total++
	if rec.Passed() {
		s.Passed++
	} else {
		s.Failed++
	}
	s.Records = append(s.Records, rec)

	// Records arrive grouped by case, so only the last entry can match.
	if n := len(s.Cases); n == 0 || s.Cases[n-1].Regex != rec.Regex {
		s.Cases = append(s.Cases, CaseSummary{Regex: rec.Regex})
	}
	c := &s.Cases[len(s.Cases)-1]
	c.Total++
	if rec.Passed() {
		c.Passed++
	} else {
		c.Failed++
	}
	if rec.String == "" {
		c.Tag = rec.Actual
	}
}

func (s Summary) clone() Summary {
	out := s
	out.Cases = append([]CaseSummary(nil), s.Cases...)
	out.Records = append([]tests.Record(nil), s.Records...)
	return out
}
