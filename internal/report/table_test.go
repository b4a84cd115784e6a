package report

import (
	"strings"
	"testing"

	"github.com/AndreyAkinshin/rexharness/internal/tests"
)

func TestRenderTable(t *testing.T) {
	s := Summary{
		Total: 3, Passed: 1, Failed: 2,
		Cases: []CaseSummary{
			{Regex: "a.txt", Total: 1, Failed: 1, Tag: tests.TagGenerateError},
			{Regex: "b.txt", Total: 2, Passed: 1, Failed: 1},
		},
	}

	got := RenderTable(s)

	for _, want := range []string{"a.txt", "b.txt", "GENERATE_ERROR", "TOTAL"} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderTable() missing %q:\n%s", want, got)
		}
	}
	if lines := strings.Count(got, "\n"); lines < 5 {
		t.Errorf("RenderTable() has %d lines, want header, rows and footer:\n%s", lines, got)
	}
}
