package validate

import (
	"testing"

	"github.com/syyyclover/ocean-terminology/pkg/terminology/report"
)

func goodTermEntry() report.TermEntry {
	return report.TermEntry{
		Name:       "风暴潮",
		Definition: "由强风引起的海面异常升高现象。",
		Source:     "风暴潮预警规范",
		Pages:      "第5页",
	}
}

func goodAssociationEntry() report.AssociationEntry {
	return report.AssociationEntry{
		Terms:      []string{"海洋灾害", "风暴潮"},
		Relation:   "主从关系",
		Confidence: 0.8,
		Evidence:   []report.AssociationEvidence{{Source: "防灾减灾标准", Pages: "第12页"}},
	}
}

func TestValidateTask1AcceptsWellFormed(t *testing.T) {
	in := map[string]report.TermEntry{"W01": goodTermEntry()}
	valid, violations := ValidateTask1(in)
	if len(violations) != 0 {
		t.Fatalf("unexpected violations: %v", violations)
	}
	if len(valid) != 1 {
		t.Fatalf("valid = %v, want the single entry kept", valid)
	}
}

func TestValidateTask1Rejections(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		edit  func(*report.TermEntry)
	}{
		{"wrong key prefix", "X01", func(e *report.TermEntry) {}},
		{"empty name", "W01", func(e *report.TermEntry) { e.Name = "" }},
		{"empty definition", "W01", func(e *report.TermEntry) { e.Definition = "" }},
		{"short definition", "W01", func(e *report.TermEntry) { e.Definition = "太短。" }},
		{"pdf suffix in source", "W01", func(e *report.TermEntry) { e.Source = "规范.pdf" }},
		{"path chars in source", "W01", func(e *report.TermEntry) { e.Source = "规范/附录" }},
		{"non-canonical pages", "W01", func(e *report.TermEntry) { e.Pages = "page 5" }},
		{"empty pages", "W01", func(e *report.TermEntry) { e.Pages = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			entry := goodTermEntry()
			tc.edit(&entry)
			valid, violations := ValidateTask1(map[string]report.TermEntry{tc.key: entry})
			if len(valid) != 0 {
				t.Errorf("entry accepted, want rejection")
			}
			if len(violations) == 0 {
				t.Errorf("no violation reported")
			}
		})
	}
}

func TestValidateTask1FiltersBadKeepsGood(t *testing.T) {
	bad := goodTermEntry()
	bad.Definition = ""
	in := map[string]report.TermEntry{
		"W01": goodTermEntry(),
		"W02": bad,
	}
	valid, violations := ValidateTask1(in)
	if _, ok := valid["W01"]; !ok {
		t.Error("W01 should survive validation")
	}
	if _, ok := valid["W02"]; ok {
		t.Error("W02 should be filtered out")
	}
	if len(violations) == 0 {
		t.Error("expected a violation for W02")
	}
}

func TestValidateTask2Rejections(t *testing.T) {
	cases := []struct {
		name string
		key  string
		edit func(*report.AssociationEntry)
	}{
		{"wrong key prefix", "W01", func(e *report.AssociationEntry) {}},
		{"one term only", "R01", func(e *report.AssociationEntry) { e.Terms = e.Terms[:1] }},
		{"empty term", "R01", func(e *report.AssociationEntry) { e.Terms[1] = "" }},
		{"unknown relation", "R01", func(e *report.AssociationEntry) { e.Relation = "未知关系" }},
		{"no evidence", "R01", func(e *report.AssociationEntry) { e.Evidence = nil }},
		{"bad evidence pages", "R01", func(e *report.AssociationEntry) { e.Evidence[0].Pages = "12" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			entry := goodAssociationEntry()
			tc.edit(&entry)
			valid, violations := ValidateTask2(map[string]report.AssociationEntry{tc.key: entry})
			if len(valid) != 0 {
				t.Errorf("entry accepted, want rejection")
			}
			if len(violations) == 0 {
				t.Errorf("no violation reported")
			}
		})
	}
}

func TestValidateTask2AcceptsWellFormed(t *testing.T) {
	valid, violations := ValidateTask2(map[string]report.AssociationEntry{"R01": goodAssociationEntry()})
	if len(violations) != 0 || len(valid) != 1 {
		t.Fatalf("valid=%v violations=%v", valid, violations)
	}
}

func TestReporterPassVerdict(t *testing.T) {
	r := NewReporter()
	rep := r.Build(
		map[string]report.TermEntry{"W01": goodTermEntry()},
		map[string]report.AssociationEntry{"R01": goodAssociationEntry()},
	)

	if rep.ID == "" {
		t.Error("report has no ID")
	}
	if rep.Task1.CompletenessScore != 1.0 || rep.Task2.CompletenessScore != 1.0 {
		t.Errorf("scores = %v / %v, want 1.0 / 1.0", rep.Task1.CompletenessScore, rep.Task2.CompletenessScore)
	}
	if rep.Overall.Status != StatusPass {
		t.Errorf("status = %q, want %q", rep.Overall.Status, StatusPass)
	}
	if len(rep.Recommendations) != 1 || rep.Recommendations[0] != "所有任务输出格式正确，可以提交" {
		t.Errorf("recommendations = %v", rep.Recommendations)
	}
}

func TestReporterFailVerdict(t *testing.T) {
	incomplete := goodTermEntry()
	incomplete.Definition = ""

	r := NewReporter()
	rep := r.Build(
		map[string]report.TermEntry{"W01": incomplete},
		nil,
	)

	if rep.Task1.CompletenessScore != 0 {
		t.Errorf("task1 score = %v, want 0", rep.Task1.CompletenessScore)
	}
	// with no task-2 output, the overall score is the task-1 score alone
	if rep.Overall.OverallScore != 0 {
		t.Errorf("overall score = %v, want 0", rep.Overall.OverallScore)
	}
	if rep.Overall.Status != StatusFail {
		t.Errorf("status = %q, want %q", rep.Overall.Status, StatusFail)
	}
	if len(rep.Task1.Incomplete) != 1 || rep.Task1.Incomplete[0] != "W01" {
		t.Errorf("incomplete = %v", rep.Task1.Incomplete)
	}
	if len(rep.Recommendations) == 0 {
		t.Error("expected remediation recommendations")
	}
}

func TestReporterUniqueIDs(t *testing.T) {
	r := NewReporter()
	a := r.Build(nil, nil)
	b := r.Build(nil, nil)
	if a.ID == b.ID {
		t.Errorf("consecutive reports share ID %s", a.ID)
	}
}
