// Package validate checks resolver output against the submission format
// rules and produces validation reports.
package validate

import (
	"crypto/rand"
	"fmt"
	"regexp"
	"sort"
	"time"
	"unicode/utf8"

	"github.com/oklog/ulid/v2"

	"github.com/syyyclover/ocean-terminology/pkg/terminology/patterns"
	"github.com/syyyclover/ocean-terminology/pkg/terminology/report"
)

// MinDefinitionLen is the shortest acceptable definition, in runes.
const MinDefinitionLen = 10

// PassThreshold is the completeness score at or above which a task passes.
const PassThreshold = 0.8

// Pass/fail status strings used in reports.
const (
	StatusPass = "通过"
	StatusFail = "需要改进"
)

var badSourceChars = regexp.MustCompile(`[<>:"/\\|?*]`)

// ValidateTask1 filters the task-1 map to records satisfying the format
// rules and returns the violations found, one message per problem, in key
// order. Keys must carry the W prefix; names and definitions must be
// non-empty; definitions must reach the minimum length; sources must be
// normalized document names (no .pdf suffix, no path characters); page
// labels must be canonical.
func ValidateTask1(in map[string]report.TermEntry) (map[string]report.TermEntry, []string) {
	valid := make(map[string]report.TermEntry, len(in))
	var violations []string

	for _, key := range sortedKeys(in) {
		entry := in[key]
		errs := checkTask1Entry(key, entry)
		if len(errs) == 0 {
			valid[key] = entry
			continue
		}
		violations = append(violations, errs...)
	}
	return valid, violations
}

func checkTask1Entry(key string, entry report.TermEntry) []string {
	var errs []string
	if len(key) == 0 || key[0] != 'W' {
		return []string{fmt.Sprintf("%s: 键格式错误", key)}
	}
	if entry.Name == "" {
		errs = append(errs, fmt.Sprintf("%s: 术语名称为空", key))
	}
	switch {
	case entry.Definition == "":
		errs = append(errs, fmt.Sprintf("%s: 术语定义为空", key))
	case utf8.RuneCountInString(entry.Definition) < MinDefinitionLen:
		errs = append(errs, fmt.Sprintf("%s: 术语定义过短", key))
	}
	switch {
	case entry.Source == "":
		errs = append(errs, fmt.Sprintf("%s: 文档出处为空", key))
	case !validSource(entry.Source):
		errs = append(errs, fmt.Sprintf("%s: 文档出处格式不正确: %s", key, entry.Source))
	}
	switch {
	case entry.Pages == "":
		errs = append(errs, fmt.Sprintf("%s: 文档页数为空", key))
	case !patterns.IsCanonicalPageLabel(entry.Pages):
		errs = append(errs, fmt.Sprintf("%s: 文档页数格式不正确: %s", key, entry.Pages))
	}
	return errs
}

// ValidateTask2 filters the task-2 map the same way. Keys must carry the R
// prefix; each entry needs exactly two non-empty terms, a relation of
// 主从关系 or 因果关系, and at least one evidence citation with non-empty
// source and canonical page label.
func ValidateTask2(in map[string]report.AssociationEntry) (map[string]report.AssociationEntry, []string) {
	valid := make(map[string]report.AssociationEntry, len(in))
	var violations []string

	for _, key := range sortedKeys(in) {
		entry := in[key]
		errs := checkTask2Entry(key, entry)
		if len(errs) == 0 {
			valid[key] = entry
			continue
		}
		violations = append(violations, errs...)
	}
	return valid, violations
}

func checkTask2Entry(key string, entry report.AssociationEntry) []string {
	var errs []string
	if len(key) == 0 || key[0] != 'R' {
		return []string{fmt.Sprintf("%s: 键格式错误", key)}
	}
	if len(entry.Terms) != 2 {
		errs = append(errs, fmt.Sprintf("%s: 术语关联必须包含两个术语", key))
	} else {
		for _, term := range entry.Terms {
			if term == "" {
				errs = append(errs, fmt.Sprintf("%s: 术语关联包含空术语", key))
			}
		}
	}
	if entry.Relation != "主从关系" && entry.Relation != "因果关系" {
		errs = append(errs, fmt.Sprintf("%s: 关联关系无效: %s", key, entry.Relation))
	}
	if len(entry.Evidence) == 0 {
		errs = append(errs, fmt.Sprintf("%s: 关联描述为空", key))
	}
	for _, ev := range entry.Evidence {
		if ev.Source == "" || !validSource(ev.Source) {
			errs = append(errs, fmt.Sprintf("%s: 关联描述中文档出处不正确: %s", key, ev.Source))
		}
		if !patterns.IsCanonicalPageLabel(ev.Pages) {
			errs = append(errs, fmt.Sprintf("%s: 关联描述中文档页数不正确: %s", key, ev.Pages))
		}
	}
	return errs
}

func validSource(source string) bool {
	if len(source) >= 4 && source[len(source)-4:] == ".pdf" {
		return false
	}
	return !badSourceChars.MatchString(source)
}

// TaskAnalysis summarizes one task's completeness.
type TaskAnalysis struct {
	Total             int      `json:"total"`
	Complete          int      `json:"complete"`
	Incomplete        []string `json:"incomplete"`
	CompletenessScore float64  `json:"completeness_score"`
}

// Assessment is the overall pass/fail verdict.
type Assessment struct {
	OverallScore float64 `json:"overall_score"`
	Status       string  `json:"status"`
	Task1Status  string  `json:"task1_status"`
	Task2Status  string  `json:"task2_status"`
}

// Report is the full validation report for one pipeline run.
type Report struct {
	ID              string       `json:"report_id"`
	GeneratedAt     time.Time    `json:"generated_at"`
	Task1           TaskAnalysis `json:"task1_validation"`
	Task2           TaskAnalysis `json:"task2_validation"`
	Overall         Assessment   `json:"overall_assessment"`
	Recommendations []string     `json:"recommendations"`
}

// Reporter builds ULID-stamped validation reports.
type Reporter struct {
	entropy *ulid.MonotonicEntropy
}

// NewReporter creates a reporter with monotonic ULID entropy.
func NewReporter() *Reporter {
	return &Reporter{entropy: ulid.Monotonic(rand.Reader, 0)}
}

// Build analyzes both task outputs and produces the report. When the task-2
// map is empty the overall score is the task-1 score alone.
func (r *Reporter) Build(task1 map[string]report.TermEntry, task2 map[string]report.AssociationEntry) Report {
	rep := Report{
		ID:          ulid.MustNew(ulid.Now(), r.entropy).String(),
		GeneratedAt: time.Now().UTC(),
		Task1:       analyzeTask1(task1),
		Task2:       analyzeTask2(task2),
	}

	overall := rep.Task1.CompletenessScore
	if len(task2) > 0 {
		overall = (rep.Task1.CompletenessScore + rep.Task2.CompletenessScore) / 2
	}
	rep.Overall = Assessment{
		OverallScore: overall,
		Status:       status(overall),
		Task1Status:  status(rep.Task1.CompletenessScore),
		Task2Status:  status(rep.Task2.CompletenessScore),
	}

	if rep.Task1.CompletenessScore < PassThreshold {
		rep.Recommendations = append(rep.Recommendations, "任务1: 检查术语定义完整性和文档出处格式")
	}
	if len(task2) > 0 && rep.Task2.CompletenessScore < PassThreshold {
		rep.Recommendations = append(rep.Recommendations, "任务2: 检查关联关系类型和描述完整性")
	}
	if len(rep.Recommendations) == 0 {
		rep.Recommendations = append(rep.Recommendations, "所有任务输出格式正确，可以提交")
	}
	return rep
}

func analyzeTask1(in map[string]report.TermEntry) TaskAnalysis {
	a := TaskAnalysis{Total: len(in)}
	for _, key := range sortedKeys(in) {
		entry := in[key]
		if entry.Name != "" && entry.Definition != "" && entry.Source != "" && entry.Pages != "" {
			a.Complete++
		} else {
			a.Incomplete = append(a.Incomplete, key)
		}
	}
	if a.Total > 0 {
		a.CompletenessScore = float64(a.Complete) / float64(a.Total)
	}
	return a
}

func analyzeTask2(in map[string]report.AssociationEntry) TaskAnalysis {
	a := TaskAnalysis{Total: len(in)}
	for _, key := range sortedKeys(in) {
		entry := in[key]
		ok := len(entry.Terms) == 2 &&
			(entry.Relation == "主从关系" || entry.Relation == "因果关系") &&
			len(entry.Evidence) > 0
		if ok {
			a.Complete++
		} else {
			a.Incomplete = append(a.Incomplete, key)
		}
	}
	if a.Total > 0 {
		a.CompletenessScore = float64(a.Complete) / float64(a.Total)
	}
	return a
}

func status(score float64) string {
	if score >= PassThreshold {
		return StatusPass
	}
	return StatusFail
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
