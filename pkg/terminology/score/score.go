// Package score computes definition confidence from additive heuristic
// rules. The rules are deliberately simple, auditable, and monotonic; the
// result is a heuristic in [0,1], not a calibrated probability.
package score

import (
	"strings"
	"unicode/utf8"

	"github.com/syyyclover/ocean-terminology/pkg/terminology/patterns"
)

// Candidate is a (term, definition) pair under evaluation. Span is the full
// matched text including the link phrase; when empty, the definition text is
// inspected instead.
type Candidate struct {
	Term       string
	Definition string
	Span       string
}

// Rule is one scoring rule: a named predicate with an additive weight.
type Rule struct {
	Name    string
	Weight  float64
	Applies func(Candidate) bool
}

// Scorer sums rule weights for a candidate, capped at 1.0.
type Scorer struct {
	rules []Rule
}

// NewScorer builds the default definition-confidence rule set over the
// given pattern library's defining phrases and the [minLen, maxLen] rune
// length window.
func NewScorer(lib *patterns.Library, minLen, maxLen int) *Scorer {
	phrases := lib.DefiningPhrases
	return &Scorer{rules: []Rule{
		{
			Name:   "length",
			Weight: 0.3,
			Applies: func(c Candidate) bool {
				n := utf8.RuneCountInString(c.Definition)
				return n >= minLen && n <= maxLen
			},
		},
		{
			Name:   "self_reference",
			Weight: 0.2,
			Applies: func(c Candidate) bool {
				return c.Term != "" && strings.Contains(c.Definition, c.Term)
			},
		},
		{
			Name:   "terminal",
			Weight: 0.2,
			Applies: func(c Candidate) bool {
				return strings.HasSuffix(c.Definition, "。") ||
					strings.HasSuffix(c.Definition, "！") ||
					strings.HasSuffix(c.Definition, "？")
			},
		},
		{
			Name:   "link_phrase",
			Weight: 0.3,
			Applies: func(c Candidate) bool {
				text := c.Span
				if text == "" {
					text = c.Definition
				}
				for _, p := range phrases {
					if strings.Contains(text, p) {
						return true
					}
				}
				return false
			},
		},
	}}
}

// NewScorerWithRules builds a scorer from an explicit rule sequence. Used by
// tests and callers that swap weights without touching control flow.
func NewScorerWithRules(rules []Rule) *Scorer {
	return &Scorer{rules: rules}
}

// Score returns the capped rule sum for a candidate.
func (s *Scorer) Score(c Candidate) float64 {
	total, _ := s.ScoreWithBreakdown(c)
	return total
}

// ScoreWithBreakdown returns the total alongside the per-rule contribution.
func (s *Scorer) ScoreWithBreakdown(c Candidate) (float64, map[string]float64) {
	breakdown := make(map[string]float64, len(s.rules))
	total := 0.0
	for _, r := range s.rules {
		if r.Applies(c) {
			breakdown[r.Name] = r.Weight
			total += r.Weight
		}
	}
	if total > 1.0 {
		total = 1.0
	}
	return total, breakdown
}
