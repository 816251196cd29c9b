// Package resolve turns a requested term list into definition records by
// scanning the whole corpus.
package resolve

import (
	"fmt"
	"strings"

	"github.com/syyyclover/ocean-terminology/pkg/terminology/corpus"
	"github.com/syyyclover/ocean-terminology/pkg/terminology/match"
	"github.com/syyyclover/ocean-terminology/pkg/terminology/patterns"
	"github.com/syyyclover/ocean-terminology/pkg/terminology/score"
)

// DefaultSimilarityThreshold is the minimum confidence for an accepted
// definition.
const DefaultSimilarityThreshold = 0.8

// Record is the final task-1 output unit. Definition, SourceDoc, and
// PageLabel are empty when no candidate met the confidence gate; the empty
// slot keeps the 1:1 mapping between requested terms and keys.
type Record struct {
	Key        string
	Term       string
	Definition string
	SourceDoc  string
	PageLabel  string
	Confidence float64
}

// Found reports whether the record carries an accepted definition.
func (r Record) Found() bool { return r.Definition != "" }

// Resolver scans the corpus for each requested term and keeps the single
// highest-confidence definition per term.
type Resolver struct {
	matcher   *match.Matcher
	scorer    *score.Scorer
	threshold float64
}

// NewResolver creates a resolver with the given confidence gate. A
// threshold of zero selects the default.
func NewResolver(m *match.Matcher, s *score.Scorer, threshold float64) *Resolver {
	if threshold == 0 {
		threshold = DefaultSimilarityThreshold
	}
	return &Resolver{matcher: m, scorer: s, threshold: threshold}
}

// Resolve produces one record per requested term, keyed W01, W02, ... in
// strict request order. Duplicate requests get independent ordinals. The
// scan is exhaustive over every page of every document; ties keep the
// first-seen candidate since the scan order is deterministic.
func (r *Resolver) Resolve(terms []string, docs []corpus.Document) []Record {
	records := make([]Record, 0, len(terms))
	for i, term := range terms {
		rec := r.resolveOne(term, docs)
		rec.Key = fmt.Sprintf("W%02d", i+1)
		records = append(records, rec)
	}
	return records
}

func (r *Resolver) resolveOne(term string, docs []corpus.Document) Record {
	best := Record{Term: term}
	bestConfidence := 0.0

	for _, doc := range docs {
		for _, page := range doc.Pages {
			if !strings.Contains(page.Text, term) {
				continue
			}
			m, ok := r.matcher.Match(page.Text, term)
			if !ok {
				continue
			}
			confidence := r.scorer.Score(score.Candidate{
				Term:       term,
				Definition: m.Definition,
				Span:       m.Span,
			})
			if confidence > bestConfidence {
				bestConfidence = confidence
				best = Record{
					Term:       term,
					Definition: m.Definition,
					SourceDoc:  corpus.NormalizeDocName(doc.Name),
					PageLabel:  patterns.PageLabel(page.Number),
					Confidence: confidence,
				}
			}
		}
	}

	if bestConfidence < r.threshold {
		return Record{Term: term}
	}
	return best
}
