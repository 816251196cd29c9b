// Package discover runs open-ended term discovery over the corpus,
// independent of any requested term list.
package discover

import (
	"github.com/syyyclover/ocean-terminology/pkg/terminology/corpus"
	"github.com/syyyclover/ocean-terminology/pkg/terminology/match"
	"github.com/syyyclover/ocean-terminology/pkg/terminology/patterns"
	"github.com/syyyclover/ocean-terminology/pkg/terminology/score"
)

// Term is one discovered vocabulary item with its best evidence.
type Term struct {
	Term       string
	Definition string
	SourceDoc  string
	PageLabel  string
	Confidence float64
}

// Discoverer scans page text with the unanchored definition patterns and
// keeps ocean-domain terms only.
type Discoverer struct {
	lib     *patterns.Library
	matcher *match.Matcher
	scorer  *score.Scorer
}

// NewDiscoverer creates a discoverer over the shared rule tables.
func NewDiscoverer(lib *patterns.Library, m *match.Matcher, s *score.Scorer) *Discoverer {
	return &Discoverer{lib: lib, matcher: m, scorer: s}
}

// Discover extracts every definition-shaped candidate from the corpus,
// filters to domain vocabulary, and keeps the highest-confidence record per
// unique term. Result order is first discovery order, so repeated runs are
// identical.
func (d *Discoverer) Discover(docs []corpus.Document) []Term {
	best := make(map[string]int)
	var out []Term

	for _, doc := range docs {
		for _, page := range doc.Pages {
			for _, m := range d.matcher.ExtractAll(page.Text) {
				if !d.lib.IsDomainTerm(m.Term) {
					continue
				}
				confidence := d.scorer.Score(score.Candidate{
					Term:       m.Term,
					Definition: m.Definition,
					Span:       m.Span,
				})
				candidate := Term{
					Term:       m.Term,
					Definition: m.Definition,
					SourceDoc:  corpus.NormalizeDocName(doc.Name),
					PageLabel:  patterns.PageLabel(page.Number),
					Confidence: confidence,
				}
				if idx, seen := best[m.Term]; seen {
					if confidence > out[idx].Confidence {
						out[idx] = candidate
					}
					continue
				}
				best[m.Term] = len(out)
				out = append(out, candidate)
			}
		}
	}
	return out
}
