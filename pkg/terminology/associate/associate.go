// Package associate classifies pairwise term relationships across the
// corpus and keeps the best-evidenced claim per pair.
package associate

import (
	"fmt"
	"strings"

	"github.com/syyyclover/ocean-terminology/pkg/terminology/corpus"
	"github.com/syyyclover/ocean-terminology/pkg/terminology/patterns"
	"github.com/syyyclover/ocean-terminology/pkg/terminology/relation"
)

// DefaultMinConfidence is the association confidence gate.
const DefaultMinConfidence = 0.7

// Evidence anchors a claim to a document and page.
type Evidence struct {
	SourceDoc string
	PageLabel string
}

// Record is the final task-2 output unit. Only accepted pairs (relationship
// resolved and confidence above the gate) become records.
type Record struct {
	Key         string
	TermA       string
	TermB       string
	Relation    relation.Relation
	Confidence  float64
	Description string
	Evidence    []Evidence
	Context     string
}

// Resolver enumerates unordered term pairs and classifies their shared
// contexts.
type Resolver struct {
	classifier *relation.Classifier
	gate       float64
}

// NewResolver creates a resolver with the given confidence gate. A gate of
// zero selects the default.
func NewResolver(c *relation.Classifier, gate float64) *Resolver {
	if gate == 0 {
		gate = DefaultMinConfidence
	}
	return &Resolver{classifier: c, gate: gate}
}

// Resolve generates all C(n,2) unordered pairs from the requested terms, in
// input order, and keeps the single best-confidence classification per
// pair. Accepted pairs are keyed R01, R02, ... in discovery order, which is
// the pair iteration order, not confidence order. Rejected pairs leave no
// record and no ordinal gap.
func (r *Resolver) Resolve(terms []string, docs []corpus.Document) []Record {
	var records []Record
	for i := 0; i < len(terms); i++ {
		for j := i + 1; j < len(terms); j++ {
			rec, ok := r.resolvePair(terms[i], terms[j], docs)
			if !ok {
				continue
			}
			rec.Key = fmt.Sprintf("R%02d", len(records)+1)
			records = append(records, rec)
		}
	}
	return records
}

func (r *Resolver) resolvePair(termA, termB string, docs []corpus.Document) (Record, bool) {
	var best Record
	bestConfidence := 0.0

	for _, doc := range docs {
		for _, page := range doc.Pages {
			if !strings.Contains(page.Text, termA) || !strings.Contains(page.Text, termB) {
				continue
			}
			for _, window := range ContextWindows(page.Text, termA, termB) {
				res := r.classifier.Classify(termA, termB, window)
				if res.Confidence <= bestConfidence || res.Confidence < r.gate {
					continue
				}
				bestConfidence = res.Confidence
				best = Record{
					TermA:       termA,
					TermB:       termB,
					Relation:    res.Relation,
					Confidence:  res.Confidence,
					Description: res.Description,
					Evidence: []Evidence{{
						SourceDoc: corpus.NormalizeDocName(doc.Name),
						PageLabel: patterns.PageLabel(page.Number),
					}},
					Context: Excerpt(window),
				}
			}
		}
	}

	if bestConfidence == 0 || best.Relation == relation.Unknown {
		return Record{}, false
	}
	return best, true
}
