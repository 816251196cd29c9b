// Package terminology is the main engine facade for term-definition
// matching and pairwise relationship classification over a standards
// corpus.
package terminology

import (
	"context"
	"fmt"

	"github.com/syyyclover/ocean-terminology/pkg/terminology/associate"
	"github.com/syyyclover/ocean-terminology/pkg/terminology/corpus"
	"github.com/syyyclover/ocean-terminology/pkg/terminology/discover"
	"github.com/syyyclover/ocean-terminology/pkg/terminology/internalerr"
	"github.com/syyyclover/ocean-terminology/pkg/terminology/match"
	"github.com/syyyclover/ocean-terminology/pkg/terminology/patterns"
	"github.com/syyyclover/ocean-terminology/pkg/terminology/relation"
	"github.com/syyyclover/ocean-terminology/pkg/terminology/report"
	"github.com/syyyclover/ocean-terminology/pkg/terminology/resolve"
	"github.com/syyyclover/ocean-terminology/pkg/terminology/score"
	"github.com/syyyclover/ocean-terminology/pkg/terminology/store"
	"github.com/syyyclover/ocean-terminology/pkg/terminology/validate"
)

// Engine is the terminology engine facade.
type Engine struct {
	lib        *patterns.Library
	matcher    *match.Matcher
	scorer     *score.Scorer
	resolver   *resolve.Resolver
	associator *associate.Resolver
	discoverer *discover.Discoverer
	reporter   *validate.Reporter
	store      store.Store
}

// Options configures an Engine instance. Zero-value thresholds fall back to
// the package defaults; a nil Library gets the built-in rule tables. Store
// is optional and only needed for LoadCorpus.
type Options struct {
	Library             *patterns.Library
	SimilarityThreshold float64
	AssociationGate     float64
	MinDefinitionLen    int
	MaxDefinitionLen    int
	Store               store.Store
}

// New creates an Engine with the given dependencies.
func New(opts Options) *Engine {
	lib := opts.Library
	if lib == nil {
		lib = patterns.NewLibrary()
	}

	matcher := match.NewMatcher(lib)
	matcher.SetLengthGates(opts.MinDefinitionLen, opts.MaxDefinitionLen)
	scorer := score.NewScorer(lib, matcher.MinDefinitionLen(), matcher.MaxDefinitionLen())

	return &Engine{
		lib:        lib,
		matcher:    matcher,
		scorer:     scorer,
		resolver:   resolve.NewResolver(matcher, scorer, opts.SimilarityThreshold),
		associator: associate.NewResolver(relation.NewClassifier(lib), opts.AssociationGate),
		discoverer: discover.NewDiscoverer(lib, matcher, scorer),
		reporter:   validate.NewReporter(),
		store:      opts.Store,
	}
}

// Close releases the underlying store, when one is configured.
func (e *Engine) Close() error {
	if e.store == nil {
		return nil
	}
	return e.store.Close()
}

// ResolveTerms finds the best definition for each requested term across the
// corpus. Output keys are ordinal in request order.
func (e *Engine) ResolveTerms(terms []string, docs []corpus.Document) []resolve.Record {
	return e.resolver.Resolve(terms, docs)
}

// ResolveAssociations classifies every unordered term pair and keeps the
// accepted ones. Output keys are ordinal in discovery order.
func (e *Engine) ResolveAssociations(terms []string, docs []corpus.Document) []associate.Record {
	return e.associator.Resolve(terms, docs)
}

// DiscoverTerms runs open-ended definition extraction over the corpus.
func (e *Engine) DiscoverTerms(docs []corpus.Document) []discover.Term {
	return e.discoverer.Discover(docs)
}

// LoadCorpus reads the full corpus snapshot from the configured store.
func (e *Engine) LoadCorpus(ctx context.Context) ([]corpus.Document, error) {
	if e.store == nil {
		return nil, fmt.Errorf("load corpus: %w", internalerr.ErrStoreUnavailable)
	}

	stored, err := e.store.ListDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}

	docs := make([]corpus.Document, 0, len(stored))
	for _, sd := range stored {
		doc := corpus.Document{Name: sd.Name}
		for _, p := range sd.Pages {
			doc.Pages = append(doc.Pages, corpus.Page{Number: p.Number, Text: p.Text})
		}
		docs = append(docs, doc)
	}
	if err := corpus.ValidateAll(docs); err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}
	return docs, nil
}

// Results bundles both task outputs with their validation report.
type Results struct {
	Task1      map[string]report.TermEntry
	Task2      map[string]report.AssociationEntry
	Violations []string
	Report     validate.Report
}

// Run executes the full pipeline: resolve both tasks, validate the output
// maps, and build the validation report over the validated results.
func (e *Engine) Run(terms []string, docs []corpus.Document) Results {
	task1 := report.Task1(e.ResolveTerms(terms, docs))
	task2 := report.Task2(e.ResolveAssociations(terms, docs))

	validTask1, v1 := validate.ValidateTask1(task1)
	validTask2, v2 := validate.ValidateTask2(task2)

	res := Results{
		Task1: validTask1,
		Task2: validTask2,
	}
	res.Violations = append(res.Violations, v1...)
	res.Violations = append(res.Violations, v2...)
	res.Report = e.reporter.Build(validTask1, validTask2)
	return res
}
