package config

import (
	"fmt"

	"github.com/syyyclover/ocean-terminology/pkg/terminology/associate"
	"github.com/syyyclover/ocean-terminology/pkg/terminology/match"
	"github.com/syyyclover/ocean-terminology/pkg/terminology/patterns"
	"github.com/syyyclover/ocean-terminology/pkg/terminology/relation"
	"github.com/syyyclover/ocean-terminology/pkg/terminology/resolve"
	"github.com/syyyclover/ocean-terminology/pkg/terminology/score"
	"github.com/syyyclover/ocean-terminology/pkg/terminology/tokenize"
)

// Loader loads the configuration files and constructs wired components.
type Loader struct {
	ConfigPath   string
	StoplistPath string
}

// Components holds the initialized pipeline components.
type Components struct {
	Config     Config
	Library    *patterns.Library
	Matcher    *match.Matcher
	Scorer     *score.Scorer
	Resolver   *resolve.Resolver
	Classifier *relation.Classifier
	Associator *associate.Resolver
	Stopwords  *tokenize.Stopwords
}

// Load reads the configuration and returns fully wired components. Missing
// paths fall back to the built-in defaults.
func (l *Loader) Load() (*Components, error) {
	cfg := Default()
	if l.ConfigPath != "" {
		loaded, err := Load(l.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	comp := &Components{
		Config:  cfg,
		Library: patterns.NewLibrary(),
	}

	comp.Matcher = match.NewMatcher(comp.Library)
	comp.Matcher.SetLengthGates(cfg.TermExtraction.MinDefinitionLen, cfg.TermExtraction.MaxDefinitionLen)
	comp.Scorer = score.NewScorer(comp.Library,
		cfg.TermExtraction.MinDefinitionLen, cfg.TermExtraction.MaxDefinitionLen)
	comp.Resolver = resolve.NewResolver(comp.Matcher, comp.Scorer, cfg.TermExtraction.SimilarityThreshold)
	comp.Classifier = relation.NewClassifier(comp.Library)
	comp.Associator = associate.NewResolver(comp.Classifier, cfg.Association.MinConfidence)

	stoplistPath := l.StoplistPath
	if stoplistPath == "" {
		stoplistPath = cfg.StoplistPath
	}
	if stoplistPath != "" {
		sl, err := LoadStoplist(stoplistPath)
		if err != nil {
			return nil, fmt.Errorf("load stoplist: %w", err)
		}
		comp.Stopwords = tokenize.NewStopwords(sl.Terms)
	} else {
		comp.Stopwords = tokenize.DefaultStopwords()
	}

	return comp, nil
}
