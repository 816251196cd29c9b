// Package match locates candidate term definitions in page text.
package match

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/syyyclover/ocean-terminology/pkg/terminology/patterns"
)

// Default candidate length gates, in runes.
const (
	DefaultMinDefinitionLen = 10
	DefaultMaxDefinitionLen = 500

	minTermLen = 2
	maxTermLen = 50
)

// Match is one candidate definition. Span is the full matched text (term,
// link phrase, and definition); the confidence scorer inspects it for
// defining phrases.
type Match struct {
	Term       string
	Definition string
	Span       string
	Pattern    string
}

// Matcher applies the definition pattern table to page text.
type Matcher struct {
	lib    *patterns.Library
	minLen int
	maxLen int
}

// NewMatcher creates a matcher over the given pattern library with the
// default length gates.
func NewMatcher(lib *patterns.Library) *Matcher {
	return &Matcher{lib: lib, minLen: DefaultMinDefinitionLen, maxLen: DefaultMaxDefinitionLen}
}

// SetLengthGates overrides the minimum and maximum definition length.
func (m *Matcher) SetLengthGates(min, max int) {
	if min > 0 {
		m.minLen = min
	}
	if max > 0 {
		m.maxLen = max
	}
}

// MinDefinitionLen returns the active minimum definition length in runes.
func (m *Matcher) MinDefinitionLen() int { return m.minLen }

// MaxDefinitionLen returns the active maximum definition length in runes.
func (m *Matcher) MaxDefinitionLen() int { return m.maxLen }

// Match returns the best candidate definition for a term on one page, or
// false if the term is not definable there. The term must literally precede
// the link phrase; sentences that merely mention the term do not match.
// Patterns are tried in the library's priority order and the first capture
// of at least the minimum length wins.
func (m *Matcher) Match(pageText, term string) (Match, bool) {
	if pageText == "" || term == "" {
		return Match{}, false
	}

	for _, p := range m.lib.Definition {
		re := anchored(term, p)
		loc := re.FindStringSubmatch(pageText)
		if loc == nil {
			continue
		}
		def := strings.TrimSpace(loc[1])
		if utf8.RuneCountInString(def) < m.minLen {
			continue
		}
		return Match{Term: term, Definition: def, Span: loc[0], Pattern: p.Name}, true
	}
	return Match{}, false
}

// ExtractAll runs the unanchored corpus-scan patterns over page text,
// capturing an arbitrary preceding token as the term. Every pattern is
// tried; all candidates within the length gates are kept.
func (m *Matcher) ExtractAll(pageText string) []Match {
	var out []Match
	for _, p := range m.lib.Definition {
		for _, sub := range p.Scan.FindAllStringSubmatch(pageText, -1) {
			term := strings.TrimSpace(sub[1])
			def := strings.TrimSpace(sub[2])

			termLen := utf8.RuneCountInString(term)
			defLen := utf8.RuneCountInString(def)
			if termLen < minTermLen || termLen > maxTermLen {
				continue
			}
			if defLen < m.minLen || defLen > m.maxLen {
				continue
			}
			out = append(out, Match{Term: term, Definition: def, Span: sub[0], Pattern: p.Name})
		}
	}
	return out
}

func anchored(term string, p patterns.DefinitionPattern) *regexp.Regexp {
	link := `[：:]`
	if p.Link != "" {
		link = p.Link
	}
	return regexp.MustCompile(regexp.QuoteMeta(term) + `\s*` + link + `\s*([^。！？]+[。！？])`)
}
