// Package tokenize provides the minimal Chinese token helpers the engine
// needs: han-run extraction, stopword filtering, and frequency-ranked key
// terms. No true word segmentation is attempted.
package tokenize

import (
	"regexp"
	"unicode/utf8"
)

var hanRun = regexp.MustCompile(`\p{Han}{2,}`)

// Tokens extracts runs of two or more han characters from text.
func Tokens(text string) []string {
	return hanRun.FindAllString(text, -1)
}

// Stopwords is a fixed stopword set.
type Stopwords struct {
	set map[string]struct{}
}

// NewStopwords builds a stopword set from a word list.
func NewStopwords(words []string) *Stopwords {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		if w != "" {
			set[w] = struct{}{}
		}
	}
	return &Stopwords{set: set}
}

// DefaultStopwords returns the built-in Chinese function-word list.
func DefaultStopwords() *Stopwords {
	return NewStopwords([]string{
		"的", "了", "在", "是", "我", "有", "和", "就", "不", "人", "都",
		"一", "一个", "上", "也", "很", "到", "说", "要", "去", "你", "会",
		"着", "没有", "看", "好", "自己", "这", "那", "他", "她", "它",
		"我们", "你们", "他们", "这个", "那个", "这些", "那些", "什么",
		"怎么", "为什么", "因为", "所以", "但是", "然后", "如果", "可以",
		"应该", "可能", "已经", "还是", "或者", "而且", "虽然", "尽管",
		"为了", "关于", "对于", "通过", "根据", "按照", "由于", "因此",
	})
}

// IsStop reports whether a word is in the set.
func (s *Stopwords) IsStop(word string) bool {
	_, ok := s.set[word]
	return ok
}

// KeyTerms returns up to max frequency-ranked terms from text, skipping
// stopwords, single characters, and terms seen only once. Equal-frequency
// terms keep their first-occurrence order so the ranking is deterministic.
func KeyTerms(text string, max int, stops *Stopwords) []string {
	if text == "" || max <= 0 {
		return nil
	}
	if stops == nil {
		stops = DefaultStopwords()
	}

	freq := make(map[string]int)
	var order []string
	for _, tok := range Tokens(text) {
		if freq[tok] == 0 {
			order = append(order, tok)
		}
		freq[tok]++
	}

	var ranked []string
	for _, tok := range order {
		if utf8.RuneCountInString(tok) <= 1 {
			continue
		}
		if stops.IsStop(tok) {
			continue
		}
		if freq[tok] <= 1 {
			continue
		}
		ranked = append(ranked, tok)
	}

	// Stable by construction: sort by count descending, first-seen order
	// breaking ties.
	for i := 1; i < len(ranked); i++ {
		for j := i; j > 0 && freq[ranked[j]] > freq[ranked[j-1]]; j-- {
			ranked[j], ranked[j-1] = ranked[j-1], ranked[j]
		}
	}

	if len(ranked) > max {
		ranked = ranked[:max]
	}
	return ranked
}
