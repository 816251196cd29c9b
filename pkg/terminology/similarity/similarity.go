// Package similarity ranks corpus documents against a query using
// character-set Jaccard similarity.
package similarity

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/syyyclover/ocean-terminology/pkg/terminology/corpus"
)

// MaxAnswerExcerpt caps the answer excerpt length in runes.
const MaxAnswerExcerpt = 200

// DocScore pairs a document index with its similarity to the query.
type DocScore struct {
	Index int
	Score float64
}

// Jaccard computes character-set Jaccard similarity between two texts.
// Empty input yields 0.
func Jaccard(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	setA := runeSet(a)
	setB := runeSet(b)

	inter := 0
	for r := range setA {
		if _, ok := setB[r]; ok {
			inter++
		}
	}
	union := len(setA) + len(setB) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

// TopDocuments returns the k most similar texts to the query, highest score
// first. Ties keep the original document order.
func TopDocuments(query string, texts []string, k int) []DocScore {
	if query == "" || len(texts) == 0 || k <= 0 {
		return nil
	}

	scores := make([]DocScore, len(texts))
	for i, t := range texts {
		scores[i] = DocScore{Index: i, Score: Jaccard(query, t)}
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})

	if k > len(scores) {
		k = len(scores)
	}
	return scores[:k]
}

// Answer is an excerpt-based answer to a free-text question.
type Answer struct {
	Text       string
	Source     string
	Confidence float64
}

// FindAnswer locates the document most similar to the question and returns
// an excerpt of it as the answer. The second return is false when the
// question or corpus is empty.
func FindAnswer(question string, docs []corpus.Document) (Answer, bool) {
	if question == "" || len(docs) == 0 {
		return Answer{}, false
	}

	texts := make([]string, len(docs))
	for i, doc := range docs {
		var sb strings.Builder
		for _, page := range doc.Pages {
			sb.WriteString(page.Text)
		}
		texts[i] = sb.String()
	}

	top := TopDocuments(question, texts, 1)
	if len(top) == 0 {
		return Answer{}, false
	}

	best := top[0]
	return Answer{
		Text:       excerpt(texts[best.Index], MaxAnswerExcerpt),
		Source:     corpus.NormalizeDocName(docs[best.Index].Name),
		Confidence: best.Score,
	}, true
}

func excerpt(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}

func runeSet(s string) map[rune]struct{} {
	set := make(map[rune]struct{}, utf8.RuneCountInString(s))
	for _, r := range s {
		set[r] = struct{}{}
	}
	return set
}
