package associate

import "strings"

// Sentence window radius: two sentences before and after the sentence that
// mentions both terms.
const windowRadius = 2

// MaxContextExcerpt is the stored context length cap, in runes.
const MaxContextExcerpt = 500

func isTerminal(r rune) bool {
	return r == '。' || r == '！' || r == '？'
}

// splitSentences splits page text on the three terminal punctuation marks.
// The marks themselves are dropped, matching how windows are re-joined.
func splitSentences(text string) []string {
	return strings.FieldsFunc(text, isTerminal)
}

// ContextWindows extracts every sentence window that contains both terms in
// one sentence, with up to two sentences of context on each side.
func ContextWindows(text, termA, termB string) []string {
	sentences := splitSentences(text)

	var windows []string
	for i, s := range sentences {
		if !strings.Contains(s, termA) || !strings.Contains(s, termB) {
			continue
		}
		start := i - windowRadius
		if start < 0 {
			start = 0
		}
		end := i + windowRadius + 1
		if end > len(sentences) {
			end = len(sentences)
		}
		window := strings.TrimSpace(strings.Join(sentences[start:end], ""))
		if window != "" {
			windows = append(windows, window)
		}
	}
	return windows
}

// Excerpt truncates a context to the storage cap.
func Excerpt(context string) string {
	runes := []rune(context)
	if len(runes) <= MaxContextExcerpt {
		return context
	}
	return string(runes[:MaxContextExcerpt])
}
