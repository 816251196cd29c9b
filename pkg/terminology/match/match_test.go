package match

import (
	"testing"

	"github.com/syyyclover/ocean-terminology/pkg/terminology/patterns"
)

func newMatcher() *Matcher {
	return NewMatcher(patterns.NewLibrary())
}

func TestMatchLinkPhrase(t *testing.T) {
	m := newMatcher()
	text := "海洋灾害是指由海洋自然环境异常或剧烈变化导致的灾害。"

	got, ok := m.Match(text, "海洋灾害")
	if !ok {
		t.Fatal("expected a match")
	}
	if got.Definition != "由海洋自然环境异常或剧烈变化导致的灾害。" {
		t.Errorf("definition = %q", got.Definition)
	}
	if got.Span != text {
		t.Errorf("span = %q", got.Span)
	}
	if got.Pattern != "shizhi" {
		t.Errorf("pattern = %q", got.Pattern)
	}
}

func TestMatchColonStyle(t *testing.T) {
	m := newMatcher()
	text := "术语与定义。风暴潮：由强烈大气扰动引起的海面异常升降现象。"

	got, ok := m.Match(text, "风暴潮")
	if !ok {
		t.Fatal("expected a match")
	}
	if got.Definition != "由强烈大气扰动引起的海面异常升降现象。" {
		t.Errorf("definition = %q", got.Definition)
	}
}

func TestMatchStopsAtFirstTerminal(t *testing.T) {
	m := newMatcher()
	text := "赤潮是指海洋中某些微小生物暴发性增殖引起水色异常的现象。该现象危害渔业。"

	got, ok := m.Match(text, "赤潮")
	if !ok {
		t.Fatal("expected a match")
	}
	if got.Definition != "海洋中某些微小生物暴发性增殖引起水色异常的现象。" {
		t.Errorf("definition should stop at the first terminal mark, got %q", got.Definition)
	}
}

func TestMatchRequiresAnchoredTerm(t *testing.T) {
	m := newMatcher()
	// The term is mentioned but never defined.
	text := "本标准适用于风暴潮的监测工作。"

	if _, ok := m.Match(text, "风暴潮"); ok {
		t.Error("a mere mention should not match")
	}
}

func TestMatchMinimumLengthGate(t *testing.T) {
	m := newMatcher()
	text := "海冰是指冻结的海水。"

	if _, ok := m.Match(text, "海冰"); ok {
		t.Error("a definition below 10 runes should be rejected")
	}
}

func TestMatchEmptyInputs(t *testing.T) {
	m := newMatcher()
	if _, ok := m.Match("", "风暴潮"); ok {
		t.Error("empty text should not match")
	}
	if _, ok := m.Match("风暴潮是指海面异常升降现象。", ""); ok {
		t.Error("empty term should not match")
	}
}

func TestExtractAll(t *testing.T) {
	m := newMatcher()
	text := "风暴潮是指由强烈大气扰动引起的海面异常升降现象。海啸定义为由海底地震或火山爆发引起的巨大波浪。"

	got := m.ExtractAll(text)
	terms := make(map[string]string)
	for _, c := range got {
		terms[c.Term] = c.Definition
	}

	if terms["风暴潮"] == "" {
		t.Error("风暴潮 not discovered")
	}
	if terms["海啸"] == "" {
		t.Error("海啸 not discovered")
	}
}

func TestExtractAllKeepsIndependentCandidates(t *testing.T) {
	m := newMatcher()
	// 定义为 sentences also match the bare 为 pattern; both candidates are kept.
	text := "警报等级定义为按危害程度划分的四个级别序列。"

	got := m.ExtractAll(text)
	if len(got) < 2 {
		t.Errorf("expected candidates from multiple patterns, got %d", len(got))
	}
}

func TestExtractAllLengthGates(t *testing.T) {
	m := newMatcher()
	text := "潮：水。"

	if got := m.ExtractAll(text); len(got) != 0 {
		t.Errorf("short term and definition should be filtered, got %+v", got)
	}
}
