package patterns

import (
	"regexp"
	"strings"
)

// DefinitionPattern describes one way the corpus phrases a term definition.
// Link is the literal linking phrase ("是指", "定义为", ...); it is empty for
// the colon style. Scan is the unanchored corpus-scan form that captures an
// arbitrary preceding token as the term.
type DefinitionPattern struct {
	Name string
	Link string
	Scan *regexp.Regexp
}

// SurfacePattern is a sentence-level relationship pattern with two term
// capture groups, e.g. "A导致B" or "A属于B".
type SurfacePattern struct {
	Name string
	Re   *regexp.Regexp
}

// KeywordGroup is one weighted vocabulary group for relationship scoring.
// Format is the description template; Swap reverses the term order when
// filling it in ("B属于A" style).
type KeywordGroup struct {
	Name     string
	Weight   float64
	Keywords []string
	Format   string
	Swap     bool
}

// Library holds the static rule tables for definition matching and
// relationship classification. It is pure data: construct once, pass by
// reference into the matchers and classifiers.
type Library struct {
	// Definition patterns in priority order: colon style first, the bare
	// "为" style last. A term is anchored at pattern start; the captured
	// definition runs to the first terminal punctuation mark.
	Definition []DefinitionPattern

	// DefiningPhrases are the link phrases the confidence scorer looks
	// for in a matched span.
	DefiningPhrases []string

	// Hierarchical and Causal are the two disjoint relationship keyword
	// tables, each group carrying its additive weight.
	Hierarchical []KeywordGroup
	Causal       []KeywordGroup

	// Surface patterns shared by both relationship classes. The bonus a
	// surface match adds differs per class.
	Surface            []SurfacePattern
	HierSurfaceBonus   float64
	CausalSurfaceBonus float64

	// Domain patterns and keywords recognize ocean-related vocabulary
	// during open-ended term discovery.
	DomainPatterns []*regexp.Regexp
	DomainKeywords []string
}

// term tokens stop at Chinese clause punctuation and whitespace
const (
	termChar  = `[^，。！？：；\s]`
	termClass = termChar + `+`
)

// definitions run to the first of the three terminal marks, inclusive
const defClass = `[^。！？]+[。！？]`

// NewLibrary builds the default rule tables for the ocean disaster
// prevention corpus.
func NewLibrary() *Library {
	return &Library{
		Definition: []DefinitionPattern{
			{Name: "colon", Link: "", Scan: regexp.MustCompile(`(?P<term>` + termClass + `)\s*[：:]\s*(?P<definition>` + defClass + `)`)},
			{Name: "shizhi", Link: "是指", Scan: regexp.MustCompile(`(?P<term>` + termClass + `)\s*是指\s*(?P<definition>` + defClass + `)`)},
			{Name: "dingyiwei", Link: "定义为", Scan: regexp.MustCompile(`(?P<term>` + termClass + `)\s*定义为\s*(?P<definition>` + defClass + `)`)},
			{Name: "zhideshi", Link: "指的是", Scan: regexp.MustCompile(`(?P<term>` + termClass + `)\s*指的是\s*(?P<definition>` + defClass + `)`)},
			{Name: "ji", Link: "即", Scan: regexp.MustCompile(`(?P<term>` + termClass + `)\s*即\s*(?P<definition>` + defClass + `)`)},
			{Name: "biaoshi", Link: "表示", Scan: regexp.MustCompile(`(?P<term>` + termClass + `)\s*表示\s*(?P<definition>` + defClass + `)`)},
			{Name: "wei", Link: "为", Scan: regexp.MustCompile(`(?P<term>` + termClass + `)\s*为\s*(?P<definition>` + defClass + `)`)},
		},

		DefiningPhrases: []string{"是指", "定义为", "为", "即", "指的是", "表示"},

		Hierarchical: []KeywordGroup{
			{Name: "containment", Weight: 0.3, Keywords: []string{"包括", "包含", "涵盖", "组成", "构成", "形成"}, Format: "%s包含%s"},
			{Name: "classification", Weight: 0.3, Keywords: []string{"分为", "分类", "类别", "类型", "层次", "级别"}, Format: "%s分为%s"},
			{Name: "subordination", Weight: 0.2, Keywords: []string{"属于", "隶属于", "归入", "纳入", "子类", "亚类", "下级", "下位"}, Format: "%s属于%s", Swap: true},
		},

		Causal: []KeywordGroup{
			{Name: "causation", Weight: 0.4, Keywords: []string{"导致", "引起", "造成", "产生", "引发"}, Format: "%s导致%s"},
			{Name: "consequence", Weight: 0.3, Keywords: []string{"因为", "由于", "鉴于", "基于", "所以", "因此", "因而", "故而", "于是"}, Format: "因为%s所以%s"},
			{Name: "influence", Weight: 0.2, Keywords: []string{"影响", "作用", "效应", "效果"}, Format: "%s影响%s"},
		},

		Surface: []SurfacePattern{
			{Name: "causes", Re: regexp.MustCompile(`(?P<term1>` + termClass + `)\s*(?:导致|引起|造成)\s*(?P<term2>` + termClass + `)`)},
			{Name: "includes", Re: regexp.MustCompile(`(?P<term1>` + termClass + `)\s*(?:包括|包含)\s*(?P<term2>` + termClass + `)`)},
			{Name: "belongs", Re: regexp.MustCompile(`(?P<term1>` + termClass + `)\s*(?:属于|隶属于)\s*(?P<term2>` + termClass + `)`)},
			{Name: "divides", Re: regexp.MustCompile(`(?P<term1>` + termClass + `)\s*(?:分为|分类为)\s*(?P<term2>` + termClass + `)`)},
			{Name: "relation", Re: regexp.MustCompile(`(?P<term1>` + termClass + `)\s*(?:与|和)\s*(?P<term2>` + termClass + `)\s*(?:的)?关系`)},
		},
		HierSurfaceBonus:   0.2,
		CausalSurfaceBonus: 0.1,

		DomainPatterns: []*regexp.Regexp{
			regexp.MustCompile(`海洋` + termChar + `*`),
			regexp.MustCompile(termChar + `*灾害`),
			regexp.MustCompile(termChar + `*观测`),
			regexp.MustCompile(termChar + `*预警`),
			regexp.MustCompile(termChar + `*浮标`),
			regexp.MustCompile(termChar + `*雷达`),
			regexp.MustCompile(termChar + `*卫星`),
		},
		DomainKeywords: []string{
			"海洋", "海", "潮", "浪", "波", "流", "风", "气", "水", "冰",
			"灾害", "防灾", "减灾", "观测", "监测", "预警", "预报",
			"浮标", "潜标", "雷达", "卫星", "数据", "质量", "标准",
			"规范", "技术", "方法",
		},
	}
}

// IsDomainTerm reports whether a term belongs to the ocean disaster
// prevention vocabulary, by domain pattern or keyword containment.
func (l *Library) IsDomainTerm(term string) bool {
	if term == "" {
		return false
	}
	for _, re := range l.DomainPatterns {
		if re.MatchString(term) {
			return true
		}
	}
	for _, kw := range l.DomainKeywords {
		if strings.Contains(term, kw) {
			return true
		}
	}
	return false
}
