// Package relation classifies the semantic relationship between two terms
// from a shared context window.
package relation

import (
	"fmt"
	"strings"

	"github.com/syyyclover/ocean-terminology/pkg/terminology/patterns"
)

// Relation is the classified relationship label.
type Relation string

// The two reportable relationship classes plus the unreportable fallback.
const (
	Hierarchical Relation = "主从关系"
	Causal       Relation = "因果关系"
	Unknown      Relation = "未知关系"
)

// DecisionFloor is the minimum winning score for a labeled claim. The floor
// is inclusive: causation keyword (0.4) plus a surface-pattern match (0.1)
// reaches exactly 0.5 and is a reportable causal signal, while no single
// keyword group can reach the floor alone.
const DecisionFloor = 0.5

// Result is one classification outcome. Description is empty for Unknown.
type Result struct {
	Relation    Relation
	Confidence  float64
	Description string
}

// Classifier scores hierarchical and causal evidence independently over the
// same context and lets the strictly higher score win, subject to the floor.
type Classifier struct {
	lib *patterns.Library
}

// NewClassifier creates a classifier over the given rule tables.
func NewClassifier(lib *patterns.Library) *Classifier {
	return &Classifier{lib: lib}
}

// Classify decides the relationship between termA and termB in context.
// Ties, including zero/zero, resolve to Unknown with the max sub-score as
// confidence and no description.
func (c *Classifier) Classify(termA, termB, context string) Result {
	if termA == "" || termB == "" || context == "" {
		return Result{Relation: Unknown}
	}

	hierScore, hierDesc := c.scoreGroups(c.lib.Hierarchical, termA, termB, context)
	if c.surfaceMatch(termA, termB, context) {
		hierScore += c.lib.HierSurfaceBonus
	}
	hierScore = capScore(hierScore)

	causalScore, causalDesc := c.scoreGroups(c.lib.Causal, termA, termB, context)
	if c.surfaceMatch(termA, termB, context) {
		causalScore += c.lib.CausalSurfaceBonus
	}
	causalScore = capScore(causalScore)

	switch {
	case hierScore > causalScore && hierScore >= DecisionFloor:
		return Result{Relation: Hierarchical, Confidence: hierScore, Description: hierDesc}
	case causalScore > hierScore && causalScore >= DecisionFloor:
		return Result{Relation: Causal, Confidence: causalScore, Description: causalDesc}
	default:
		return Result{Relation: Unknown, Confidence: maxFloat(hierScore, causalScore)}
	}
}

// scoreGroups sums the weights of keyword groups present in context. The
// last matching group's description template wins, as each check narrows
// the claimed relation.
func (c *Classifier) scoreGroups(groups []patterns.KeywordGroup, termA, termB, context string) (float64, string) {
	score := 0.0
	desc := ""
	for _, g := range groups {
		if !anyKeyword(g.Keywords, context) {
			continue
		}
		score += g.Weight
		if g.Swap {
			desc = fmt.Sprintf(g.Format, termB, termA)
		} else {
			desc = fmt.Sprintf(g.Format, termA, termB)
		}
	}
	return score, desc
}

// surfaceMatch reports whether any surface pattern captures both terms in
// its two groups, in either order.
func (c *Classifier) surfaceMatch(termA, termB, context string) bool {
	for _, p := range c.lib.Surface {
		for _, sub := range p.Re.FindAllStringSubmatch(context, -1) {
			g1, g2 := sub[1], sub[2]
			if strings.Contains(g1, termA) && strings.Contains(g2, termB) {
				return true
			}
			if strings.Contains(g1, termB) && strings.Contains(g2, termA) {
				return true
			}
		}
	}
	return false
}

func anyKeyword(keywords []string, context string) bool {
	for _, kw := range keywords {
		if strings.Contains(context, kw) {
			return true
		}
	}
	return false
}

func capScore(s float64) float64 {
	if s > 1.0 {
		return 1.0
	}
	return s
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
