package patterns

import (
	"fmt"
	"regexp"
	"strconv"
)

// Page references appear in several spellings ("第5页", "page 15",
// "p. 20-21"); all of them normalize to the canonical 第N页 / 第N-M页 form.
var pageRefPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:第)?(\d+)(?:[-~](\d+))?(?:页)?`),
	regexp.MustCompile(`(?i)page\s*(\d+)(?:[-~](\d+))?`),
	regexp.MustCompile(`(?i)p\.?\s*(\d+)(?:[-~](\d+))?`),
}

var canonicalPageLabel = regexp.MustCompile(`^第[1-9]\d*(?:-[1-9]\d*)?页$`)

// PageLabel formats a single page number in the canonical form.
func PageLabel(n int) string {
	return fmt.Sprintf("第%d页", n)
}

// PageRangeLabel formats a page range in the canonical form.
func PageRangeLabel(n, m int) string {
	return fmt.Sprintf("第%d-%d页", n, m)
}

// NormalizePageLabel converts any recognized page reference spelling to the
// canonical form. Unrecognized input is returned unchanged, so the function
// is total and idempotent on its own output.
func NormalizePageLabel(ref string) string {
	if ref == "" {
		return ""
	}
	for _, re := range pageRefPatterns {
		m := re.FindStringSubmatch(ref)
		if m == nil {
			continue
		}
		start, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if m[2] != "" {
			end, err := strconv.Atoi(m[2])
			if err != nil {
				continue
			}
			return PageRangeLabel(start, end)
		}
		return PageLabel(start)
	}
	return ref
}

// IsCanonicalPageLabel reports whether a label is already in the canonical
// 第N页 / 第N-M页 form with no leading zeros.
func IsCanonicalPageLabel(label string) bool {
	return canonicalPageLabel.MatchString(label)
}
