// Package htmltext extracts visible text from HTML standards pages.
package htmltext

import (
	"strings"

	"golang.org/x/net/html"
)

// Extract returns the visible text of an HTML document, skipping script and
// style elements. Unparseable input falls back to the raw string.
func Extract(s string) string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return s
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.TrimSpace(buf.String())
}
