// Package notes shapes raw model replies into safe HTML note fragments.
package notes

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

var policy = newPolicy()

func newPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements(
		"h1", "h2", "h3", "h4", "h5", "h6",
		"p", "br", "ul", "ol", "li",
		"strong", "em", "b", "i", "u",
	)
	// no AllowAttrs: every attribute on every kept tag is dropped
	return p
}

// Sanitize strips disallowed tags and all attributes from a fragment. The
// pass runs twice so the output provably contains nothing the policy would
// still touch; Sanitize(Sanitize(x)) == Sanitize(x).
func Sanitize(fragment string) string {
	out := policy.Sanitize(fragment)
	return strings.TrimSpace(policy.Sanitize(out))
}

// ExtractBody returns the inner content of the document's <body>, or the
// input unchanged when it does not parse as a document. Models sometimes wrap
// the requested fragment in a complete <html> page.
func ExtractBody(raw string) string {
	doc, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		return raw
	}
	body := findElement(doc, "body")
	if body == nil {
		return raw
	}

	var b strings.Builder
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&b, c); err != nil {
			return raw
		}
	}
	return b.String()
}

// Text flattens an HTML fragment to space-separated plain text.
func Text(fragment string) string {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}
	var b strings.Builder
	collectText(doc, &b)
	return strings.Join(strings.Fields(b.String()), " ")
}

func findElement(n *html.Node, name string) *html.Node {
	if n.Type == html.ElementNode && n.Data == name {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, name); found != nil {
			return found
		}
	}
	return nil
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		b.WriteByte(' ')
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}
