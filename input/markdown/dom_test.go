package markdown

import (
	"strings"
	"testing"

	"github.com/andybalholm/cascadia"
	nethtml "golang.org/x/net/html"
)

// dom parses rendered markup as an HTML fragment within <body>.
func dom(t *testing.T, markup string) *nethtml.Node {
	t.Helper()
	doc, err := nethtml.Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("rendered markup does not parse: %v", err)
	}
	return doc
}

// query returns all nodes of markup matching a CSS selector.
func query(t *testing.T, markup string, selector string) []*nethtml.Node {
	t.Helper()
	return cascadia.MustCompile(selector).MatchAll(dom(t, markup))
}

// text concatenates the text content of a node.
func text(n *nethtml.Node) string {
	if n == nil {
		return ""
	}
	if n.Type == nethtml.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(text(c))
	}
	return b.String()
}

func attr(n *nethtml.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
