package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Collect parses every visible question container of doc, in document
// order. Hidden containers belong to inactive question sets and are
// skipped.
func (p Profile) Collect(doc *goquery.Document) []Question {
	out := make([]Question, 0)
	if doc == nil || p.Container == "" {
		return out
	}
	doc.Find(p.Container).Each(func(_ int, container *goquery.Selection) {
		if !Visible(container.Get(0)) {
			return
		}
		out = append(out, p.Question(container))
	})
	return out
}

// Visible approximates the browser's "has an offset parent" test on a static
// snapshot: the node is rendered unless it or an ancestor is display:none
// (inline style or the hidden attribute), sits in a non-rendered subtree, or
// the node itself is position:fixed. Stylesheet rules are not evaluated.
func Visible(n *html.Node) bool {
	if n == nil {
		return false
	}
	if n.Type == html.ElementNode && styleValue(n, "position") == "fixed" {
		return false
	}
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.Type != html.ElementNode {
			continue
		}
		switch strings.ToLower(cur.Data) {
		case "head", "template", "noscript", "script", "style":
			return false
		}
		if hasAttr(cur, "hidden") || styleValue(cur, "display") == "none" {
			return false
		}
	}
	return true
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return true
		}
	}
	return false
}

// styleValue returns the lowercased value of an inline style property with
// any !important suffix removed. The last declaration wins, as in CSS.
func styleValue(n *html.Node, property string) string {
	var value string
	for _, a := range n.Attr {
		if !strings.EqualFold(a.Key, "style") {
			continue
		}
		for _, decl := range strings.Split(a.Val, ";") {
			name, v, ok := strings.Cut(decl, ":")
			if !ok || !strings.EqualFold(strings.TrimSpace(name), property) {
				continue
			}
			v = strings.ToLower(strings.TrimSpace(v))
			v = strings.TrimSpace(strings.TrimSuffix(v, "!important"))
			value = v
		}
	}
	return value
}
