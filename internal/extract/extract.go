package extract

import (
	"bytes"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

var utf8BOM = []byte("\xef\xbb\xbf")

// Parse decodes a page snapshot into a queryable document. Without a content
// type, input that is valid UTF-8 is taken as UTF-8: the charset sniffer only
// looks at the first 1024 bytes and guesses windows-1252 for an ASCII-only
// prefix, which garbles saved fragments with a long script head. Other input
// goes through the sniffer (BOM, <meta>, byte statistics), so GBK pages saved
// from the browser work. Malformed input never fails: the result is an empty
// document.
func Parse(input []byte, contentType string) *goquery.Document {
	var r io.Reader
	if contentType == "" && utf8.Valid(input) {
		r = bytes.NewReader(bytes.TrimPrefix(input, utf8BOM))
	} else if cr, err := charset.NewReader(bytes.NewReader(input), contentType); err == nil {
		r = cr
	} else {
		r = bytes.NewReader(input)
	}
	node, err := html.Parse(r)
	if err != nil || node == nil {
		node = &html.Node{Type: html.DocumentNode}
	}
	return goquery.NewDocumentFromNode(node)
}

// Clean collapses every run of whitespace into a single space and trims the
// ends.
func Clean(s string) string {
	return strings.TrimSpace(collapseSpaces(s))
}

func collapseSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) || r == '\ufeff' {
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
			continue
		}
		b.WriteRune(r)
		lastSpace = false
	}
	return b.String()
}

// textOf returns the cleaned text content of the first element matching
// selector inside sel, or "" when nothing matches.
func textOf(sel *goquery.Selection, selector string) string {
	node := sel.Find(selector).First()
	if node.Length() == 0 {
		return ""
	}
	return Clean(node.Text())
}
