package extract

import "github.com/PuerkitoBio/goquery"

// Strategy inspects a question container and returns a value, or "" when it
// found nothing usable.
type Strategy func(container *goquery.Selection) string

// Chain is an ordered list of strategies. Resolve returns the first
// non-empty result and does not evaluate the remaining strategies.
type Chain []Strategy

func (c Chain) Resolve(container *goquery.Selection) string {
	for _, s := range c {
		if v := s(container); v != "" {
			return v
		}
	}
	return ""
}
