package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Option is one answer choice. Letter is "A"-"D" when it could be
// determined and "" for an unlabeled option.
type Option struct {
	Letter string `json:"letter"`
	Text   string `json:"text"`
}

// Question is the structured record extracted from one container.
// Answer is a canonical letter set such as "B" or "ABD", or "" when the
// markup carries no usable correct-answer signal.
type Question struct {
	Stem    string   `json:"stem"`
	Options []Option `json:"options"`
	Answer  string   `json:"answer"`
}

var (
	optionRe  = regexp.MustCompile(`(?is)^([A-D])[.\s：:]?\s*(.*)$`)
	ordinalRe = regexp.MustCompile(`^\d+\.\s*`)
)

// ParseOption reads the letter and text of one option item. The letter
// prefix may be followed by a period, space or colon. A bare true/false
// marker becomes option A/B. Anything else is kept with an empty letter.
func ParseOption(raw string) Option {
	text := Clean(raw)
	if m := optionRe.FindStringSubmatch(text); m != nil {
		return Option{Letter: strings.ToUpper(m[1]), Text: Clean(m[2])}
	}
	switch text {
	case TrueMarker:
		return Option{Letter: "A", Text: TrueMarker}
	case FalseMarker:
		return Option{Letter: "B", Text: FalseMarker}
	}
	return Option{Text: text}
}

// Options returns one Option per option item of the container, in source
// order.
func (p Profile) Options(container *goquery.Selection) []Option {
	items := container.Find(p.Option)
	out := make([]Option, 0, items.Length())
	items.Each(func(_ int, item *goquery.Selection) {
		out = append(out, ParseOption(item.Text()))
	})
	return out
}

// Stem returns the question text with the page's own "12. " numbering
// removed. The first stem selector that matches an element is used even
// when that element is empty.
func (p Profile) Stem(container *goquery.Selection) string {
	for _, selector := range p.Stems {
		node := container.Find(selector).First()
		if node.Length() == 0 {
			continue
		}
		return ordinalRe.ReplaceAllString(Clean(node.Text()), "")
	}
	return ""
}

// Answer resolves the correct answer of a container. Direct signal
// locations are tried in priority order; the hidden hint scan runs only
// when none of them yields text.
func (p Profile) Answer(container *goquery.Selection) string {
	chain := make(Chain, 0, len(p.Direct)+1)
	for _, selector := range p.Direct {
		chain = append(chain, directSignal(selector))
	}
	chain = append(chain, hiddenScan(p.Hidden))
	return chain.Resolve(container)
}

func directSignal(selector string) Strategy {
	return func(container *goquery.Selection) string {
		return NormalizeAnswer(textOf(container, selector))
	}
}

// hiddenScan stops at the first hint element that carries a letter or a
// true/false marker. Elements are not checked for belonging to this
// question beyond being inside the container.
func hiddenScan(selector string) Strategy {
	return func(container *goquery.Selection) string {
		if selector == "" {
			return ""
		}
		var found string
		container.Find(selector).EachWithBreak(func(_ int, n *goquery.Selection) bool {
			found = hintAnswer(n.Text())
			return found == ""
		})
		return found
	}
}

// Question builds the full record for one container.
func (p Profile) Question(container *goquery.Selection) Question {
	return Question{
		Stem:    p.Stem(container),
		Options: p.Options(container),
		Answer:  p.Answer(container),
	}
}
