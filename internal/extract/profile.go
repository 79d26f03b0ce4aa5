package extract

import "github.com/PuerkitoBio/goquery"

// Profile names the selectors of one quiz markup variant.
type Profile struct {
	// Container matches one question item in the page.
	Container string
	// Stems lists the stem selectors; the first that exists wins.
	Stems []string
	// Option matches the option items of a container, in order.
	Option string
	// Direct lists the correct-answer locations, highest priority first.
	Direct []string
	// Hidden matches the visually hidden hint elements scanned when no
	// direct signal exists.
	Hidden string
}

// DefaultProfile returns the selectors of the Chaoxing (学习通) review page.
func DefaultProfile() Profile {
	return Profile{
		Container: ".questionLi",
		Stems:     []string{".qtContent", ".mark_name"},
		Option:    ".mark_letter li",
		Direct: []string{
			".rightAnswerContent",
			".rightAnswer",
			".right-answer",
			".element-invisible-hidden.colorGreen",
			".mark_key .colorGreen .rightAnswerContent",
		},
		Hidden: ".element-invisible-hidden, .element-invisible-hidden.colorGreen",
	}
}

// Merge returns p with every non-empty field of override applied.
func (p Profile) Merge(override Profile) Profile {
	if override.Container != "" {
		p.Container = override.Container
	}
	if len(override.Stems) > 0 {
		p.Stems = append([]string(nil), override.Stems...)
	}
	if override.Option != "" {
		p.Option = override.Option
	}
	if len(override.Direct) > 0 {
		p.Direct = append([]string(nil), override.Direct...)
	}
	if override.Hidden != "" {
		p.Hidden = override.Hidden
	}
	return p
}

// ParseOptions parses the option items of a container with DefaultProfile.
func ParseOptions(container *goquery.Selection) []Option {
	return DefaultProfile().Options(container)
}

// ResolveAnswer resolves the correct answer of a container with
// DefaultProfile.
func ResolveAnswer(container *goquery.Selection) string {
	return DefaultProfile().Answer(container)
}

// ParseQuestion builds the record of one container with DefaultProfile.
func ParseQuestion(container *goquery.Selection) Question {
	return DefaultProfile().Question(container)
}

// CollectAll collects every visible question of doc with DefaultProfile.
func CollectAll(doc *goquery.Document) []Question {
	return DefaultProfile().Collect(doc)
}
