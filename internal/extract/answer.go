package extract

import (
	"regexp"
	"strings"

	"golang.org/x/text/width"
)

// Markers used by true/false items. True maps to option A, false to B.
const (
	TrueMarker  = "对"
	FalseMarker = "错"
)

var (
	answerLetterRe = regexp.MustCompile(`[A-Da-d]`)
	hiddenGateRe   = regexp.MustCompile(`[A-D]|` + TrueMarker + `|` + FalseMarker)
	separatorRe    = regexp.MustCompile(`[:；;、，\s]+`)
)

// NormalizeAnswer maps a loosely formatted answer string onto a canonical
// letter set. Every A-D letter (any case, full-width included) is kept in
// order of appearance without deduplication. Without letters the true/false
// markers map to "A"/"B". Anything else is returned trimmed, unchanged.
func NormalizeAnswer(raw string) string {
	if raw == "" {
		return ""
	}
	letters := answerLetterRe.FindAllString(width.Narrow.String(raw), -1)
	if len(letters) > 0 {
		return strings.ToUpper(strings.Join(letters, ""))
	}
	if strings.Contains(raw, TrueMarker) {
		return "A"
	}
	if strings.Contains(raw, FalseMarker) {
		return "B"
	}
	return strings.TrimSpace(raw)
}

// hintAnswer reads a single-letter answer from the text of a hidden hint
// element. Full-width letters are folded as in NormalizeAnswer. Only text
// holding an uppercase A-D or a true/false marker counts; the first letter
// of any case then wins over the markers.
func hintAnswer(text string) string {
	t := separatorRe.ReplaceAllString(Clean(width.Narrow.String(text)), " ")
	if !hiddenGateRe.MatchString(t) {
		return ""
	}
	if m := answerLetterRe.FindString(t); m != "" {
		return strings.ToUpper(m)
	}
	if strings.Contains(t, TrueMarker) {
		return "A"
	}
	if strings.Contains(t, FalseMarker) {
		return "B"
	}
	return ""
}
