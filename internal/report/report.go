// Package report renders extracted questions. Build produces the canonical
// plain-text report; the other writers render the same records for
// spreadsheets, PDF readers and programs.
package report

import (
	"strconv"
	"strings"

	"github.com/hyperifyio/quizexport/internal/extract"
)

// UnknownAnswer is printed when a question has no determinable answer.
const UnknownAnswer = "未知"

const answerPrefix = "答案："

// Build renders questions as numbered blocks: the stem line, one line per
// option, the answer line and a blank separator line. Numbering starts at 1
// and is contiguous regardless of the page's own numbering.
func Build(questions []extract.Question) string {
	lines := make([]string, 0, len(questions)*7)
	for i, q := range questions {
		lines = append(lines, strconv.Itoa(i+1)+". "+q.Stem)
		for _, o := range q.Options {
			lines = append(lines, OptionLine(o))
		}
		lines = append(lines, answerPrefix+AnswerText(q.Answer), "")
	}
	return strings.Join(lines, "\n")
}

// OptionLine renders "B. text" for a lettered option and "- text" otherwise.
func OptionLine(o extract.Option) string {
	if o.Letter != "" {
		return o.Letter + ". " + o.Text
	}
	return "- " + o.Text
}

// AnswerText returns answer, or UnknownAnswer when it is empty.
func AnswerText(answer string) string {
	if answer == "" {
		return UnknownAnswer
	}
	return answer
}
