package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/hyperifyio/quizexport/internal/extract"
)

// WriteJSON writes questions as an indented JSON array. Unknown answers stay
// empty strings so consumers can tell them apart from real answers.
func WriteJSON(w io.Writer, questions []extract.Question) error {
	if questions == nil {
		questions = []extract.Question{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(questions); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
