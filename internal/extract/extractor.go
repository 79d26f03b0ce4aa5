package extract

// Extractor turns a page snapshot into question records.
// Implementations must be deterministic and free of side effects so that
// repeated runs over the same snapshot produce identical reports.
type Extractor interface {
	Extract(input []byte, contentType string) []Question
}

// ProfileExtractor collects questions using the selectors of a Profile.
type ProfileExtractor struct {
	Profile Profile
}

func (e ProfileExtractor) Extract(input []byte, contentType string) []Question {
	return e.Profile.Collect(Parse(input, contentType))
}
