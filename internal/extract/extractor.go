package extract

// Extractor turns arbitrary input text into the extracted Devanagari text.
// Implementations must be pure: same input, same output, no side effects.
type Extractor interface {
	Extract(input string) string
}

// DevanagariExtractor is the Extractor backed by Extract.
type DevanagariExtractor struct{}

func (DevanagariExtractor) Extract(input string) string {
	return Extract(input)
}
