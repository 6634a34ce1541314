package extract

import (
	"regexp"
	"strings"
	"unicode"
)

// Devanagari covers the Devanagari block (U+0900–U+097F) and the Devanagari
// Extended block (U+A8E0–U+A8FF).
var Devanagari = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0900, Hi: 0x097F, Stride: 1},
		{Lo: 0xA8E0, Hi: 0xA8FF, Stride: 1},
	},
}

// whitespaceClass is the whitespace set used for matching, collapsing and
// trimming: ASCII controls \t \n \v \f \r, every Unicode Z codepoint and the
// byte order mark. Go's \s is ASCII-only, so the class is spelled out.
const whitespaceClass = `\t\n\v\f\r\p{Z}\x{FEFF}`

var (
	qualifyingRun = regexp.MustCompile(`[\x{0900}-\x{097F}\x{A8E0}-\x{A8FF}` + whitespaceClass + `]+`)
	whitespaceRun = regexp.MustCompile(`[` + whitespaceClass + `]+`)
)

// IsDevanagari reports whether r falls in either Devanagari block.
func IsDevanagari(r rune) bool {
	return unicode.Is(Devanagari, r)
}

// IsSpace reports whether r is whitespace for extraction purposes. It differs
// from unicode.IsSpace in excluding U+0085 and including U+FEFF.
func IsSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', 0xFEFF:
		return true
	}
	return unicode.In(r, unicode.Z)
}

// IsQualifying reports whether r may appear inside an extracted run.
func IsQualifying(r rune) bool {
	return IsDevanagari(r) || IsSpace(r)
}

// Extract returns the Devanagari text found in input. Every maximal run of
// Devanagari and whitespace codepoints is kept, runs are joined with a single
// space, whitespace runs collapse to one ASCII space and the result is
// trimmed. Input without Devanagari yields "".
func Extract(input string) string {
	matches := qualifyingRun.FindAllString(input, -1)
	if len(matches) == 0 {
		return ""
	}
	joined := strings.Join(matches, " ")
	collapsed := whitespaceRun.ReplaceAllLiteralString(joined, " ")
	return strings.TrimFunc(collapsed, IsSpace)
}
