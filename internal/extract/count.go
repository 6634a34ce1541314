package extract

import "github.com/rivo/uniseg"

// CharCount returns the number of non-whitespace codepoints in s.
func CharCount(s string) int {
	n := 0
	for _, r := range s {
		if !IsSpace(r) {
			n++
		}
	}
	return n
}

// GraphemeCount returns the number of user-perceived characters in s,
// whitespace clusters excluded. A consonant with its vowel signs counts once.
func GraphemeCount(s string) int {
	n := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		if runes := gr.Runes(); len(runes) > 0 && !IsSpace(runes[0]) {
			n++
		}
	}
	return n
}
