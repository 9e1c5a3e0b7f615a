// Package segment splits one word into its decomposable syllables and the
// characters that have to survive the pipeline untouched.
package segment

import "hanbal/internal/hangul"

// Literal is one rune of the original word that cannot be decomposed:
// punctuation, digits, Latin, or an isolated jamo letter. Index is the rune
// position inside the word it came from.
type Literal struct {
	Index int
	Text  string
}

// Segment scans word rune by rune. Precomposed syllables are decomposed in
// order; everything else is recorded as a Literal at its original position.
func Segment(word string) ([]hangul.Syllable, []Literal) {
	runes := []rune(word)
	syllables := make([]hangul.Syllable, 0, len(runes))
	literals := make([]Literal, 0)
	for i, r := range runes {
		if s, ok := hangul.Decompose(r); ok {
			syllables = append(syllables, s)
			continue
		}
		literals = append(literals, Literal{Index: i, Text: string(r)})
	}
	return syllables, literals
}

// Assemble recomposes the syllable sequence and splices every Literal back
// at its recorded rune index.
func Assemble(syllables []hangul.Syllable, literals []Literal) string {
	out := make([]rune, 0, len(syllables)+len(literals))
	for _, s := range syllables {
		if r, ok := s.Rune(); ok {
			out = append(out, r)
		}
	}
	for _, lit := range literals {
		if lit.Index >= len(out) {
			out = append(out, []rune(lit.Text)...)
			continue
		}
		rest := append([]rune(nil), out[lit.Index:]...)
		out = append(out[:lit.Index], []rune(lit.Text)...)
		out = append(out, rest...)
	}
	return string(out)
}
