// Package romanize maps pronounced Korean text to Latin letters under the
// Revised Romanization convention.
package romanize

import (
	"fmt"
	"strings"

	"hanbal/internal/hangul"
)

// Text transliterates an already-pronounced string. Full syllables go
// through the letter tables; an onset ㄹ reads l instead of r when the
// preceding character is a syllable ending in ㄹ, so a doubled liquid
// comes out ll. Isolated vowels use the vowel table, isolated consonants
// the onset sounds of their constituent letters, and anything else passes
// through unchanged.
func Text(text string) (string, error) {
	var b strings.Builder
	afterLiquid := false
	for _, r := range text {
		if s, ok := hangul.Decompose(r); ok {
			writeSyllable(&b, s, afterLiquid)
			afterLiquid = s.Tail == 'ㄹ'
			continue
		}
		afterLiquid = false
		switch {
		case hangul.IsVowelLetter(r):
			b.WriteString(vowelRoman[r])
		case hangul.IsConsonantLetter(r):
			if err := writeConsonantLetter(&b, r); err != nil {
				return "", err
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String(), nil
}

func writeSyllable(b *strings.Builder, s hangul.Syllable, afterLiquid bool) {
	if s.Lead == 'ㄹ' && afterLiquid {
		b.WriteString("l")
	} else {
		b.WriteString(onsetRoman[s.Lead])
	}
	b.WriteString(vowelRoman[s.Vowel])
	if s.HasTail() {
		b.WriteString(tailRoman[s.Tail])
	}
}

// writeConsonantLetter romanizes an isolated consonant as the onset sounds
// of its constituent letters; ㄳ reads gs. A constituent that cannot begin
// a syllable means the split tables are wrong, which is the one fatal
// condition in the library.
func writeConsonantLetter(b *strings.Builder, r rune) error {
	parts := []rune{r}
	if first, second, ok := hangul.SplitTail(r); ok {
		parts = []rune{first, second}
	}
	for _, part := range parts {
		sound, ok := onsetRoman[part]
		if !ok {
			return fmt.Errorf("romanize %q: constituent %q cannot begin a syllable", r, part)
		}
		b.WriteString(sound)
	}
	return nil
}
