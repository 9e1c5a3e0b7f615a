// Package complete substitutes isolated jamo letters with full syllables
// before segmentation, so the pipeline can pronounce them.
package complete

import (
	"strings"

	"hanbal/internal/hangul"
)

// Mode selects how an isolated letter is read aloud.
type Mode string

const (
	// None leaves isolated letters untouched.
	None Mode = ""
	// Phonetic reads a bare consonant with a neutral ㅡ vowel (ㄱ → 그)
	// and a bare vowel with a silent ㅇ onset (ㅏ → 아).
	Phonetic Mode = "phonetic"
	// LetterName reads a letter by its dictionary name (ㄱ → 기역).
	LetterName Mode = "letterName"
)

// letterNames are the dictionary names of the simple consonants.
var letterNames = map[rune]string{
	'ㄱ': "기역",
	'ㄲ': "쌍기역",
	'ㄴ': "니은",
	'ㄷ': "디귿",
	'ㄸ': "쌍디귿",
	'ㄹ': "리을",
	'ㅁ': "미음",
	'ㅂ': "비읍",
	'ㅃ': "쌍비읍",
	'ㅅ': "시옷",
	'ㅆ': "쌍시옷",
	'ㅇ': "이응",
	'ㅈ': "지읒",
	'ㅉ': "쌍지읒",
	'ㅊ': "치읓",
	'ㅋ': "키읔",
	'ㅌ': "티읕",
	'ㅍ': "피읖",
	'ㅎ': "히읗",
}

// Expand rewrites every isolated jamo letter in phrase according to mode.
// Mode None returns phrase unchanged.
func Expand(phrase string, mode Mode) string {
	if mode == None {
		return phrase
	}
	var b strings.Builder
	for _, r := range phrase {
		if !hangul.IsJamoLetter(r) {
			b.WriteRune(r)
			continue
		}
		b.WriteString(expandLetter(r, mode))
	}
	return b.String()
}

func expandLetter(r rune, mode Mode) string {
	if hangul.IsVowelLetter(r) {
		if s, ok := hangul.Compose('ㅇ', r, 0); ok {
			return string(s)
		}
		return string(r)
	}
	switch mode {
	case Phonetic:
		return phoneticConsonant(r)
	case LetterName:
		return nameConsonant(r)
	}
	return string(r)
}

func phoneticConsonant(r rune) string {
	if s, ok := hangul.Compose(r, 'ㅡ', 0); ok {
		return string(s)
	}
	// Compound trailing letters cannot head a syllable; read each part.
	if first, second, ok := hangul.SplitTail(r); ok {
		return phoneticConsonant(first) + phoneticConsonant(second)
	}
	return string(r)
}

func nameConsonant(r rune) string {
	if name, ok := letterNames[r]; ok {
		return name
	}
	if first, second, ok := hangul.SplitTail(r); ok {
		return nameConsonant(first) + nameConsonant(second)
	}
	return string(r)
}
