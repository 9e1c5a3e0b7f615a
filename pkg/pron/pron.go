// Package pron is the public surface of hanbal: it turns written Korean
// into its standard pronunciation and derives a Revised Romanization from
// it. Both functions are pure; words are processed independently, so rules
// never reach across a space.
package pron

import (
	"strings"

	"hanbal/internal/complete"
	"hanbal/internal/romanize"
	"hanbal/internal/rules"
	"hanbal/internal/segment"
)

// CompleteMode selects the optional pre-pass that reads isolated jamo
// letters as full syllables. See the complete package for the two modes.
type CompleteMode = complete.Mode

const (
	CompleteNone       = complete.None
	CompletePhonetic   = complete.Phonetic
	CompleteLetterName = complete.LetterName
)

// Options controls one Standardize call.
type Options struct {
	// HardConversion applies tensification. On by default.
	HardConversion bool
	// Complete expands isolated jamo letters before segmentation. When
	// unset they pass through as literal characters.
	Complete CompleteMode
}

// DefaultOptions returns the options Standardize assumes when the caller
// has no preference.
func DefaultOptions() Options {
	return Options{HardConversion: true}
}

// Standardize converts text to its standard spoken pronunciation. Words
// are split on single spaces, converted independently, and rejoined.
// Empty input yields empty output.
func Standardize(text string, opts Options) string {
	if text == "" {
		return ""
	}
	text = complete.Expand(text, opts.Complete)
	words := strings.Split(text, " ")
	for i, word := range words {
		words[i] = standardizeWord(word, opts)
	}
	return strings.Join(words, " ")
}

func standardizeWord(word string, opts Options) string {
	syllables, literals := segment.Segment(word)
	rules.Apply(syllables, word, rules.Options{HardConversion: opts.HardConversion})
	return segment.Assemble(syllables, literals)
}

// Romanize transliterates text into Latin letters. The pronunciation pass
// runs with tensification off, since the convention romanizes the written
// consonant, not the reinforced one. The only error is an internal table
// inconsistency while splitting a compound consonant letter.
func Romanize(text string, mode CompleteMode) (string, error) {
	pronounced := Standardize(text, Options{HardConversion: false, Complete: mode})
	return romanize.Text(pronounced)
}
