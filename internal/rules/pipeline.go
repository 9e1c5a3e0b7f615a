// Package rules applies the standard pronunciation rules to the syllable
// sequence of one word. The rules run in a fixed order inside a single
// left-to-right pass; each step writes its rewritten following syllable
// back into the sequence, so the next step starts from what this one left
// behind.
package rules

import "hanbal/internal/hangul"

// Options controls optional rule behavior for one pass.
type Options struct {
	// HardConversion enables tensification. Romanization runs with it off,
	// since the convention transliterates the written consonant.
	HardConversion bool
}

// Apply rewrites seq in place to its pronounced form. word is the written
// word the sequence was segmented from; it anchors the rules that look at
// absolute word position. Exactly one pass, len(seq) steps.
func Apply(seq []hangul.Syllable, word string, opts Options) {
	for i := range seq {
		cur := seq[i]
		var next *hangul.Syllable
		if i+1 < len(seq) {
			copied := seq[i+1]
			next = &copied
		}
		ctx := Context{Index: i, Word: word}

		if next != nil {
			if opts.HardConversion {
				*next = tensify(cur, *next)
			}
			cur, *next = letterNameLiaison(cur, *next, ctx)
			cur, *next = palatalize(cur, *next)
			*next = nasalizeOnset(cur, *next)
			cur, *next = lateralizePair(cur, *next)
			cur = nasalizeTail(cur, *next)
			*next = lateralizeOnset(cur, *next)
		}
		cur, next = dissolveH(cur, next)
		if next != nil {
			cur, *next = liaise(cur, *next)
		}
		cur = simplifyTail(cur, next)

		seq[i] = cur
		if next != nil {
			seq[i+1] = *next
		}
	}
}
