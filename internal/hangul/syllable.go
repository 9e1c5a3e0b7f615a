package hangul

const (
	baseCodePoint = 0xAC00
	lastCodePoint = 0xD7A3
	medialCount   = 21
	trailingCount = 28
)

// Syllable is the decomposed form of one precomposed Hangul block. Lead and
// Vowel are always set; Tail is 0 when the syllable has no final consonant.
type Syllable struct {
	Lead  rune
	Vowel rune
	Tail  rune
}

func (s Syllable) HasTail() bool {
	return s.Tail != 0
}

// IsSyllable reports whether r falls in the precomposed syllable block.
func IsSyllable(r rune) bool {
	return r >= baseCodePoint && r <= lastCodePoint
}

// Decompose splits a precomposed syllable into its jamo. The second return
// is false when r is not a precomposed syllable.
func Decompose(r rune) (Syllable, bool) {
	if !IsSyllable(r) {
		return Syllable{}, false
	}
	offset := int(r - baseCodePoint)
	ti := offset % trailingCount
	mi := (offset / trailingCount) % medialCount
	li := offset / (trailingCount * medialCount)
	return Syllable{
		Lead:  leadingJamo[li],
		Vowel: medialJamo[mi],
		Tail:  trailingJamo[ti],
	}, true
}

// Compose is the inverse of Decompose. A tail of 0 means no final
// consonant. The second return is false when any jamo is out of place.
func Compose(lead, vowel, tail rune) (rune, bool) {
	li, ok := leadingIndex[lead]
	if !ok {
		return 0, false
	}
	mi, ok := medialIndex[vowel]
	if !ok {
		return 0, false
	}
	ti, ok := trailingIndex[tail]
	if !ok {
		return 0, false
	}
	return rune(baseCodePoint + (li*medialCount+mi)*trailingCount + ti), true
}

// Rune recomposes the syllable into its precomposed character.
func (s Syllable) Rune() (rune, bool) {
	return Compose(s.Lead, s.Vowel, s.Tail)
}
