package hangul

var (
	leadingJamo  = []rune{'ㄱ', 'ㄲ', 'ㄴ', 'ㄷ', 'ㄸ', 'ㄹ', 'ㅁ', 'ㅂ', 'ㅃ', 'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅉ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ'}
	medialJamo   = []rune{'ㅏ', 'ㅐ', 'ㅑ', 'ㅒ', 'ㅓ', 'ㅔ', 'ㅕ', 'ㅖ', 'ㅗ', 'ㅘ', 'ㅙ', 'ㅚ', 'ㅛ', 'ㅜ', 'ㅝ', 'ㅞ', 'ㅟ', 'ㅠ', 'ㅡ', 'ㅢ', 'ㅣ'}
	trailingJamo = []rune{0, 'ㄱ', 'ㄲ', 'ㄳ', 'ㄴ', 'ㄵ', 'ㄶ', 'ㄷ', 'ㄹ', 'ㄺ', 'ㄻ', 'ㄼ', 'ㄽ', 'ㄾ', 'ㄿ', 'ㅀ', 'ㅁ', 'ㅂ', 'ㅄ', 'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ'}
)

var (
	leadingIndex  = buildIndex(leadingJamo)
	medialIndex   = buildIndex(medialJamo)
	trailingIndex = buildIndex(trailingJamo)
)

// tenseCounterpart maps a plain onset to its reinforced form.
var tenseCounterpart = map[rune]rune{
	'ㄱ': 'ㄲ',
	'ㄷ': 'ㄸ',
	'ㅂ': 'ㅃ',
	'ㅅ': 'ㅆ',
	'ㅈ': 'ㅉ',
}

// tailSplit breaks a compound trailing consonant into its two letters.
// Doubled letters (ㄲ, ㅆ) are not compounds; they stand as onsets on
// their own and are not listed here.
var tailSplit = map[rune][2]rune{
	'ㄳ': {'ㄱ', 'ㅅ'},
	'ㄵ': {'ㄴ', 'ㅈ'},
	'ㄶ': {'ㄴ', 'ㅎ'},
	'ㄺ': {'ㄹ', 'ㄱ'},
	'ㄻ': {'ㄹ', 'ㅁ'},
	'ㄼ': {'ㄹ', 'ㅂ'},
	'ㄽ': {'ㄹ', 'ㅅ'},
	'ㄾ': {'ㄹ', 'ㅌ'},
	'ㄿ': {'ㄹ', 'ㅍ'},
	'ㅀ': {'ㄹ', 'ㅎ'},
	'ㅄ': {'ㅂ', 'ㅅ'},
}

var (
	consonantSet = buildSet(append(filterZero(trailingJamo), leadingJamo...))
	vowelSet     = buildSet(medialJamo)
)

func buildIndex(list []rune) map[rune]int {
	idx := make(map[rune]int, len(list))
	for i, ch := range list {
		idx[ch] = i
	}
	return idx
}

func buildSet(list []rune) map[rune]struct{} {
	set := make(map[rune]struct{}, len(list))
	for _, ch := range list {
		set[ch] = struct{}{}
	}
	return set
}

func filterZero(list []rune) []rune {
	out := make([]rune, 0, len(list))
	for _, ch := range list {
		if ch != 0 {
			out = append(out, ch)
		}
	}
	return out
}

// IsConsonantLetter reports whether r is an isolated consonant letter,
// compound trailing forms included.
func IsConsonantLetter(r rune) bool {
	_, ok := consonantSet[r]
	return ok
}

// IsVowelLetter reports whether r is an isolated vowel letter.
func IsVowelLetter(r rune) bool {
	_, ok := vowelSet[r]
	return ok
}

// IsJamoLetter reports whether r is an isolated jamo of either kind.
func IsJamoLetter(r rune) bool {
	return IsConsonantLetter(r) || IsVowelLetter(r)
}

// IsLeading reports whether r can stand as a syllable onset.
func IsLeading(r rune) bool {
	_, ok := leadingIndex[r]
	return ok
}

// Tense returns the reinforced counterpart of a plain onset.
func Tense(r rune) (rune, bool) {
	t, ok := tenseCounterpart[r]
	return t, ok
}

// SplitTail breaks a compound trailing consonant into its two letters.
func SplitTail(r rune) (first, second rune, ok bool) {
	pair, ok := tailSplit[r]
	if !ok {
		return 0, 0, false
	}
	return pair[0], pair[1], true
}

func LeadingList() []rune {
	return append([]rune(nil), leadingJamo...)
}

func MedialList() []rune {
	return append([]rune(nil), medialJamo...)
}

func TrailingList() []rune {
	return append([]rune(nil), trailingJamo...)
}
