package rules

// Trigger tables for the standard pronunciation rules. Each table covers one
// clause of the regulation; the pipeline in pipeline.go fixes their order.

// tenseTrigger holds the codas that reinforce a following plain onset
// (clause 23): everything that surfaces as ㄱ, ㄷ, or ㅂ. The ㅎ-bearing
// codas are absent on purpose; clause 12 owns those boundaries.
var tenseTrigger = runeSet("ㄱㄲㅋㄳㄺㄷㅅㅆㅈㅊㅌㅂㅍㄼㄿㅄ")

// nasalizedTail maps a stop coda to its nasal counterpart before a nasal
// onset (clause 18).
var nasalizedTail = map[rune]rune{
	'ㄱ': 'ㅇ', 'ㄲ': 'ㅇ', 'ㅋ': 'ㅇ', 'ㄳ': 'ㅇ', 'ㄺ': 'ㅇ',
	'ㄷ': 'ㄴ', 'ㅅ': 'ㄴ', 'ㅆ': 'ㄴ', 'ㅈ': 'ㄴ', 'ㅊ': 'ㄴ', 'ㅌ': 'ㄴ', 'ㅎ': 'ㄴ',
	'ㅂ': 'ㅁ', 'ㅍ': 'ㅁ', 'ㄼ': 'ㅁ', 'ㄿ': 'ㅁ', 'ㅄ': 'ㅁ',
}

// liquidToNasalTail holds the codas after which an onset ㄹ reads as ㄴ
// (clause 19 and its appendix).
var liquidToNasalTail = runeSet("ㅁㅇㄱㅂ")

// lateralTail holds the codas that lateralize a following ㄴ (clause 20).
var lateralTail = runeSet("ㄹㄾㅀ")

// aspirated maps a plain obstruent to its aspirate for the ㅎ mergers of
// clause 12.
var aspirated = map[rune]rune{
	'ㄱ': 'ㅋ',
	'ㄷ': 'ㅌ',
	'ㅂ': 'ㅍ',
	'ㅈ': 'ㅊ',
}

// surfaceTail reduces every coda to one of the seven permitted surface
// codas (clauses 9, 10, 11). ㄺ is absent: it depends on the following
// onset and is resolved in simplifyTail.
var surfaceTail = map[rune]rune{
	'ㄲ': 'ㄱ', 'ㅋ': 'ㄱ', 'ㄳ': 'ㄱ',
	'ㅅ': 'ㄷ', 'ㅆ': 'ㄷ', 'ㅈ': 'ㄷ', 'ㅊ': 'ㄷ', 'ㅌ': 'ㄷ', 'ㅎ': 'ㄷ',
	'ㅍ': 'ㅂ', 'ㅄ': 'ㅂ', 'ㄿ': 'ㅂ',
	'ㄵ': 'ㄴ', 'ㄶ': 'ㄴ',
	'ㄼ': 'ㄹ', 'ㄽ': 'ㄹ', 'ㄾ': 'ㄹ', 'ㅀ': 'ㄹ',
	'ㄻ': 'ㅁ',
}

// letterNameWords are the dictionary names of the consonant letters; the
// clause 16 liaison only fires at the end of one of these.
var letterNameWords = stringSet(
	"기역", "쌍기역", "니은", "디귿", "쌍디귿", "리을", "미음", "비읍",
	"쌍비읍", "시옷", "쌍시옷", "이응", "지읒", "쌍지읒", "치읓", "키읔",
	"티읕", "피읖", "히읗",
)

// letterNameTailSound maps the irregular letter-name codas to the onset
// they liaise as (clause 16). Codas not listed here liaise normally.
var letterNameTailSound = map[rune]rune{
	'ㄷ': 'ㅅ',
	'ㅈ': 'ㅅ',
	'ㅊ': 'ㅅ',
	'ㅌ': 'ㅅ',
	'ㅎ': 'ㅅ',
	'ㅋ': 'ㄱ',
	'ㅍ': 'ㅂ',
}

func runeSet(s string) map[rune]struct{} {
	set := make(map[rune]struct{}, len(s))
	for _, r := range s {
		set[r] = struct{}{}
	}
	return set
}

func stringSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
