package romanize

// Revised Romanization of Korean. Onsets and vowels follow the written
// letter; codas use the final-position letters, since romanization runs on
// the pronounced form where only the seven surface codas remain.
var (
	onsetRoman = map[rune]string{
		'ㄱ': "g", 'ㄲ': "kk", 'ㄴ': "n", 'ㄷ': "d", 'ㄸ': "tt",
		'ㄹ': "r", 'ㅁ': "m", 'ㅂ': "b", 'ㅃ': "pp", 'ㅅ': "s",
		'ㅆ': "ss", 'ㅇ': "", 'ㅈ': "j", 'ㅉ': "jj", 'ㅊ': "ch",
		'ㅋ': "k", 'ㅌ': "t", 'ㅍ': "p", 'ㅎ': "h",
	}
	vowelRoman = map[rune]string{
		'ㅏ': "a", 'ㅐ': "ae", 'ㅑ': "ya", 'ㅒ': "yae", 'ㅓ': "eo",
		'ㅔ': "e", 'ㅕ': "yeo", 'ㅖ': "ye", 'ㅗ': "o", 'ㅘ': "wa",
		'ㅙ': "wae", 'ㅚ': "oe", 'ㅛ': "yo", 'ㅜ': "u", 'ㅝ': "wo",
		'ㅞ': "we", 'ㅟ': "wi", 'ㅠ': "yu", 'ㅡ': "eu", 'ㅢ': "ui",
		'ㅣ': "i",
	}
	tailRoman = map[rune]string{
		'ㄱ': "k", 'ㄴ': "n", 'ㄷ': "t", 'ㄹ': "l",
		'ㅁ': "m", 'ㅂ': "p", 'ㅇ': "ng",
	}
)
