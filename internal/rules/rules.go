package rules

import "hanbal/internal/hangul"

// Context carries what a rule may need beyond the syllable pair: the step
// index and the written word the sequence came from.
type Context struct {
	Index int
	Word  string
}

// Every rule takes the current syllable and the (possibly nil) following
// one and returns their rewritten forms. An unmatched condition is the
// identity transform; rules never fail.

// tensify reinforces next's onset after an obstruent coda (clause 23).
// Only next changes.
func tensify(cur hangul.Syllable, next hangul.Syllable) hangul.Syllable {
	if _, ok := tenseTrigger[cur.Tail]; !ok {
		return next
	}
	if tense, ok := hangul.Tense(next.Lead); ok {
		next.Lead = tense
	}
	return next
}

// letterNameLiaison handles the irregular liaison at the end of a consonant
// letter's dictionary name (clause 16): 디귿이 reads 디그시, 키읔이 키으기.
func letterNameLiaison(cur, next hangul.Syllable, ctx Context) (hangul.Syllable, hangul.Syllable) {
	if next.Lead != 'ㅇ' {
		return cur, next
	}
	sound, ok := letterNameTailSound[cur.Tail]
	if !ok {
		return cur, next
	}
	prefix := []rune(ctx.Word)
	if ctx.Index+1 > len(prefix) {
		return cur, next
	}
	if _, ok := letterNameWords[string(prefix[:ctx.Index+1])]; !ok {
		return cur, next
	}
	cur.Tail = 0
	next.Lead = sound
	return cur, next
}

// palatalize turns a dental coda into a palatal onset before 이/히
// (clause 17): 굳이 reads 구지, 같이 가치, 닫히다 다치다.
func palatalize(cur, next hangul.Syllable) (hangul.Syllable, hangul.Syllable) {
	if next.Vowel != 'ㅣ' {
		return cur, next
	}
	switch next.Lead {
	case 'ㅇ':
		switch cur.Tail {
		case 'ㄷ':
			cur.Tail = 0
			next.Lead = 'ㅈ'
		case 'ㅌ':
			cur.Tail = 0
			next.Lead = 'ㅊ'
		case 'ㄾ':
			cur.Tail = 'ㄹ'
			next.Lead = 'ㅊ'
		}
	case 'ㅎ':
		if cur.Tail == 'ㄷ' {
			cur.Tail = 0
			next.Lead = 'ㅊ'
		}
	}
	return cur, next
}

// nasalizeOnset reads an onset ㄹ as ㄴ after a nasal or stop coda
// (clause 19): 담력 reads 담녁. Only next changes; nasalizeTail later sees
// the rewritten onset.
func nasalizeOnset(cur hangul.Syllable, next hangul.Syllable) hangul.Syllable {
	if next.Lead != 'ㄹ' {
		return next
	}
	if _, ok := liquidToNasalTail[cur.Tail]; ok {
		next.Lead = 'ㄴ'
	}
	return next
}

// lateralizePair turns a ㄴ coda and ㄹ onset into a double liquid
// (clause 20, first half): 신라 reads 실라.
func lateralizePair(cur, next hangul.Syllable) (hangul.Syllable, hangul.Syllable) {
	if cur.Tail == 'ㄴ' && next.Lead == 'ㄹ' {
		cur.Tail = 'ㄹ'
	}
	return cur, next
}

// nasalizeTail turns a stop coda nasal before a nasal onset (clause 18):
// 먹는 reads 멍는. Only current changes, judged against the already
// rewritten next.
func nasalizeTail(cur hangul.Syllable, next hangul.Syllable) hangul.Syllable {
	if next.Lead != 'ㄴ' && next.Lead != 'ㅁ' {
		return cur
	}
	if nasal, ok := nasalizedTail[cur.Tail]; ok {
		cur.Tail = nasal
	}
	return cur
}

// lateralizeOnset reads an onset ㄴ as ㄹ after a liquid coda (clause 20,
// second half): 칼날 reads 칼랄, 닳는 달른.
func lateralizeOnset(cur hangul.Syllable, next hangul.Syllable) hangul.Syllable {
	if next.Lead != 'ㄴ' {
		return next
	}
	if _, ok := lateralTail[cur.Tail]; ok {
		next.Lead = 'ㄹ'
	}
	return next
}

// dissolveH resolves every ㅎ at a syllable boundary (clause 12): merge
// into an aspirate, surface as ㄴ before ㄴ, or elide before a vowel. It
// runs whether or not a next syllable exists.
func dissolveH(cur hangul.Syllable, next *hangul.Syllable) (hangul.Syllable, *hangul.Syllable) {
	base, hasH := strippedH(cur.Tail)
	if hasH {
		if next == nil {
			return cur, next
		}
		switch next.Lead {
		case 'ㄱ', 'ㄷ', 'ㅈ':
			cur.Tail = base
			next.Lead = aspirated[next.Lead]
		case 'ㅅ':
			cur.Tail = base
			next.Lead = 'ㅆ'
		case 'ㄴ':
			if cur.Tail == 'ㅎ' {
				cur.Tail = 'ㄴ'
			} else {
				cur.Tail = base
			}
		case 'ㅇ':
			cur.Tail = base
		}
		return cur, next
	}
	if next == nil || next.Lead != 'ㅎ' {
		return cur, next
	}
	if asp, ok := aspirated[cur.Tail]; ok {
		cur.Tail = 0
		next.Lead = asp
		return cur, next
	}
	if first, second, ok := hangul.SplitTail(cur.Tail); ok {
		if asp, ok := aspirated[second]; ok {
			cur.Tail = first
			next.Lead = asp
		}
	}
	return cur, next
}

// strippedH reports whether tail carries a ㅎ and what remains without it.
func strippedH(tail rune) (rune, bool) {
	switch tail {
	case 'ㅎ':
		return 0, true
	case 'ㄶ':
		return 'ㄴ', true
	case 'ㅀ':
		return 'ㄹ', true
	}
	return tail, false
}

// liaise relocates a coda onto a vowel-initial next syllable (clauses 13
// and 14). A compound coda keeps its first letter and moves the second,
// with ㅅ reinforced to ㅆ per clause 14.
func liaise(cur, next hangul.Syllable) (hangul.Syllable, hangul.Syllable) {
	if next.Lead != 'ㅇ' || cur.Tail == 0 || cur.Tail == 'ㅇ' || cur.Tail == 'ㅎ' {
		return cur, next
	}
	if first, second, ok := hangul.SplitTail(cur.Tail); ok {
		if second == 'ㅎ' {
			return cur, next
		}
		if second == 'ㅅ' {
			second = 'ㅆ'
		}
		cur.Tail = first
		next.Lead = second
		return cur, next
	}
	next.Lead = cur.Tail
	cur.Tail = 0
	return cur, next
}

// simplifyTail reduces the coda to one of the seven surface codas
// (clauses 9, 10, 11), with next as context for the ㄺ exception: 맑게
// keeps the ㄹ, 닭 drops it.
func simplifyTail(cur hangul.Syllable, next *hangul.Syllable) hangul.Syllable {
	if cur.Tail == 'ㄺ' {
		if next != nil && (next.Lead == 'ㄱ' || next.Lead == 'ㄲ') {
			cur.Tail = 'ㄹ'
		} else {
			cur.Tail = 'ㄱ'
		}
		return cur
	}
	if surface, ok := surfaceTail[cur.Tail]; ok {
		cur.Tail = surface
	}
	return cur
}
