package rules

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hanbal/internal/segment"
)

func pronounce(t *testing.T, word string, hard bool) string {
	t.Helper()
	syllables, literals := segment.Segment(word)
	Apply(syllables, word, Options{HardConversion: hard})
	return segment.Assemble(syllables, literals)
}

func TestApplyStandardPronunciation(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		// tensification (clause 23)
		{"국밥", "국빱"},
		{"학교", "학꾜"},
		{"먹다", "먹따"},
		{"넓다", "널따"},
		{"맑게", "말께"},
		// nasalization (clauses 18, 19)
		{"먹는", "멍는"},
		{"백리", "뱅니"},
		{"담력", "담녁"},
		{"입는", "임는"},
		// lateralization (clause 20)
		{"신라", "실라"},
		{"칼날", "칼랄"},
		{"닳는", "달른"},
		// palatalization (clause 17)
		{"같이", "가치"},
		{"굳이", "구지"},
		{"닫히다", "다치다"},
		// ㅎ boundaries (clause 12)
		{"놓고", "노코"},
		{"많다", "만타"},
		{"좋은", "조은"},
		{"많이", "마니"},
		{"싫어", "시러"},
		{"먹히다", "머키다"},
		{"입학", "이팍"},
		{"놓는", "논는"},
		// liaison (clauses 13, 14)
		{"먹어", "머거"},
		{"옷이", "오시"},
		{"앉아", "안자"},
		{"값이", "갑씨"},
		// coda simplification (clauses 9, 10, 11)
		{"닭", "닥"},
		{"값", "갑"},
		{"옷", "옫"},
		// letter names (clause 16)
		{"디귿이", "디그시"},
		{"히읗이", "히으시"},
		{"키읔이", "키으기"},
		// no rule fires
		{"하늘", "하늘"},
		{"강아지", "강아지"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, pronounce(t, tt.word, true), "word %s", tt.word)
	}
}

func TestApplyWithoutHardConversion(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		{"국밥", "국밥"},
		{"학교", "학교"},
		{"먹다", "먹다"},
		{"앉다", "안다"},
		// rules outside tensification still apply
		{"먹는", "멍는"},
		{"같이", "가치"},
		{"놓고", "노코"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, pronounce(t, tt.word, false), "word %s", tt.word)
	}
}

// 백리 needs the onset rewritten to ㄴ before the coda nasalizes against
// it; running the steps the other way round would leave 백니.
func TestApplyOrderIsLoadBearing(t *testing.T) {
	require.Equal(t, "뱅니", pronounce(t, "백리", true))
}

// Clause 18 rewrites only the current syllable; the nasal onset that
// triggered it stays as written.
func TestNasalizeTailLeavesNextAlone(t *testing.T) {
	syllables, _ := segment.Segment("먹는")
	Apply(syllables, "먹는", Options{HardConversion: true})
	require.Equal(t, 'ㅇ', syllables[0].Tail)
	require.Equal(t, 'ㄴ', syllables[1].Lead)
	require.Equal(t, 'ㅡ', syllables[1].Vowel)
}

// The letter-name liaison fires only at the end of a letter-name word;
// the same coda elsewhere liaises normally.
func TestLetterNameLiaisonNeedsTheName(t *testing.T) {
	require.Equal(t, "디그시", pronounce(t, "디귿이", true))
	require.Equal(t, "구지", pronounce(t, "굳이", true))
}

// A step's rewrite of position i+1 must be what the next step reads: in
// 먹었다 the liaison at the first boundary produces 겄, and the second step
// has to tensify against that carried syllable, not the original 었.
func TestApplyCarryForward(t *testing.T) {
	syllables, _ := segment.Segment("먹었다")
	Apply(syllables, "먹었다", Options{HardConversion: true})
	got := segment.Assemble(syllables, nil)
	// 먹었다: liaison moves ㄱ, then ㅆ tensifies and simplifies.
	require.Equal(t, "머걷따", got)
}
