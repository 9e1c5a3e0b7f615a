package romanize

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Text receives already-pronounced input; these cases are written in their
// surface form.
func TestTextSyllables(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"한글", "hangeul"},
		{"하늘", "haneul"},
		{"먹따", "meoktta"},
		{"바다", "bada"},
		{"강", "gang"},
	}
	for _, tt := range tests {
		got, err := Text(tt.in)
		require.NoError(t, err)
		require.Equal(t, tt.want, got, "input %s", tt.in)
	}
}

func TestTextDoubledLiquid(t *testing.T) {
	got, err := Text("실라")
	require.NoError(t, err)
	require.Equal(t, "silla", got)

	got, err = Text("칼랄")
	require.NoError(t, err)
	require.Equal(t, "kallal", got)

	// onset ㄹ reads r when the preceding syllable has no ㄹ coda
	got, err = Text("나라")
	require.NoError(t, err)
	require.Equal(t, "nara", got)

	// a non-syllable in between resets the backward look
	got, err = Text("갈 라")
	require.NoError(t, err)
	require.Equal(t, "gal ra", got)
}

func TestTextIsolatedJamo(t *testing.T) {
	got, err := Text("ㅏ")
	require.NoError(t, err)
	require.Equal(t, "a", got)

	got, err = Text("ㄱ")
	require.NoError(t, err)
	require.Equal(t, "g", got)

	// compound letters read as the onset sounds of their parts
	got, err = Text("ㄳ")
	require.NoError(t, err)
	require.Equal(t, "gs", got)

	got, err = Text("ㄺ")
	require.NoError(t, err)
	require.Equal(t, "rg", got)
}

func TestTextPassthrough(t *testing.T) {
	got, err := Text("한국, hello! 123")
	require.NoError(t, err)
	require.Equal(t, "hanguk, hello! 123", got)
}
